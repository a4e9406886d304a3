package entity

// Config is the full application configuration, loaded from YAML with
// environment overrides for secrets.
type Config struct {
	Server         ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	Auth           AuthConfig     `yaml:"auth"`
	LLM            LLMConfig      `yaml:"llm"`
	Pipeline       PipelineConfig `yaml:"pipeline"`
	RateLimit      RateLimit      `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	JWTSecretKey []byte `yaml:"jwt_secret"`
	// TokenTTLHours is the token validity window. Observed deployments use
	// 2 or 24. A value of 0 is treated as unset and replaced by the
	// default of 24; a zero TTL cannot be expressed.
	TokenTTLHours int `yaml:"token_ttl_hours"`
}

type LLMConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// PipelineConfig selects the recipe generation variant.
// Variant is "two-stage" (categorize then generate) or "guarded"
// (single stage with an embedded content-safety check).
type PipelineConfig struct {
	Variant string `yaml:"variant"`
}

// RateLimit caps requests per client address. Zero values are treated as
// unset and replaced by defaults (5 rps, burst 10); the limiter cannot be
// disabled through this config.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}
