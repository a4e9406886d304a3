// config.go
package config

import (
	"os"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig reads the configuration from the YAML file and applies
// environment overrides for secrets.
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	// Read the YAML file content
	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read file", zap.Error(err))
		return nil, err
	}

	// Unmarshal the YAML data into the Config struct
	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	return &config, nil
}

// applyEnvOverrides lets secrets come from the environment instead of the
// checked-in YAML file.
func applyEnvOverrides(c *entity.Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecretKey = []byte(v)
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.PostgresConfig.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

func applyDefaults(c *entity.Config) {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Auth.TokenTTLHours == 0 {
		c.Auth.TokenTTLHours = 24
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "https://api.openai.com/v1"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-3.5-turbo"
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 30
	}
	if c.Pipeline.Variant == "" {
		c.Pipeline.Variant = "two-stage"
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
