package main

import (
	"github.com/Vtdarling/kitchenAI/config"
	"github.com/Vtdarling/kitchenAI/logger"
	"github.com/Vtdarling/kitchenAI/route"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system env vars")
	}

	configPath := config.GetEnv("CONFIG_PATH", "config/development.yaml")
	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := route.SetupRoutes(r, cfg); err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
