package db

import (
	"fmt"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the PostgreSQL connection
func InitDB(c *entity.Config) error {
	// Define the connection string (PostgreSQL DSN format)
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("could not connect to database", zap.Error(err))
		return err
	}
	logger.Info("database connection established")
	return nil
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
