package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pico/internal/models/db_models"
)

func InitPostgresql(logger *zap.Logger) *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}

	if err := AutoMigrate(connectionPool); err != nil {
		logger.Fatal("running migrations", zap.Error(err))
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Task{},
		&db_models.Submission{},
		&db_models.Payment{},
		&db_models.Withdrawal{},
	)
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
		return
	}
	logger.Info("database connection closed")
}
