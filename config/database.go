package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dsn(cfg Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

// ConnectDB mở kết nối postgres qua gorm
func ConnectDB(cfg Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == "dev" {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}
