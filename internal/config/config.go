package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Freeeeeet/study_system/internal/formatting"
)

type Config struct {
	DBDSN       string            `mapstructure:"DB_DSN"`
	Environment string            `mapstructure:"ENV"`
	DayLocale   formatting.Locale `mapstructure:"DAY_LOCALE"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		Environment: os.Getenv("ENV"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	locale := os.Getenv("DAY_LOCALE")
	if locale == "" {
		locale = string(formatting.LocaleHungarian)
	}
	loc, err := formatting.ParseLocale(locale)
	if err != nil {
		return nil, fmt.Errorf("DAY_LOCALE: %w", err)
	}
	cfg.DayLocale = loc

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
