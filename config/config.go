package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// First-party store (schedule, appointments, clients, catalog).
	MongoURI string `mapstructure:"MONGO_URI"`

	// Legacy "ident" scheduling system (read-only Postgres).
	LegacyPGHost     string `mapstructure:"LEGACY_PG_HOST"`
	LegacyPGPort     string `mapstructure:"LEGACY_PG_PORT"`
	LegacyPGDatabase string `mapstructure:"LEGACY_PG_DATABASE"`
	LegacyPGUser     string `mapstructure:"LEGACY_PG_USER"`
	LegacyPGPassword string `mapstructure:"LEGACY_PG_PASSWORD"`

	// Redis configuration (catalog cache + reminder queue).
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("LEGACY_PG_HOST", "localhost")
	viper.SetDefault("LEGACY_PG_PORT", "5433")
	viper.SetDefault("LEGACY_PG_DATABASE", "clinic2")
	viper.SetDefault("LEGACY_PG_USER", "postgres")
	viper.SetDefault("LEGACY_PG_PASSWORD", "password")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
