package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort string
	GinMode    string

	JWTSecret     string
	TokenLifetime time.Duration
}

// Load reads configuration from the environment, falling back to development
// defaults for anything unset.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "dashboard")
	v.SetDefault("DB_PASSWORD", "dashboard")
	v.SetDefault("DB_NAME", "hackathon_dashboard")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("JWT_SECRET", "default-secret-key-change-me")
	v.SetDefault("TOKEN_LIFETIME_HOURS", 16)

	return &Config{
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		ServerPort:    v.GetString("SERVER_PORT"),
		GinMode:       v.GetString("GIN_MODE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		TokenLifetime: time.Duration(v.GetInt("TOKEN_LIFETIME_HOURS")) * time.Hour,
	}
}
