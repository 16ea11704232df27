package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port       string
	CORSOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func Load() *Config {
	// .env is only present in development; Docker Compose injects env vars
	// directly in production.
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "3001"),
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "postgres"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "forge3d"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "forge3d"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "pro3.mail.ovh.net"),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", "contact@forge3d.tech"),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "contact@forge3d.tech"),
			To:       getEnv("SMTP_TO", "contact@forge3d.tech"),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvInt("RATE_LIMIT_MAX", 10),
			Window: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
		},
	}
}

// DSN builds the Postgres connection string for GORM.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Addr returns the host:port pair of the SMTP server.
func (s SMTPConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
