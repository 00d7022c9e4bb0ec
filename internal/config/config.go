package config

import (
	"fmt"
	"os"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the go-sql-driver connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", d.User, d.Password, d.Host, d.Port, d.Name)
}

type Config struct {
	HTTPAddr      string
	Database      DatabaseConfig
	RedisAddr     string
	KafkaBrokers  []string
	KafkaTopic    string
	SessionSecret string
	CORSOrigins   []string
}

// Load reads configuration from environment variables, falling back to
// local development defaults.
func Load() *Config {
	return &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":5000"),
		Database: DatabaseConfig{
			Host:     getenv("DB_HOST", "127.0.0.1"),
			Port:     getenv("DB_PORT", "3306"),
			User:     getenv("DB_USER", "root"),
			Password: getenv("DB_PASS", ""),
			Name:     getenv("DB_NAME", "cwsms"),
		},
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:  strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:    getenv("KAFKA_TOPIC", "carwash-events"),
		SessionSecret: getenv("SESSION_SECRET", "carwash-secret-key"),
		CORSOrigins:   strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5175"), ","),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
