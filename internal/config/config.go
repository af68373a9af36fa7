package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisAddr     string
	RedisPassword string
	SessionSecret string
	CORSOrigins   []string
}

func Load() *Config {
	return &Config{
		Port:          getenv("PORT", "5000"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", ""),
		DBName:        getenv("DB_NAME", "mern_login"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		SessionSecret: getenv("SESSION_SECRET", ""),
		CORSOrigins:   strings.Split(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
	}
}

// PostgresDSN assembles the connection string. The pool is capped at 10
// connections, matching the limit the service has always run with.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&pool_max_conns=10",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
