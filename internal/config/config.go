// Package config loads runtime settings from environment variables, with an
// optional .env overlay applied by the entrypoints.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	TokenTTL    time.Duration
	TokenLength int
	BcryptCost  int
}

func Load() *Config {
	return &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", "0.0.0.0:8080"),
		DBHost:      os.Getenv("POSTGRES_HOST"),
		DBPort:      os.Getenv("POSTGRES_PORT"),
		DBUser:      os.Getenv("POSTGRES_USER"),
		DBPassword:  os.Getenv("POSTGRES_PASSWORD"),
		DBName:      os.Getenv("POSTGRES_DB"),
		TokenTTL:    getDuration("TOKEN_TTL", time.Hour),
		TokenLength: getInt("TOKEN_LENGTH", 32),
		BcryptCost:  getInt("BCRYPT_COST", 0),
	}
}

// DBConnString builds the postgres DSN for lib/pq.
func (c *Config) DBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
