package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr               string
	StaticDir          string
	CORSAllowedOrigins []string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host          string
	Port          string
	Name          string
	User          string
	Password      string
	MigrationsURL string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Addr:               getEnv("SERVER_ADDR", ":8000"),
			StaticDir:          getEnv("STATIC_DIR", "static"),
			CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			Name:          getEnv("DB_NAME", "vocabflash"),
			User:          getEnv("DB_USER", "vocabflash"),
			Password:      os.Getenv("DB_PASSWORD"),
			MigrationsURL: getEnv("MIGRATIONS_URL", "file://migrations"),
		},
	}

	// Validate required fields
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping empty items
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
