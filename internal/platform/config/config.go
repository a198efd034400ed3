// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment names recognized by the application.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds the runtime configuration of the API server.
type Config struct {
	Environment    string
	Port           string
	FrontendURL    string
	AllowedOrigins []string

	JWTSecret     string
	JWTExpiration time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// LoadFromEnv reads the configuration from environment variables,
// applying development-friendly defaults where a value is missing.
func LoadFromEnv() Config {
	cfg := Config{
		Environment:    getEnv("APP_ENV", EnvDevelopment),
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiration:  time.Hour,
		SMTPHost:       getEnv("SMTP_HOST", "smtp.mailtrap.io"),
		SMTPPort:       getEnvInt("SMTP_PORT", 2525),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		MailFrom:       getEnv("MAIL_FROM", "CashTrackr <admin@cashtrackr.com>"),
	}
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWTExpiration = d
		}
	}
	return cfg
}

// Validate reports configuration that would make the server unsafe to run.
func (c Config) Validate() error {
	if c.JWTSecret == "" && c.Environment == EnvProduction {
		return errors.New("JWT_SECRET is required in production")
	}
	return nil
}

// IsProduction returns true when running in the production environment.
func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
