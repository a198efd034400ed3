// Package db manages the PostgreSQL connection and schema migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "cashtrackr_backend/internal/feature/auth/domain/entity"
	budgetentity "cashtrackr_backend/internal/feature/budgets/domain/entity"
)

// Config holds the database connection parameters.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string
}

// LoadConfigFromEnv reads the database configuration from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN builds a PostgreSQL DSN string from the configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// Opener opens a gorm connection for the given DSN. It exists as a seam so
// connection retry logic can be tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenPostgres is the production Opener. TranslateError turns driver unique
// violations into gorm.ErrDuplicatedKey, which the repositories rely on.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry attempts to connect until the timeout elapses, sleeping
// between attempts. Container setups often bring the database up after the
// application.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&budgetentity.Budget{},
		&budgetentity.Expense{},
	)
}

// OpenDB connects to PostgreSQL using the environment configuration and
// optionally runs migrations. It terminates the process on failure, matching
// the behavior expected at startup.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, OpenPostgres)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
