package db

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

// TestBuildDSN verifies that the PostgreSQL DSN string is built correctly.
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "disable",
	}

	dsn := BuildDSN(cfg)

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable TimeZone=UTC"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestConnectWithRetry_SuccessOnFirstTry verifies that no retry happens when the first attempt succeeds.
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
}

// TestConnectWithRetry_RetriesOnFailure verifies that failed attempts are retried until success.
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel because this test takes time due to retry sleeps

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	// Allow for 2 retries (retry interval is 3 seconds)
	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attemptCount != 3 {
		t.Errorf("expected 3 attempts, got %d", attemptCount)
	}
}

// TestConnectWithRetry_TimeoutAfterRetries verifies that an error is returned once the timeout elapses.
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	if err == nil {
		t.Fatal("expected error after timeout, got nil")
	}
	if attemptCount == 0 {
		t.Error("expected at least one connection attempt")
	}
}

// TestLoadConfigFromEnv verifies that the database configuration is read from environment variables.
func TestLoadConfigFromEnv(t *testing.T) {
	// Not parallel since we're modifying environment variables
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	cfg := LoadConfigFromEnv()

	if cfg.User != "envuser" {
		t.Errorf("expected User 'envuser', got %q", cfg.User)
	}
	if cfg.Password != "envpass" {
		t.Errorf("expected Password 'envpass', got %q", cfg.Password)
	}
	if cfg.Name != "envdb" {
		t.Errorf("expected Name 'envdb', got %q", cfg.Name)
	}
	if cfg.Host != "envhost" {
		t.Errorf("expected Host 'envhost', got %q", cfg.Host)
	}
	if cfg.Port != "5433" {
		t.Errorf("expected Port '5433', got %q", cfg.Port)
	}
	if cfg.SSLMode != "require" {
		t.Errorf("expected SSLMode 'require', got %q", cfg.SSLMode)
	}
}

// TestLoadConfigFromEnv_Defaults verifies host, port and sslmode defaults.
func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_SSLMODE", "")

	cfg := LoadConfigFromEnv()

	if cfg.Host != "localhost" {
		t.Errorf("expected default host 'localhost', got %q", cfg.Host)
	}
	if cfg.Port != "5432" {
		t.Errorf("expected default port '5432', got %q", cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("expected default sslmode 'disable', got %q", cfg.SSLMode)
	}
}
