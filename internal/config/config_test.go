package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"GIN_MODE", "APP_ADDR", "TZ", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER",
	"DB_PASS", "DB_NAME", "DB_SSLMODE", "SQLITE_PATH", "LOG_LEVEL", "LOG_FORMAT",
}

// isolate clears every config variable and runs the test from an empty
// directory so no stray .env is picked up.
func isolate(t *testing.T) {
	t.Helper()

	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg := Load()

	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "bookstore.db", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ReleaseRequiresSSL(t *testing.T) {
	isolate(t)
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "require", cfg.DBSSLMode)
}

func TestLoad_ExplicitSSLModeWins(t *testing.T) {
	isolate(t)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_SSLMODE", "verify-full")

	assert.Equal(t, "verify-full", Load().DBSSLMode)
}

func TestLoad_ReadsDotEnvInDebug(t *testing.T) {
	isolate(t)

	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_DRIVER=SQLite\nSQLITE_PATH=/tmp/books.db\n"), 0o600))

	// t.Setenv registered empty values; unset them so godotenv may fill them.
	require.NoError(t, os.Unsetenv("DB_DRIVER"))
	require.NoError(t, os.Unsetenv("SQLITE_PATH"))

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/books.db", cfg.SQLitePath)
}

func TestValidate_RejectsUnknownValues(t *testing.T) {
	cfg := &Config{DBDriver: "mongo", LogFormat: "text"}
	assert.ErrorContains(t, cfg.Validate(), "DB_DRIVER")

	cfg = &Config{DBDriver: DriverMemory, LogFormat: "xml"}
	assert.ErrorContains(t, cfg.Validate(), "LOG_FORMAT")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:    "db",
		DBPort:    "5433",
		DBUser:    "books",
		DBPass:    "secret",
		DBName:    "catalog",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}

	assert.Equal(t,
		"host=db user=books password=secret dbname=catalog port=5433 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
