package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	GinMode    string
	Addr       string
	TZ         string
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string
	SQLitePath string
	LogLevel   string
	LogFormat  string
}

// Load reads the configuration from the environment. In debug mode a .env
// file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if err := godotenv.Load(); err == nil {
			log.Printf("loaded .env")
		} else if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		GinMode:    getenv("GIN_MODE", "debug"),
		Addr:       getenv("APP_ADDR", ":8080"),
		TZ:         getenv("TZ", "UTC"),
		DBDriver:   strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPass:     getenv("DB_PASS", ""),
		DBName:     getenv("DB_NAME", "postgres"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		SQLitePath: getenv("SQLITE_PATH", "bookstore.db"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFormat:  getenv("LOG_FORMAT", "text"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (want %s, %s or %s)",
			c.DBDriver, DriverPostgres, DriverSQLite, DriverMemory)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q (want text or json)", c.LogFormat)
	}

	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
