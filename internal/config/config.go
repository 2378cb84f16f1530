package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	Port          string `yaml:"port"`
	Environment   string `yaml:"environment"`
	SupabaseURL   string `yaml:"supabase_url"`
	SupabaseDBURL string `yaml:"supabase_db_url"`
	// Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	SupabaseJWKSURL string `yaml:"-"`
	CORSOrigins     string `yaml:"cors_origins"`
	TablePrefix     string `yaml:"table_prefix"`
	// Storage
	StoreDriver string `yaml:"store_driver"`
	SQLitePath  string `yaml:"sqlite_path"`
	// DevUserID bypasses JWT verification in dev (local single-user mode)
	DevUserID string `yaml:"dev_user_id"`
	// Logging
	LogDir      string `yaml:"log_dir"`
	LogMaxFiles int    `yaml:"log_max_files"`
	// Backups
	MaxBackupBytes int64 `yaml:"max_backup_bytes"`
}

// Load reads configuration from an optional YAML file (CONFIG_PATH) and the
// environment. Environment variables win over file values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           "8080",
		Environment:    "dev",
		CORSOrigins:    "http://localhost:3000",
		StoreDriver:    StoreDriverPostgres,
		SQLitePath:     "vibe-writer.db",
		LogMaxFiles:    10,
		MaxBackupBytes: DefaultMaxBackupBytes,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.SupabaseURL = getEnv("SUPABASE_URL", cfg.SupabaseURL)
	cfg.SupabaseDBURL = getEnv("SUPABASE_DB_URL", cfg.SupabaseDBURL)
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", cfg.StoreDriver))
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.DevUserID = getEnv("DEV_USER_ID", cfg.DevUserID)
	cfg.LogDir = getEnv("LOG_DIR", cfg.LogDir)

	if cfg.TablePrefix == "" || os.Getenv("TABLE_PREFIX") != "" {
		cfg.TablePrefix = getTablePrefix(cfg.Environment)
	}

	if v := os.Getenv("LOG_MAX_FILES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_MAX_FILES: %w", err)
		}
		cfg.LogMaxFiles = n
	}
	if v := os.Getenv("MAX_BACKUP_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_BACKUP_BYTES: %w", err)
		}
		cfg.MaxBackupBytes = n
	}

	// Construct JWKS URL from Supabase URL
	if cfg.SupabaseURL != "" {
		cfg.SupabaseJWKSURL = strings.TrimRight(cfg.SupabaseURL, "/") + "/auth/v1/.well-known/jwks.json"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (supported: postgres, sqlite)", c.StoreDriver)
	}
	if c.DevUserID != "" && c.Environment == "prod" {
		return fmt.Errorf("DEV_USER_ID cannot be used in prod")
	}
	if c.MaxBackupBytes <= 0 {
		return fmt.Errorf("MAX_BACKUP_BYTES must be positive")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
