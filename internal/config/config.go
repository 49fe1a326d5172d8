// Package config loads server configuration from a TOML file, mirroring
// the teacher's cmd/tqserver flag/file/env precedence: CLI flags override
// the file, which overrides environment variables, which override the
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	EnvListen   = "CLRGEN_LISTEN_ADDRESS"
	EnvSecret   = "CLRGEN_JWT_SECRET"
	EnvAPIKey   = "CLRGEN_API_KEY"
	EnvDatabase = "CLRGEN_DATABASE"

	MinSecretSize = 32
	MaxSecretSize = 64
)

// DBType selects the persistence backend.
type DBType string

const (
	DatabaseInMemory DBType = "inmem"
	DatabaseSQLite   DBType = "sqlite"
)

// Database holds settings for connecting to a persistence layer.
type Database struct {
	Type    DBType `toml:"type"`
	DataDir string `toml:"data_dir"`
}

// Config is the full set of settings needed to run the HTTP API (C9).
type Config struct {
	ListenAddress string   `toml:"listen_address"`
	JWTSecret     string   `toml:"jwt_secret"`
	APIKeyHash    string   `toml:"api_key_hash"`
	Database      Database `toml:"database"`
}

// Load reads and parses a TOML config file at path. A missing file is not
// an error; it simply yields FillDefaults() unchanged.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg.FillDefaults(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg.FillDefaults(), nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg.FillDefaults(), nil
}

// FillDefaults returns a copy of cfg with unset fields replaced by
// environment variables, and failing that, built-in defaults.
func (cfg Config) FillDefaults() Config {
	out := cfg

	if out.ListenAddress == "" {
		out.ListenAddress = os.Getenv(EnvListen)
	}
	if out.ListenAddress == "" {
		out.ListenAddress = "localhost:8080"
	}

	if out.JWTSecret == "" {
		out.JWTSecret = os.Getenv(EnvSecret)
	}

	if out.APIKeyHash == "" {
		out.APIKeyHash = os.Getenv(EnvAPIKey)
	}

	if out.Database.Type == "" {
		if envDB := os.Getenv(EnvDatabase); envDB != "" {
			out.Database.Type = DBType(envDB)
		} else {
			out.Database.Type = DatabaseInMemory
		}
	}

	return out
}

// Validate reports whether cfg has everything required to start the
// server. A missing JWT secret is not an error here; callers decide whether
// to run with writes disabled instead of failing. A configured secret must
// be at least MinSecretSize bytes.
func (cfg Config) Validate() error {
	if cfg.ListenAddress == "" {
		return fmt.Errorf("listen_address must be set")
	}
	switch cfg.Database.Type {
	case DatabaseInMemory:
	case DatabaseSQLite:
		if cfg.Database.DataDir == "" {
			return fmt.Errorf("database.data_dir must be set when database.type is %q", DatabaseSQLite)
		}
	default:
		return fmt.Errorf("database.type must be %q or %q, got %q", DatabaseInMemory, DatabaseSQLite, cfg.Database.Type)
	}
	if cfg.JWTSecret != "" && len(cfg.JWTSecret) < MinSecretSize {
		return fmt.Errorf("jwt_secret must be at least %d bytes, got %d", MinSecretSize, len(cfg.JWTSecret))
	}
	return nil
}
