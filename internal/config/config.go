// Package config loads server and CLI settings from an optional YAML file
// and RECEIPTBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mmynk/receiptbook/internal/ledger"
)

// EnvPrefix is prepended to every environment variable, e.g.
// RECEIPTBOOK_DB_PATH.
const EnvPrefix = "RECEIPTBOOK"

// Config holds all settings.
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	Port     int    `mapstructure:"port"`
	SlotKey  string `mapstructure:"slot_key"`
	LogLevel string `mapstructure:"log_level"`
	Auth     Auth   `mapstructure:"auth"`
}

// Auth holds operator login settings. Login is required only when
// PasswordHash is set.
type Auth struct {
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

// Enabled reports whether operator login is configured.
func (a Auth) Enabled() bool {
	return a.PasswordHash != ""
}

// Defaults.
const (
	DefaultDBPath   = "./data/receipts.db"
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultTokenTTL = 24 * time.Hour
)

// New returns a viper instance with defaults and environment binding set
// up. Callers may bind command-line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("slot_key", ledger.DefaultKey)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path (if non-empty) on top of v's
// defaults and environment, and validates the result. An empty path
// searches ./receiptbook.yaml and $HOME/.config/receiptbook/config.yaml;
// a missing file there is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("receiptbook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "receiptbook"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.DBPath = ExpandPath(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if strings.TrimSpace(c.SlotKey) == "" {
		return errors.New("slot key must not be empty")
	}
	if c.Auth.Enabled() {
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required when auth.password_hash is set")
		}
		if c.Auth.TokenTTL <= 0 {
			return fmt.Errorf("invalid auth.token_ttl: %s", c.Auth.TokenTTL)
		}
	}
	return nil
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
