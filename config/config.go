package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Environment variables that override file values.
const (
	EnvDB       = "TRADEJOURNAL_DB"
	EnvLogLevel = "TRADEJOURNAL_LOG_LEVEL"
	EnvLeverage = "TRADEJOURNAL_LEVERAGE"
	EnvCurrency = "TRADEJOURNAL_CURRENCY"
	EnvBalance  = "TRADEJOURNAL_BALANCE"
)

// Config represents the complete journal configuration
type Config struct {
	Account   AccountConfig   `json:"account" yaml:"account"`
	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Log       LogConfig       `json:"log" yaml:"log"`
}

// AccountConfig describes the account the trades were made in
type AccountConfig struct {
	Currency        string  `json:"currency" yaml:"currency"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
}

// AnalyticsConfig holds the P&L and sizing parameters
type AnalyticsConfig struct {
	Leverage    float64 `json:"leverage" yaml:"leverage"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"` // 1 == 1%
}

// JournalConfig selects the trade store
type JournalConfig struct {
	Type    string `json:"type" yaml:"type"` // "csv" or "sqlite"
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads path when it is not empty, loads an optional .env file and
// applies the environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given env files, or ./.env. Missing files are
// not an error and variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides file values from TRADEJOURNAL_* variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Account.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvLeverage); v != "" {
		lev, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvLeverage, v, err)
		}
		c.Analytics.Leverage = lev
	}
	if v := os.Getenv(EnvBalance); v != "" {
		bal, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvBalance, v, err)
		}
		c.Account.StartingBalance = bal
	}
	return nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	if c.Account.Currency == "" {
		return invalid("account.currency is required")
	}
	if _, err := currency.ParseISO(c.Account.Currency); err != nil {
		return invalid("account.currency %q is not an ISO 4217 code", c.Account.Currency)
	}
	if c.Account.StartingBalance < 0 {
		return invalid("account.starting_balance cannot be negative")
	}
	if c.Analytics.Leverage <= 0 {
		return invalid("analytics.leverage must be positive")
	}
	if c.Analytics.RiskPercent <= 0 || c.Analytics.RiskPercent > 100 {
		return invalid("analytics.risk_percent must be between 0 and 100")
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return invalid("journal db_path required for SQLite type")
		}
	case "csv":
		if c.Journal.CSVPath == "" {
			return invalid("journal csv_path required for CSV type")
		}
	default:
		return invalid("journal.type must be 'csv' or 'sqlite'")
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		return invalid("log.format must be 'json' or 'console'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:        "USD",
			StartingBalance: 10000,
		},
		Analytics: AnalyticsConfig{
			Leverage:    50,
			RiskPercent: 1,
		},
		Journal: JournalConfig{
			Type:    "sqlite",
			DBPath:  "./tradejournal.sqlite",
			CSVPath: "./trades.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
