// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CONFIG_PATH is unset.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Provider ProviderConfig `yaml:"provider"`
	Database DatabaseConfig `yaml:"database"`
	// Catalog overrides the built-in symbol catalogue when non-empty.
	Catalog []CatalogEntry `yaml:"catalog" validate:"dive"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	RequestTimeout  time.Duration `yaml:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ProviderConfig selects and configures the market data provider.
type ProviderConfig struct {
	Name       string           `yaml:"name" validate:"oneof=yahoo financego twelvedata polygon"`
	Timeout    time.Duration    `yaml:"timeout" validate:"gt=0"`
	UserAgent  string           `yaml:"user_agent"`
	Yahoo      YahooConfig      `yaml:"yahoo"`
	TwelveData TwelveDataConfig `yaml:"twelvedata"`
	Polygon    PolygonConfig    `yaml:"polygon"`
}

// YahooConfig configures the Yahoo Finance chart adapter.
type YahooConfig struct {
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

// TwelveDataConfig configures the Twelve Data adapter.
type TwelveDataConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}

// PolygonConfig configures the Polygon.io adapter.
type PolygonConfig struct {
	APIKey string `yaml:"api_key"`
}

// DatabaseConfig configures the symbol catalogue store.
type DatabaseConfig struct {
	Driver         string        `yaml:"driver" validate:"oneof=sqlite postgres none"`
	SQLitePath     string        `yaml:"sqlite_path"`
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Name           string        `yaml:"name"`
	SSLMode        string        `yaml:"sslmode"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// CatalogEntry is one symbol of the catalogue.
type CatalogEntry struct {
	Code   string `yaml:"code" validate:"required"`
	Name   string `yaml:"name" validate:"required"`
	Sector string `yaml:"sector"`
	Market string `yaml:"market"`
	Ticker string `yaml:"ticker"`
}

// LoadDotEnv loads .env files into the environment when they exist.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug(".env not loaded; using system environment variables", "error", err)
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString(&c.Server.Addr, "SERVER_ADDR")
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	setString(&c.Provider.Name, "HISTORY_PROVIDER")
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse PROVIDER_TIMEOUT: %w", err)
		}
		c.Provider.Timeout = d
	}
	setString(&c.Provider.Yahoo.BaseURL, "YAHOO_BASE_URL")
	setString(&c.Provider.TwelveData.APIKey, "TWELVE_DATA_API_KEY")
	setString(&c.Provider.TwelveData.BaseURL, "TWELVE_DATA_BASE_URL")
	setString(&c.Provider.Polygon.APIKey, "POLYGON_API_KEY")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.SQLitePath, "SQLITE_PATH")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Provider.Name == "" {
		c.Provider.Name = "yahoo"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 10 * time.Second
	}
	if c.Provider.UserAgent == "" {
		c.Provider.UserAgent = "Mozilla/5.0 (compatible; ohlc-backend/1.0)"
	}
	if c.Provider.Yahoo.BaseURL == "" {
		c.Provider.Yahoo.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Provider.TwelveData.BaseURL == "" {
		c.Provider.TwelveData.BaseURL = "https://api.twelvedata.com"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/symbols.db"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = 30 * time.Second
	}
}

// Validate checks field constraints and provider credentials.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Provider.Name {
	case "twelvedata":
		if c.Provider.TwelveData.APIKey == "" {
			return fmt.Errorf("provider.twelvedata.api_key is required for provider %q", c.Provider.Name)
		}
	case "polygon":
		if c.Provider.Polygon.APIKey == "" {
			return fmt.Errorf("provider.polygon.api_key is required for provider %q", c.Provider.Name)
		}
	}
	if c.Database.Driver == "postgres" && (c.Database.Host == "" || c.Database.Name == "") {
		return fmt.Errorf("database.host and database.name are required for postgres")
	}
	return nil
}
