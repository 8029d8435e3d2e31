// Package db opens the gorm connection backing the symbol catalogue.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ohlc_backend/internal/platform/config"
)

// retryInterval is the pause between failed connection attempts.
const retryInterval = 3 * time.Second

// Config holds database connection settings.
type Config struct {
	Driver         string // "sqlite" or "postgres"
	SQLitePath     string
	User           string
	Password       string
	Name           string
	Host           string
	Port           string
	SSLMode        string
	ConnectTimeout time.Duration
}

// ConfigFrom converts the database section of the application config.
func ConfigFrom(c config.DatabaseConfig) Config {
	return Config{
		Driver:         c.Driver,
		SQLitePath:     c.SQLitePath,
		User:           c.User,
		Password:       c.Password,
		Name:           c.Name,
		Host:           c.Host,
		Port:           c.Port,
		SSLMode:        c.SSLMode,
		ConnectTimeout: c.ConnectTimeout,
	}
}

// BuildDSN はPostgreSQL用のkey=value形式のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry はtimeoutに達するまで3秒間隔で接続を試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
}

// Open connects using cfg.Driver and migrates models.
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "sqlite", "":
		path := cfg.SQLitePath
		if path == "" {
			path = ":memory:"
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		gdb, err = gorm.Open(sqlite.Open(path), gormConfig())
	case "postgres":
		gdb, err = ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormConfig())
		})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if len(models) > 0 {
		if err := gdb.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return gdb, nil
}
