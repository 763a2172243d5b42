// Package db は銘柄カタログテーブル用のgorm接続を提供します。
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config.Driver に指定できる値です。
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const retryInterval = 3 * time.Second

// ErrUnsupportedDriver はsqlite・postgres以外のドライバーが指定された場合に返されます。
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config はカタログDBの接続設定です。
// Driverが空の場合、DBは未設定として扱います。
type Config struct {
	Driver   string
	Path     string // sqliteのファイルパス
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled はDBドライバーが設定されているかを返します。
func (c Config) Enabled() bool { return c.Driver != "" }

// LoadConfigFromEnv は環境変数からDB設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:   os.Getenv("CATALOG_DB_DRIVER"),
		Path:     getEnv("CATALOG_DB_PATH", "catalog.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// BuildDSN はドライバーに応じた接続文字列を返します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// Opener はDSNからgorm接続を開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor は設定されたドライバー用のOpenerを返します。
func OpenerFor(cfg Config) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch cfg.Driver {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(sqlite.Open(dsn), gcfg) }, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(postgres.Open(dsn), gcfg) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

// Open は設定されたDBに接続します。timeout まで再試行します。
func Open(cfg Config, timeout time.Duration) (*gorm.DB, error) {
	opener, err := OpenerFor(cfg)
	if err != nil {
		return nil, err
	}
	return ConnectWithRetry(BuildDSN(cfg), timeout, opener)
}

// ConnectWithRetry は接続に成功するか timeout を過ぎるまで、数秒おきに opener を呼び出します。
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

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
