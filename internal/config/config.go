// Package config loads the API's runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port              string
	GinMode           string
	CORSAllowedOrigin string

	// StrictNotFound makes PUT/DELETE on a missing id answer 404 instead of 200.
	StrictNotFound bool

	DB DBConfig
}

// DBConfig describes how to reach the database and size the pool.
type DBConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads a .env file if one exists, then builds the Config from the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	return New(os.Getenv)
}

// New builds a Config using getenv to look up each variable.
func New(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Port:              get("PORT", "3030"),
		GinMode:           get("GIN_MODE", gin.DebugMode),
		CORSAllowedOrigin: get("CORS_ALLOWED_ORIGIN", "*"),
		DB: DBConfig{
			Driver:   get("DB_DRIVER", DriverMySQL),
			DSN:      getenv("DB_DSN"),
			Host:     get("DB_HOST", "127.0.0.1"),
			Port:     get("DB_PORT", "3306"),
			User:     get("DB_USER", "root"),
			Password: getenv("DB_PASSWORD"),
			Name:     get("DB_NAME", "todo_db"),
		},
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	switch cfg.DB.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DB.Driver)
	}

	var err error
	if cfg.StrictNotFound, err = strconv.ParseBool(get("TODO_STRICT_NOT_FOUND", "false")); err != nil {
		return nil, fmt.Errorf("TODO_STRICT_NOT_FOUND: %w", err)
	}
	if cfg.DB.MaxOpenConns, err = strconv.Atoi(get("DB_MAX_OPEN_CONNS", "25")); err != nil {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DB.MaxIdleConns, err = strconv.Atoi(get("DB_MAX_IDLE_CONNS", "25")); err != nil {
		return nil, fmt.Errorf("DB_MAX_IDLE_CONNS: %w", err)
	}
	if cfg.DB.ConnMaxLifetime, err = time.ParseDuration(get("DB_CONN_MAX_LIFETIME", "5m")); err != nil {
		return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}

	return cfg, nil
}

// DataSourceName returns the DSN handed to sql.Open.
//
// For MySQL the DSN always carries clientFoundRows=true, so an UPDATE that
// matches an already-completed row still reports one affected row.
func (d DBConfig) DataSourceName() (string, error) {
	if d.Driver == DriverSQLite {
		if d.DSN == "" {
			return "", errors.New("DB_DSN is required when DB_DRIVER is sqlite3")
		}
		return d.DSN, nil
	}

	var mc *mysql.Config
	if d.DSN != "" {
		parsed, err := mysql.ParseDSN(d.DSN)
		if err != nil {
			return "", fmt.Errorf("DB_DSN: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(d.Host, d.Port)
		mc.DBName = d.Name
	}
	mc.ClientFoundRows = true

	return mc.FormatDSN(), nil
}
