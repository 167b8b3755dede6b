package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/01moynul/todo-api-golang/internal/config"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// PoolOptions controls the size and recycling of the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolOptions mirrors the limits the API has always run with.
var DefaultPoolOptions = PoolOptions{
	MaxOpenConns:    25,
	MaxIdleConns:    25,
	ConnMaxLifetime: 5 * time.Minute,
}

// OpenDB initializes and returns the connection pool described by cfg.
func OpenDB(cfg config.DBConfig) (*sql.DB, error) {
	dsn, err := cfg.DataSourceName()
	if err != nil {
		return nil, err
	}

	return OpenDBWithDSN(cfg.Driver, dsn, PoolOptions{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}

// OpenDBWithDSN opens a pool for any registered driver and DSN, applies the
// pool limits, and pings once so a bad DSN fails at startup rather than on
// the first request.
//
// The returned *sql.DB is safe for concurrent use and is shared by every
// request as-is.
func OpenDBWithDSN(driver, dsn string, opts PoolOptions) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s pool: %w", driver, err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.Printf("Database connection pool established successfully (%s)", driver)
	return db, nil
}
