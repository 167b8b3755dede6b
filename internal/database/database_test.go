package database

import (
	"path/filepath"
	"testing"

	"github.com/01moynul/todo-api-golang/internal/config"
)

func TestOpenDBWithDSNSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "todos.db")

	db, err := OpenDBWithDSN(config.DriverSQLite, dsn, DefaultPoolOptions)
	if err != nil {
		t.Fatalf("OpenDBWithDSN() error = %v", err)
	}
	defer db.Close()

	if got := db.Stats().MaxOpenConnections; got != DefaultPoolOptions.MaxOpenConns {
		t.Errorf("MaxOpenConnections = %d, want %d", got, DefaultPoolOptions.MaxOpenConns)
	}
}

func TestOpenDBUsesConfig(t *testing.T) {
	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "todos.db"),
		MaxOpenConns: 3,
		MaxIdleConns: 1,
	}

	db, err := OpenDB(cfg)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	if got := db.Stats().MaxOpenConnections; got != 3 {
		t.Errorf("MaxOpenConnections = %d, want 3", got)
	}
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDBWithDSN("nosuchdriver", "x", DefaultPoolOptions); err == nil {
		t.Fatal("expected error for unregistered driver")
	}
}

func TestOpenDBRequiresSQLiteDSN(t *testing.T) {
	if _, err := OpenDB(config.DBConfig{Driver: config.DriverSQLite}); err == nil {
		t.Fatal("expected error for empty sqlite3 DSN")
	}
}
