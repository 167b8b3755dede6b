package handlers

import (
	"database/sql"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB *sql.DB // Shared connection pool; safe for concurrent use without extra locking

	// StrictNotFound reports 404 when an update or delete touches no rows.
	// Off by default: a missing id is a silent no-op.
	StrictNotFound bool
}
