// Package store implements PostgreSQL persistence for freets, users,
// timelines, events, and classifications. Reference fields are typed
// foreign keys; callers dereference them explicitly, there is no implicit
// population at read time.
package store

import (
	"database/sql"

	"github.com/lib/pq"
)

// Store wraps the database connection shared by all entity queries.
type Store struct {
	db *sql.DB
}

// New creates a Store backed by the given connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
