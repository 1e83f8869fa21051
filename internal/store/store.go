// Package store is the data-access layer for steward. Every method maps to a
// single SQL statement against Postgres; there is no cross-call transaction
// state and no caching.
package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"steward/pkg/logging"
)

// Sentinel errors returned by store methods. Constraint violations from the
// driver are translated so callers never see pq error codes.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrForeignKey    = errors.New("referenced record does not exist")
)

// Store provides typed CRUD operations per entity
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// New creates a store backed by the given database handle
func New(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// translateError maps driver errors onto the store's sentinel errors.
// Postgres class 23 codes: 23505 unique_violation, 23503 foreign_key_violation.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrAlreadyExists
		case "23503":
			return ErrForeignKey
		}
	}
	return err
}
