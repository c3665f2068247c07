package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a statement touches no rows.
// Single-row reads surface pgx.ErrNoRows instead; IsNotFound covers both.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err means an unresolvable record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}
