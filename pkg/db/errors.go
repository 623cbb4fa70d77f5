package db

import "errors"

var (
	// requested record does not exist.
	ErrMissing = errors.New("missing record")

	// a write collides with an unique constraint (name, email, ...).
	ErrConflict = errors.New("conflicting record")

	// a write points at a foreign key which does not resolve.
	ErrInvalidReference = errors.New("invalid reference")
)
