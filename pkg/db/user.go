package db

import (
	"context"
	"time"
)

// User is an annotator account.
//
// Password holds the one-way hash of the user's password, never the plain text.
type User struct {
	Id             int
	Email          string
	Password       string
	NativeLanguage string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserSpec is what a caller decides about a User.
// Everything else (id, timestamps) is given by the store.
type UserSpec struct {
	Email          string
	Password       string
	NativeLanguage string
}

type UserInterface interface {
	// Find returns all users, in store-iteration order.
	Find(ctx context.Context) ([]User, error)

	// Get returns the user identified by id.
	//
	// error: ErrMissing when no such user.
	Get(ctx context.Context, id int) (User, error)

	// GetByEmail returns the user having email.
	//
	// error: ErrMissing when no such user.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Create stores a new user and returns it as stored.
	//
	// error: ErrConflict when another user has the same email.
	Create(ctx context.Context, spec UserSpec) (User, error)

	// Update overwrites the user identified by id.
	//
	// error: ErrMissing when no such user.
	// error: ErrConflict when another user has the same email.
	Update(ctx context.Context, id int, spec UserSpec) (User, error)

	// Delete removes the user identified by id and, by cascade,
	// its annotations (with their annotation systems and markings).
	//
	// error: ErrMissing when no such user.
	Delete(ctx context.Context, id int) error
}
