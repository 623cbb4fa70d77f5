package db

import (
	"context"
	"time"
)

// System is one machine translation engine under test.
type System struct {
	Id        int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SystemSpec struct {
	Name string
}

type SystemInterface interface {
	Find(ctx context.Context) ([]System, error)

	// error: ErrMissing when no such system.
	Get(ctx context.Context, id int) (System, error)

	// error: ErrMissing when no system has the name.
	GetByName(ctx context.Context, name string) (System, error)

	// error: ErrConflict when another system has the same name.
	Create(ctx context.Context, spec SystemSpec) (System, error)

	// error: ErrMissing when no such system.
	// error: ErrConflict when another system has the same name.
	Update(ctx context.Context, id int, spec SystemSpec) (System, error)

	// Delete removes the system and, by cascade, its annotation
	// systems and markings.
	//
	// error: ErrMissing when no such system.
	Delete(ctx context.Context, id int) error
}
