package db

import (
	"context"
	"time"
)

// Document groups the bitexts of one source text.
type Document struct {
	Id        int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentSpec struct {
	Name string
}

type DocumentInterface interface {
	Find(ctx context.Context) ([]Document, error)

	// error: ErrMissing when no such document.
	Get(ctx context.Context, id int) (Document, error)

	Create(ctx context.Context, spec DocumentSpec) (Document, error)

	// error: ErrMissing when no such document.
	Update(ctx context.Context, id int, spec DocumentSpec) (Document, error)

	// Delete removes the document and, by cascade, its bitexts
	// and their annotations.
	//
	// error: ErrMissing when no such document.
	Delete(ctx context.Context, id int) error
}
