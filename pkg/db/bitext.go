package db

import (
	"context"
	"time"
)

// Bitext is a source/target segment pair belonging to a document.
type Bitext struct {
	Id         int
	DocumentId int
	Source     string
	Target     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BitextSpec struct {
	DocumentId int
	Source     string
	Target     string
}

type BitextInterface interface {
	Find(ctx context.Context) ([]Bitext, error)

	// FindByDocument returns all bitexts belonging to the document.
	FindByDocument(ctx context.Context, documentId int) ([]Bitext, error)

	// error: ErrMissing when no such bitext.
	Get(ctx context.Context, id int) (Bitext, error)

	// error: ErrInvalidReference when spec.DocumentId does not resolve.
	Create(ctx context.Context, spec BitextSpec) (Bitext, error)

	// error: ErrMissing when no such bitext.
	// error: ErrInvalidReference when spec.DocumentId does not resolve.
	Update(ctx context.Context, id int, spec BitextSpec) (Bitext, error)

	// Delete removes the bitext and, by cascade, its annotations.
	//
	// error: ErrMissing when no such bitext.
	Delete(ctx context.Context, id int) error
}
