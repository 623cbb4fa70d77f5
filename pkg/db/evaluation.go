package db

import (
	"context"
	"time"
)

// EvaluationType is the kind of judgement an evaluation campaign collects.
type EvaluationType string

const (
	// annotators mark error spans on system outputs.
	ErrorMarking EvaluationType = "error-marking"
)

// Evaluation is a named annotation campaign.
type Evaluation struct {
	Id         int
	Name       string
	Type       EvaluationType
	IsFinished bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type EvaluationSpec struct {
	Name       string
	Type       EvaluationType
	IsFinished bool
}

type EvaluationInterface interface {
	Find(ctx context.Context) ([]Evaluation, error)

	// error: ErrMissing when no such evaluation.
	Get(ctx context.Context, id int) (Evaluation, error)

	// error: ErrMissing when no evaluation has the name.
	GetByName(ctx context.Context, name string) (Evaluation, error)

	// error: ErrConflict when another evaluation has the same name.
	Create(ctx context.Context, spec EvaluationSpec) (Evaluation, error)

	// error: ErrMissing when no such evaluation.
	// error: ErrConflict when another evaluation has the same name.
	Update(ctx context.Context, id int, spec EvaluationSpec) (Evaluation, error)

	// Delete removes the evaluation and, by cascade, its annotations.
	//
	// error: ErrMissing when no such evaluation.
	Delete(ctx context.Context, id int) error
}
