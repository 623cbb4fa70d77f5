package db

import (
	"context"
	"time"
)

// Annotation is one user's judgement task for one bitext
// within one evaluation campaign.
type Annotation struct {
	Id           int
	UserId       int
	EvaluationId int
	BitextId     int
	IsAnnotated  bool
	Comment      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AnnotationSpec struct {
	UserId       int
	EvaluationId int
	BitextId     int
	IsAnnotated  bool
	Comment      *string
}

type AnnotationInterface interface {
	// FindByUser returns all annotations owned by the user.
	FindByUser(ctx context.Context, userId int) ([]Annotation, error)

	// FindByEvaluation returns all annotations of the evaluation,
	// whoever owns them.
	FindByEvaluation(ctx context.Context, evaluationId int) ([]Annotation, error)

	// FindByEvaluationAndUser returns the annotations of the evaluation
	// owned by the user.
	FindByEvaluationAndUser(ctx context.Context, evaluationId int, userId int) ([]Annotation, error)

	// error: ErrMissing when no such annotation.
	Get(ctx context.Context, id int) (Annotation, error)

	// error: ErrInvalidReference when UserId, EvaluationId or BitextId
	// does not resolve.
	Create(ctx context.Context, spec AnnotationSpec) (Annotation, error)

	// error: ErrMissing when no such annotation.
	// error: ErrInvalidReference when UserId, EvaluationId or BitextId
	// does not resolve.
	Update(ctx context.Context, id int, spec AnnotationSpec) (Annotation, error)

	// Delete removes the annotation and, by cascade, its annotation
	// systems and markings.
	//
	// error: ErrMissing when no such annotation.
	Delete(ctx context.Context, id int) error
}

// AnnotationSystem is the translation text one system produced for
// the bitext under an annotation. At most one per (annotation, system).
type AnnotationSystem struct {
	Id           int
	AnnotationId int
	SystemId     int
	Translation  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AnnotationSystemSpec struct {
	AnnotationId int
	SystemId     int
	Translation  string
}

type AnnotationSystemInterface interface {
	// FindByAnnotation returns all translation records of the annotation.
	FindByAnnotation(ctx context.Context, annotationId int) ([]AnnotationSystem, error)

	// GetByAnnotationAndSystem returns the translation record of the
	// system within the annotation.
	//
	// error: ErrMissing when no such record.
	GetByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) (AnnotationSystem, error)

	// error: ErrConflict when the (annotation, system) pair already
	// has a translation.
	// error: ErrInvalidReference when AnnotationId or SystemId does
	// not resolve.
	Create(ctx context.Context, spec AnnotationSystemSpec) (AnnotationSystem, error)

	// UpdateTranslation overwrites the translation of the record
	// identified by (annotationId, systemId).
	//
	// error: ErrMissing when no such record.
	UpdateTranslation(ctx context.Context, annotationId int, systemId int, translation string) (AnnotationSystem, error)

	// DeleteByAnnotationAndSystem removes the record identified by
	// (annotationId, systemId) and, by cascade, nothing: markings
	// reference the system directly.
	//
	// error: ErrMissing when no such record.
	DeleteByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) error
}
