package db

import (
	"context"
	"time"
)

// Marking is one recorded error span against one system's output
// within an annotation.
//
// ErrorStart and ErrorEnd are word offsets into the marked text
// (the bitext source when IsSource, the system translation otherwise),
// counted after splitting on single spaces.
type Marking struct {
	Id            int
	AnnotationId  int
	SystemId      int
	ErrorStart    int
	ErrorEnd      int
	ErrorCategory string
	ErrorSeverity string
	IsSource      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MarkingSpec struct {
	AnnotationId  int
	SystemId      int
	ErrorStart    int
	ErrorEnd      int
	ErrorCategory string
	ErrorSeverity string
	IsSource      bool
}

type MarkingInterface interface {
	// FindByAnnotation returns all markings of the annotation,
	// across all systems.
	FindByAnnotation(ctx context.Context, annotationId int) ([]Marking, error)

	// GetInScope returns the marking identified by id, only when it
	// belongs to the (annotation, system) pair.
	//
	// error: ErrMissing when no such marking in that scope.
	GetInScope(ctx context.Context, id int, annotationId int, systemId int) (Marking, error)

	// error: ErrInvalidReference when AnnotationId or SystemId does
	// not resolve.
	Create(ctx context.Context, spec MarkingSpec) (Marking, error)

	// Update overwrites the marking identified by id within the
	// (annotation, system) scope of spec.
	//
	// error: ErrMissing when no such marking in that scope.
	Update(ctx context.Context, id int, spec MarkingSpec) (Marking, error)

	// DeleteInScope removes the marking identified by id, only when it
	// belongs to the (annotation, system) pair.
	//
	// error: ErrMissing when no such marking in that scope.
	DeleteInScope(ctx context.Context, id int, annotationId int, systemId int) error
}

// CategoryName maps error category codes to their human-readable names.
//
// The table is closed: markings are rejected at write time when their
// category is not listed here.
var CategoryName = map[string]string{
	"000": "no-error",
	"A01": "Accuracy/Mistranslation",
	"A02": "Accuracy/PositiveNegative",
	"A03": "Accuracy/Numbers",
	"A04": "Accuracy/Pronoun",
	"A05": "Accuracy/UniqueNoun",
	"A06": "Accuracy/Omission",
	"A07": "Accuracy/Addition",
	"A08": "Accuracy/Untranslated",
	"A09": "Accuracy/Others",
	"F01": "Fluency/Spelling",
	"F02": "Fluency/WrongKanji",
	"F03": "Fluency/Grammar",
	"F04": "Fluency/Misuse",
	"F05": "Fluency/Collocation",
	"F06": "Fluency/GrammarRegister",
	"F07": "Fluency/Ambiguity",
	"F08": "Fluency/Unintelligible",
	"F09": "Fluency/Symbols",
	"F10": "Fluency/Others",
	"T01": "Terminology/Termbase",
	"T02": "Terminology/Domain",
	"T03": "Terminology/Inconsistent",
	"T04": "Terminology/Others",
	"S01": "Style/Inconsistent",
	"S02": "Style/Register",
	"S03": "Style/Inconsistent",
	"S04": "Style/Others",
	"L01": "LocaleConvention",
	"SE1": "SourceError",
}

// SeverityName maps error severity codes to their human-readable names.
// Closed table, like CategoryName.
var SeverityName = map[string]string{
	"no-error":      "no-error",
	"critical":      "Critical",
	"minor":         "Minor",
	"major":         "Major",
	"not-judgeable": "NotJudgeable",
}
