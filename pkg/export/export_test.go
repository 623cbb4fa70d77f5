package export_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/db/mocks"
	"github.com/yaraku/he-tool/pkg/export"
	"github.com/yaraku/he-tool/pkg/utils/cmp"
	"github.com/yaraku/he-tool/pkg/utils/try"
)

func ref[T any](v T) *T {
	return &v
}

// fixture wires a mock database holding one evaluation with one
// annotation. Tests overwrite the members they care about.
func fixture() *mocks.Database {
	db := mocks.NewDatabase()

	db.Evaluation.Impl.Get = func(ctx context.Context, id int) (kdb.Evaluation, error) {
		if id != 10 {
			return kdb.Evaluation{}, kdb.ErrMissing
		}
		return kdb.Evaluation{Id: 10, Name: "campaign-1", Type: kdb.ErrorMarking}, nil
	}
	db.Annotation.Impl.FindByEvaluation = func(ctx context.Context, evaluationId int) ([]kdb.Annotation, error) {
		return []kdb.Annotation{
			{
				Id: 100, UserId: 1, EvaluationId: 10, BitextId: 1000,
				IsAnnotated: true, Comment: ref("word order"),
			},
		}, nil
	}
	db.Bitext.Impl.Get = func(ctx context.Context, id int) (kdb.Bitext, error) {
		if id != 1000 {
			return kdb.Bitext{}, kdb.ErrMissing
		}
		return kdb.Bitext{
			Id: 1000, DocumentId: 50,
			Source: "The cat sat", Target: "Die Katze sass",
		}, nil
	}
	db.User.Impl.Get = func(ctx context.Context, id int) (kdb.User, error) {
		if id != 1 {
			return kdb.User{}, kdb.ErrMissing
		}
		return kdb.User{Id: 1, Email: "annotator@example.com", NativeLanguage: "de"}, nil
	}
	db.Document.Impl.Get = func(ctx context.Context, id int) (kdb.Document, error) {
		if id != 50 {
			return kdb.Document{}, kdb.ErrMissing
		}
		return kdb.Document{Id: 50, Name: "news-test"}, nil
	}
	db.System.Impl.Get = func(ctx context.Context, id int) (kdb.System, error) {
		if id != 7 {
			return kdb.System{}, kdb.ErrMissing
		}
		return kdb.System{Id: 7, Name: "mt-baseline"}, nil
	}
	db.AnnotationSystem.Impl.GetByAnnotationAndSystem = func(ctx context.Context, annotationId int, systemId int) (kdb.AnnotationSystem, error) {
		if annotationId != 100 || systemId != 7 {
			return kdb.AnnotationSystem{}, kdb.ErrMissing
		}
		return kdb.AnnotationSystem{
			Id: 700, AnnotationId: 100, SystemId: 7,
			Translation: "Die Katze sass",
		}, nil
	}
	db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
		return []kdb.Marking{}, nil
	}

	return db
}

func TestForEvaluation(t *testing.T) {
	ctx := context.Background()

	t.Run("when a marking is on the source, it highlights the source words", func(t *testing.T) {
		db := fixture()
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5000, AnnotationId: 100, SystemId: 7,
					ErrorStart: 1, ErrorEnd: 2,
					ErrorCategory: "A01", ErrorSeverity: "major",
					IsSource: true,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		expected := []string{
			"mt-baseline\tnews-test\t1000\t1000\tannotator" +
				"\tThe <v> cat sat </v>\tDie Katze sass" +
				"\tAccuracy/Mistranslation\tMajor\tword order\n",
		}
		if !cmp.SliceEq(actual, expected) {
			t.Errorf("unexpected rows:\nactual:   %q\nexpected: %q", actual, expected)
		}
	})

	t.Run("when a marking is on the translation, it highlights the translation words", func(t *testing.T) {
		db := fixture()
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5001, AnnotationId: 100, SystemId: 7,
					ErrorStart: 0, ErrorEnd: 0,
					ErrorCategory: "F03", ErrorSeverity: "minor",
					IsSource: false,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		expected := []string{
			"mt-baseline\tnews-test\t1000\t1000\tannotator" +
				"\tThe cat sat\t<v> Die </v> Katze sass" +
				"\tFluency/Grammar\tMinor\tword order\n",
		}
		if !cmp.SliceEq(actual, expected) {
			t.Errorf("unexpected rows:\nactual:   %q\nexpected: %q", actual, expected)
		}
	})

	t.Run("it keeps literal newlines as a placeholder token", func(t *testing.T) {
		db := fixture()
		db.Bitext.Impl.Get = func(ctx context.Context, id int) (kdb.Bitext, error) {
			return kdb.Bitext{
				Id: 1000, DocumentId: 50,
				Source: "Line one\nand two", Target: "",
			}, nil
		}
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5002, AnnotationId: 100, SystemId: 7,
					ErrorStart: 0, ErrorEnd: 0,
					ErrorCategory: "000", ErrorSeverity: "no-error",
					IsSource: true,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		if len(actual) != 1 {
			t.Fatalf("expected 1 row, got %d", len(actual))
		}
		expected := "mt-baseline\tnews-test\t1000\t1000\tannotator" +
			"\t<v> Line </v> one<NEWLINE>and two\tDie Katze sass" +
			"\tno-error\tno-error\tword order\n"
		if actual[0] != expected {
			t.Errorf("unexpected row:\nactual:   %q\nexpected: %q", actual[0], expected)
		}
	})

	t.Run("when a span runs past the last word, the markers clamp to the end", func(t *testing.T) {
		db := fixture()
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5003, AnnotationId: 100, SystemId: 7,
					ErrorStart: 2, ErrorEnd: 9,
					ErrorCategory: "A06", ErrorSeverity: "critical",
					IsSource: true,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		if len(actual) != 1 {
			t.Fatalf("expected 1 row, got %d", len(actual))
		}
		expected := "mt-baseline\tnews-test\t1000\t1000\tannotator" +
			"\tThe cat <v> sat </v>\tDie Katze sass" +
			"\tAccuracy/Omission\tCritical\tword order\n"
		if actual[0] != expected {
			t.Errorf("unexpected row:\nactual:   %q\nexpected: %q", actual[0], expected)
		}
	})

	t.Run("when the annotation has no comment, the last column is empty", func(t *testing.T) {
		db := fixture()
		db.Annotation.Impl.FindByEvaluation = func(ctx context.Context, evaluationId int) ([]kdb.Annotation, error) {
			return []kdb.Annotation{
				{Id: 100, UserId: 1, EvaluationId: 10, BitextId: 1000},
			}, nil
		}
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5004, AnnotationId: 100, SystemId: 7,
					ErrorStart: 0, ErrorEnd: 0,
					ErrorCategory: "000", ErrorSeverity: "no-error",
					IsSource: true,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		if len(actual) != 1 {
			t.Fatalf("expected 1 row, got %d", len(actual))
		}
		expected := "mt-baseline\tnews-test\t1000\t1000\tannotator" +
			"\t<v> The </v> cat sat\tDie Katze sass" +
			"\tno-error\tno-error\t\n"
		if actual[0] != expected {
			t.Errorf("unexpected row:\nactual:   %q\nexpected: %q", actual[0], expected)
		}
	})

	t.Run("when the evaluation does not exist, it returns ErrMissing", func(t *testing.T) {
		db := fixture()

		if _, err := export.ForEvaluation(ctx, db, 999); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("expected ErrMissing, got %v", err)
		}
	})

	t.Run("when an annotation's bitext is gone, the annotation is skipped", func(t *testing.T) {
		db := fixture()
		db.Bitext.Impl.Get = func(ctx context.Context, id int) (kdb.Bitext, error) {
			return kdb.Bitext{}, kdb.ErrMissing
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		if len(actual) != 0 {
			t.Errorf("expected no rows, got %q", actual)
		}
	})

	t.Run("when a marking has no translation record, the marking is skipped", func(t *testing.T) {
		db := fixture()
		db.AnnotationSystem.Impl.GetByAnnotationAndSystem = func(ctx context.Context, annotationId int, systemId int) (kdb.AnnotationSystem, error) {
			return kdb.AnnotationSystem{}, kdb.ErrMissing
		}
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{
					Id: 5005, AnnotationId: 100, SystemId: 7,
					ErrorStart: 0, ErrorEnd: 0,
					ErrorCategory: "000", ErrorSeverity: "no-error",
					IsSource: true,
				},
			}, nil
		}

		actual := try.To(export.ForEvaluation(ctx, db, 10)).OrFatal(t)

		if len(actual) != 0 {
			t.Errorf("expected no rows, got %q", actual)
		}
	})

	t.Run("when a marking carries an unknown code, the export aborts", func(t *testing.T) {
		for name, marking := range map[string]kdb.Marking{
			"category": {
				Id: 5006, AnnotationId: 100, SystemId: 7,
				ErrorCategory: "Z99", ErrorSeverity: "major", IsSource: true,
			},
			"severity": {
				Id: 5007, AnnotationId: 100, SystemId: 7,
				ErrorCategory: "A01", ErrorSeverity: "catastrophic", IsSource: true,
			},
		} {
			t.Run(fmt.Sprintf("unknown %s", name), func(t *testing.T) {
				db := fixture()
				m := marking
				db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
					return []kdb.Marking{m}, nil
				}

				if _, err := export.ForEvaluation(ctx, db, 10); !errors.Is(err, export.ErrUnknownCode) {
					t.Errorf("expected ErrUnknownCode, got %v", err)
				}
			})
		}
	})

	t.Run("when a store read fails, the error propagates", func(t *testing.T) {
		db := fixture()
		wantErr := errors.New("connection reset")
		db.Annotation.Impl.FindByEvaluation = func(ctx context.Context, evaluationId int) ([]kdb.Annotation, error) {
			return nil, wantErr
		}

		if _, err := export.ForEvaluation(ctx, db, 10); !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
	})
}
