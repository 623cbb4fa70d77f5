package document_test

import (
	"context"
	"errors"
	"testing"

	kdb "github.com/yaraku/he-tool/pkg/db"
	kpgann "github.com/yaraku/he-tool/pkg/db/postgres/annotation"
	kpgans "github.com/yaraku/he-tool/pkg/db/postgres/annotationsystem"
	kpgbit "github.com/yaraku/he-tool/pkg/db/postgres/bitext"
	kpgdoc "github.com/yaraku/he-tool/pkg/db/postgres/document"
	kpgeval "github.com/yaraku/he-tool/pkg/db/postgres/evaluation"
	kpgmark "github.com/yaraku/he-tool/pkg/db/postgres/marking"
	"github.com/yaraku/he-tool/pkg/db/postgres/pool/testenv"
	kpgsys "github.com/yaraku/he-tool/pkg/db/postgres/system"
	kpguser "github.com/yaraku/he-tool/pkg/db/postgres/user"
	"github.com/yaraku/he-tool/pkg/utils/try"
)

func TestDocument_Delete(t *testing.T) {
	poolBroaker := testenv.NewPoolBroaker(context.Background(), t)

	t.Run("deleting a document takes its bitexts, their annotations and markings with it", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)

		users := kpguser.New(pool)
		documents := kpgdoc.New(pool)
		bitexts := kpgbit.New(pool)
		evaluations := kpgeval.New(pool)
		systems := kpgsys.New(pool)
		annotations := kpgann.New(pool)
		annotationSystems := kpgans.New(pool)
		markings := kpgmark.New(pool)

		user := try.To(users.Create(ctx, kdb.UserSpec{
			Email:          "annotator@example.com",
			Password:       "$2a$10$0123456789012345678901",
			NativeLanguage: "de",
		})).OrFatal(t)
		document := try.To(documents.Create(ctx, kdb.DocumentSpec{Name: "news-test"})).OrFatal(t)
		bitext1 := try.To(bitexts.Create(ctx, kdb.BitextSpec{
			DocumentId: document.Id, Source: "The cat sat", Target: "Die Katze sass",
		})).OrFatal(t)
		bitext2 := try.To(bitexts.Create(ctx, kdb.BitextSpec{
			DocumentId: document.Id, Source: "It rains", Target: "Es regnet",
		})).OrFatal(t)
		evaluation := try.To(evaluations.Create(ctx, kdb.EvaluationSpec{
			Name: "campaign-1", Type: kdb.ErrorMarking,
		})).OrFatal(t)
		system := try.To(systems.Create(ctx, kdb.SystemSpec{Name: "mt-baseline"})).OrFatal(t)
		annotation := try.To(annotations.Create(ctx, kdb.AnnotationSpec{
			UserId: user.Id, EvaluationId: evaluation.Id, BitextId: bitext1.Id,
		})).OrFatal(t)
		try.To(annotationSystems.Create(ctx, kdb.AnnotationSystemSpec{
			AnnotationId: annotation.Id, SystemId: system.Id, Translation: "Die Katze sass",
		})).OrFatal(t)
		marking := try.To(markings.Create(ctx, kdb.MarkingSpec{
			AnnotationId: annotation.Id, SystemId: system.Id,
			ErrorStart: 1, ErrorEnd: 2,
			ErrorCategory: "A01", ErrorSeverity: "major",
			IsSource: true,
		})).OrFatal(t)

		if err := documents.Delete(ctx, document.Id); err != nil {
			t.Fatal(err)
		}

		for name, get := range map[string]func() error{
			"bitext 1": func() error {
				_, err := bitexts.Get(ctx, bitext1.Id)
				return err
			},
			"bitext 2": func() error {
				_, err := bitexts.Get(ctx, bitext2.Id)
				return err
			},
			"annotation": func() error {
				_, err := annotations.Get(ctx, annotation.Id)
				return err
			},
			"annotation system": func() error {
				_, err := annotationSystems.GetByAnnotationAndSystem(ctx, annotation.Id, system.Id)
				return err
			},
			"marking": func() error {
				_, err := markings.GetInScope(ctx, marking.Id, annotation.Id, system.Id)
				return err
			},
		} {
			if err := get(); !errors.Is(err, kdb.ErrMissing) {
				t.Errorf("%s survived the cascade: %v", name, err)
			}
		}

		// rows not under the document stay.
		if _, err := users.Get(ctx, user.Id); err != nil {
			t.Errorf("user is gone: %v", err)
		}
		if _, err := evaluations.Get(ctx, evaluation.Id); err != nil {
			t.Errorf("evaluation is gone: %v", err)
		}
		if _, err := systems.Get(ctx, system.Id); err != nil {
			t.Errorf("system is gone: %v", err)
		}
	})

	t.Run("deleting an unknown document reports a missing record", func(t *testing.T) {
		ctx := context.Background()
		pool := poolBroaker.GetPool(ctx, t)

		if err := kpgdoc.New(pool).Delete(ctx, 99999); !errors.Is(err, kdb.ErrMissing) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
