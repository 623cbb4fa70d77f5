package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yaraku/he-tool/cmd/hetd/handlers"
	httptestutil "github.com/yaraku/he-tool/internal/testutils/http"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/db/mocks"
)

// markingDatabase owns annotation 100 by user 7 and system 5.
func markingDatabase() *mocks.Database {
	db := mocks.NewDatabase()
	db.Annotation.Impl.Get = func(ctx context.Context, id int) (kdb.Annotation, error) {
		if id != 100 {
			return kdb.Annotation{}, kdb.ErrMissing
		}
		return kdb.Annotation{Id: 100, UserId: 7, EvaluationId: 10, BitextId: 1000}, nil
	}
	db.System.Impl.Get = func(ctx context.Context, id int) (kdb.System, error) {
		if id != 5 {
			return kdb.System{}, kdb.ErrMissing
		}
		return kdb.System{Id: 5, Name: "mt-baseline"}, nil
	}
	return db
}

const markingPayload = `{
	"errorStart": 1, "errorEnd": 2,
	"errorCategory": "A01", "errorSeverity": "major",
	"isSource": true
}`

func TestCreateMarkingHandler(t *testing.T) {

	t.Run("the annotation's owner can mark errors", func(t *testing.T) {
		db := markingDatabase()
		db.Marking.Impl.Create = func(ctx context.Context, spec kdb.MarkingSpec) (kdb.Marking, error) {
			return kdb.Marking{
				Id: 5000, AnnotationId: spec.AnnotationId, SystemId: spec.SystemId,
				ErrorStart: spec.ErrorStart, ErrorEnd: spec.ErrorEnd,
				ErrorCategory: spec.ErrorCategory, ErrorSeverity: spec.ErrorSeverity,
				IsSource: spec.IsSource,
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Post(
			e, "/api/annotations/100/systems/5/markings",
			strings.NewReader(markingPayload),
			httptestutil.ContentType("application/json"),
		)
		ctx.SetPath("/annotations/:id/systems/:systemId/markings")
		ctx.SetParamNames("id", "systemId")
		ctx.SetParamValues("100", "5")
		auth.SetUserID(ctx, 7)

		err := handlers.CreateMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", resp.Code)
		}

		if db.Marking.Calls.Create.Times() != 1 {
			t.Fatalf("Create is called %d times", db.Marking.Calls.Create.Times())
		}
		spec := db.Marking.Calls.Create[0]
		if spec.AnnotationId != 100 || spec.SystemId != 5 {
			t.Errorf("scope is not taken from the path: %+v", spec)
		}
	})

	t.Run("another user is rejected", func(t *testing.T) {
		db := markingDatabase()

		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/annotations/100/systems/5/markings",
			strings.NewReader(markingPayload),
			httptestutil.ContentType("application/json"),
		)
		ctx.SetPath("/annotations/:id/systems/:systemId/markings")
		ctx.SetParamNames("id", "systemId")
		ctx.SetParamValues("100", "5")
		auth.SetUserID(ctx, 8)

		err := handlers.CreateMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", code)
		}
		if db.Marking.Calls.Create.Times() != 0 {
			t.Error("Create is called for a foreign annotation")
		}
	})

	t.Run("codes outside the tables are rejected", func(t *testing.T) {
		for name, payload := range map[string]string{
			"unknown category": `{
				"errorStart": 1, "errorEnd": 2,
				"errorCategory": "Z99", "errorSeverity": "major",
				"isSource": true
			}`,
			"unknown severity": `{
				"errorStart": 1, "errorEnd": 2,
				"errorCategory": "A01", "errorSeverity": "catastrophic",
				"isSource": true
			}`,
		} {
			t.Run(name, func(t *testing.T) {
				db := markingDatabase()

				e := echo.New()
				ctx, _ := httptestutil.Post(
					e, "/api/annotations/100/systems/5/markings",
					strings.NewReader(payload),
					httptestutil.ContentType("application/json"),
				)
				ctx.SetPath("/annotations/:id/systems/:systemId/markings")
				ctx.SetParamNames("id", "systemId")
				ctx.SetParamValues("100", "5")
				auth.SetUserID(ctx, 7)

				err := handlers.CreateMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
				if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
					t.Errorf("unexpected status: %d", code)
				}
			})
		}
	})

	t.Run("an unknown system answers 404", func(t *testing.T) {
		db := markingDatabase()

		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/annotations/100/systems/99/markings",
			strings.NewReader(markingPayload),
			httptestutil.ContentType("application/json"),
		)
		ctx.SetPath("/annotations/:id/systems/:systemId/markings")
		ctx.SetParamNames("id", "systemId")
		ctx.SetParamValues("100", "99")
		auth.SetUserID(ctx, 7)

		err := handlers.CreateMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", code)
		}
	})

	t.Run("a missing field is rejected", func(t *testing.T) {
		db := markingDatabase()

		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/annotations/100/systems/5/markings",
			strings.NewReader(`{"errorStart": 1, "errorEnd": 2}`),
			httptestutil.ContentType("application/json"),
		)
		ctx.SetPath("/annotations/:id/systems/:systemId/markings")
		ctx.SetParamNames("id", "systemId")
		ctx.SetParamValues("100", "5")
		auth.SetUserID(ctx, 7)

		err := handlers.CreateMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
			t.Errorf("unexpected status: %d", code)
		}
	})
}

func TestFindMarkingHandler(t *testing.T) {

	t.Run("it lists markings across systems for the owner", func(t *testing.T) {
		db := markingDatabase()
		db.Marking.Impl.FindByAnnotation = func(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
			return []kdb.Marking{
				{Id: 1, AnnotationId: annotationId, SystemId: 5, ErrorCategory: "A01", ErrorSeverity: "major"},
				{Id: 2, AnnotationId: annotationId, SystemId: 6, ErrorCategory: "F03", ErrorSeverity: "minor"},
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Get(e, "/api/annotations/100/markings")
		ctx.SetPath("/annotations/:id/markings")
		ctx.SetParamNames("id")
		ctx.SetParamValues("100")
		auth.SetUserID(ctx, 7)

		if err := handlers.FindMarkingHandler(&db.Annotation, &db.Marking)(ctx); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", resp.Code)
		}
	})

	t.Run("another user may not even list", func(t *testing.T) {
		db := markingDatabase()

		e := echo.New()
		ctx, _ := httptestutil.Get(e, "/api/annotations/100/markings")
		ctx.SetPath("/annotations/:id/markings")
		ctx.SetParamNames("id")
		ctx.SetParamValues("100")
		auth.SetUserID(ctx, 8)

		err := handlers.FindMarkingHandler(&db.Annotation, &db.Marking)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", code)
		}
	})
}

func TestDeleteMarkingHandler(t *testing.T) {

	t.Run("it deletes only within the addressed scope", func(t *testing.T) {
		db := markingDatabase()
		db.Marking.Impl.DeleteInScope = func(ctx context.Context, id int, annotationId int, systemId int) error {
			if id != 5000 || annotationId != 100 || systemId != 5 {
				return kdb.ErrMissing
			}
			return nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Delete(e, "/api/annotations/100/systems/5/markings/5000")
		ctx.SetPath("/annotations/:id/systems/:systemId/markings/:markingId")
		ctx.SetParamNames("id", "systemId", "markingId")
		ctx.SetParamValues("100", "5", "5000")
		auth.SetUserID(ctx, 7)

		err := handlers.DeleteMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusNoContent {
			t.Errorf("unexpected status: %d", resp.Code)
		}
	})

	t.Run("a marking outside the scope answers 404", func(t *testing.T) {
		db := markingDatabase()
		db.Marking.Impl.DeleteInScope = func(ctx context.Context, id int, annotationId int, systemId int) error {
			return kdb.ErrMissing
		}

		e := echo.New()
		ctx, _ := httptestutil.Delete(e, "/api/annotations/100/systems/5/markings/404")
		ctx.SetPath("/annotations/:id/systems/:systemId/markings/:markingId")
		ctx.SetParamNames("id", "systemId", "markingId")
		ctx.SetParamValues("100", "5", "404")
		auth.SetUserID(ctx, 7)

		err := handlers.DeleteMarkingHandler(&db.Annotation, &db.System, &db.Marking)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", code)
		}
	})
}
