package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yaraku/he-tool/cmd/hetd/handlers"
	httptestutil "github.com/yaraku/he-tool/internal/testutils/http"
	apiannotations "github.com/yaraku/he-tool/pkg/api/types/annotations"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/db/mocks"
	xpgerr "github.com/yaraku/he-tool/pkg/db/postgres/errors"
)

func annotationRefs(db *mocks.Database) handlers.AnnotationReferences {
	return handlers.AnnotationReferences{
		User:       &db.User,
		Evaluation: &db.Evaluation,
		Bitext:     &db.Bitext,
	}
}

// resolvingDatabase answers every reference lookup with a stub entity.
func resolvingDatabase() *mocks.Database {
	db := mocks.NewDatabase()
	db.User.Impl.Get = func(ctx context.Context, id int) (kdb.User, error) {
		return kdb.User{Id: id, Email: "ann@example.com"}, nil
	}
	db.Evaluation.Impl.Get = func(ctx context.Context, id int) (kdb.Evaluation, error) {
		return kdb.Evaluation{Id: id, Name: "campaign-1", Type: kdb.ErrorMarking}, nil
	}
	db.Bitext.Impl.Get = func(ctx context.Context, id int) (kdb.Bitext, error) {
		return kdb.Bitext{Id: id, DocumentId: 50, Source: "src", Target: "tgt"}, nil
	}
	return db
}

func TestFindAnnotationHandler(t *testing.T) {

	t.Run("it lists the calling user's annotations with embedded entities", func(t *testing.T) {
		db := resolvingDatabase()
		db.Annotation.Impl.FindByUser = func(ctx context.Context, userId int) ([]kdb.Annotation, error) {
			return []kdb.Annotation{
				{Id: 100, UserId: userId, EvaluationId: 10, BitextId: 1000},
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Get(e, "/api/annotations")
		auth.SetUserID(ctx, 7)

		err := handlers.FindAnnotationHandler(&db.Annotation, &db.Evaluation, &db.Bitext)(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", resp.Code)
		}
		if got := db.Annotation.Calls.FindByUser; len(got) != 1 || got[0] != 7 {
			t.Errorf("unexpected FindByUser calls: %v", got)
		}

		actual := []apiannotations.Detail{}
		if err := json.Unmarshal(resp.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if len(actual) != 1 || actual[0].Evaluation.Id != 10 || actual[0].Bitext.Id != 1000 {
			t.Errorf("unexpected body: %+v", actual)
		}
	})

	t.Run("it rejects an unauthenticated context", func(t *testing.T) {
		db := resolvingDatabase()

		e := echo.New()
		ctx, _ := httptestutil.Get(e, "/api/annotations")

		err := handlers.FindAnnotationHandler(&db.Annotation, &db.Evaluation, &db.Bitext)(ctx)
		if code := httpErrorCode(t, err); code != http.StatusUnauthorized {
			t.Errorf("unexpected status: %d", code)
		}
	})
}

func TestCreateAnnotationHandler(t *testing.T) {

	t.Run("it stores an annotation when every reference resolves", func(t *testing.T) {
		db := resolvingDatabase()
		db.Annotation.Impl.Create = func(ctx context.Context, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
			return kdb.Annotation{
				Id: 100, UserId: spec.UserId, EvaluationId: spec.EvaluationId,
				BitextId: spec.BitextId, IsAnnotated: spec.IsAnnotated,
				Comment: spec.Comment,
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Post(
			e, "/api/annotations",
			strings.NewReader(`{"userId": 7, "evaluationId": 10, "bitextId": 1000}`),
			httptestutil.ContentType("application/json"),
		)

		err := handlers.CreateAnnotationHandler(&db.Annotation, annotationRefs(db))(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusCreated {
			t.Errorf("unexpected status: %d", resp.Code)
		}

		actual := apiannotations.Detail{}
		if err := json.Unmarshal(resp.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Id != 100 || actual.UserId != 7 ||
			actual.Evaluation.Id != 10 || actual.Bitext.Id != 1000 {
			t.Errorf("unexpected body: %+v", actual)
		}
		if actual.IsAnnotated {
			t.Error("isAnnotated should default to false")
		}
		if actual.Comment != nil {
			t.Errorf("comment should default to null, got %q", *actual.Comment)
		}
	})

	t.Run("it names the broken reference", func(t *testing.T) {
		for name, breaker := range map[string]func(db *mocks.Database){
			"Invalid userId": func(db *mocks.Database) {
				db.User.Impl.Get = func(ctx context.Context, id int) (kdb.User, error) {
					return kdb.User{}, kdb.ErrMissing
				}
			},
			"Invalid evaluationId": func(db *mocks.Database) {
				db.Evaluation.Impl.Get = func(ctx context.Context, id int) (kdb.Evaluation, error) {
					return kdb.Evaluation{}, kdb.ErrMissing
				}
			},
			"Invalid bitextId": func(db *mocks.Database) {
				db.Bitext.Impl.Get = func(ctx context.Context, id int) (kdb.Bitext, error) {
					return kdb.Bitext{}, kdb.ErrMissing
				}
			},
		} {
			t.Run(name, func(t *testing.T) {
				db := resolvingDatabase()
				breaker(db)

				e := echo.New()
				ctx, _ := httptestutil.Post(
					e, "/api/annotations",
					strings.NewReader(`{"userId": 7, "evaluationId": 10, "bitextId": 1000}`),
					httptestutil.ContentType("application/json"),
				)

				err := handlers.CreateAnnotationHandler(&db.Annotation, annotationRefs(db))(ctx)
				herr := new(echo.HTTPError)
				if !errors.As(err, &herr) {
					t.Fatalf("not an HTTP error: %v", err)
				}
				if herr.Code != http.StatusUnprocessableEntity {
					t.Errorf("unexpected status: %d", herr.Code)
				}
				if body, err := json.Marshal(herr.Message); err != nil ||
					!strings.Contains(string(body), name) {
					t.Errorf("the message does not name the reference: %v", herr.Message)
				}
				if db.Annotation.Calls.Create.Times() != 0 {
					t.Error("Create is called despite a broken reference")
				}
			})
		}
	})
	t.Run("a reference deleted between check and write is named by its constraint", func(t *testing.T) {
		for constraint, message := range map[string]string{
			"annotation_userId_fkey":       "Invalid userId",
			"annotation_evaluationId_fkey": "Invalid evaluationId",
			"annotation_bitextId_fkey":     "Invalid bitextId",
		} {
			t.Run(constraint, func(t *testing.T) {
				db := resolvingDatabase()
				db.Annotation.Impl.Create = func(ctx context.Context, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
					return kdb.Annotation{}, xpgerr.InvalidReference{
						Table: "annotation", Constraint: constraint,
					}
				}

				e := echo.New()
				ctx, _ := httptestutil.Post(
					e, "/api/annotations",
					strings.NewReader(`{"userId": 7, "evaluationId": 10, "bitextId": 1000}`),
					httptestutil.ContentType("application/json"),
				)

				err := handlers.CreateAnnotationHandler(&db.Annotation, annotationRefs(db))(ctx)
				herr := new(echo.HTTPError)
				if !errors.As(err, &herr) {
					t.Fatalf("not an HTTP error: %v", err)
				}
				if herr.Code != http.StatusUnprocessableEntity {
					t.Errorf("unexpected status: %d", herr.Code)
				}
				if body, err := json.Marshal(herr.Message); err != nil ||
					!strings.Contains(string(body), message) {
					t.Errorf("the message does not name the reference: %v", herr.Message)
				}
			})
		}
	})
}

func TestUpdateAnnotationHandler(t *testing.T) {

	t.Run("absent optional fields keep their stored values", func(t *testing.T) {
		comment := "looks odd"
		db := resolvingDatabase()
		db.Annotation.Impl.Get = func(ctx context.Context, id int) (kdb.Annotation, error) {
			return kdb.Annotation{
				Id: id, UserId: 7, EvaluationId: 10, BitextId: 1000,
				IsAnnotated: true, Comment: &comment,
			}, nil
		}
		db.Annotation.Impl.Update = func(ctx context.Context, id int, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
			return kdb.Annotation{
				Id: id, UserId: spec.UserId, EvaluationId: spec.EvaluationId,
				BitextId: spec.BitextId, IsAnnotated: spec.IsAnnotated,
				Comment: spec.Comment,
			}, nil
		}

		e := echo.New()
		ctx, resp := httptestutil.Put(
			e, "/api/annotations/100",
			strings.NewReader(`{"userId": 7, "evaluationId": 10, "bitextId": 1000}`),
			httptestutil.ContentType("application/json"),
		)
		ctx.SetPath("/annotations/:id")
		ctx.SetParamNames("id")
		ctx.SetParamValues("100")

		err := handlers.UpdateAnnotationHandler(&db.Annotation, annotationRefs(db))(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("unexpected status: %d", resp.Code)
		}

		if db.Annotation.Calls.Update.Times() != 1 {
			t.Fatalf("Update is called %d times", db.Annotation.Calls.Update.Times())
		}
		spec := db.Annotation.Calls.Update[0].Spec
		if !spec.IsAnnotated {
			t.Error("isAnnotated is reset by an absent field")
		}
		if spec.Comment == nil || *spec.Comment != comment {
			t.Error("comment is reset by an absent field")
		}
	})
}
