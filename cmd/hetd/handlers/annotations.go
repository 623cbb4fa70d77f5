package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apiannotations "github.com/yaraku/he-tool/pkg/api/types/annotations"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type annotationRequest struct {
	UserId       *int    `json:"userId"`
	EvaluationId *int    `json:"evaluationId"`
	BitextId     *int    `json:"bitextId"`
	IsAnnotated  *bool   `json:"isAnnotated"`
	Comment      *string `json:"comment"`
}

func (r *annotationRequest) complete() bool {
	return r.UserId != nil && r.EvaluationId != nil && r.BitextId != nil
}

// AnnotationReferences are the stores an annotation points into.
//
// Foreign keys are checked here before writing, so that the caller gets
// a message naming the broken reference instead of a bare constraint
// violation.
type AnnotationReferences struct {
	User       kdb.UserInterface
	Evaluation kdb.EvaluationInterface
	Bitext     kdb.BitextInterface
}

// check answers nil when all three foreign keys resolve; otherwise an
// unprocessable-entity error naming the broken one.
func (refs AnnotationReferences) check(c echo.Context, req *annotationRequest) error {
	ctx := c.Request().Context()

	if _, err := refs.User.Get(ctx, *req.UserId); errors.Is(err, kdb.ErrMissing) {
		return apierr.UnprocessableEntity("Invalid userId")
	} else if err != nil {
		return apierr.InternalServerError(err)
	}
	if _, err := refs.Evaluation.Get(ctx, *req.EvaluationId); errors.Is(err, kdb.ErrMissing) {
		return apierr.UnprocessableEntity("Invalid evaluationId")
	} else if err != nil {
		return apierr.InternalServerError(err)
	}
	if _, err := refs.Bitext.Get(ctx, *req.BitextId); errors.Is(err, kdb.ErrMissing) {
		return apierr.UnprocessableEntity("Invalid bitextId")
	} else if err != nil {
		return apierr.InternalServerError(err)
	}
	return nil
}

// invalidAnnotationReference answers which request field pointed at a
// missing record, judged from the constraint the store reports. The
// pre-checks in AnnotationReferences.check make reaching this a race
// with a concurrent delete, so the constraint name is the only witness
// left of which reference broke.
func invalidAnnotationReference(err error) error {
	field := "userId"
	var broken interface{ BrokenConstraint() string }
	if errors.As(err, &broken) {
		constraint := strings.ToLower(broken.BrokenConstraint())
		switch {
		case strings.Contains(constraint, "evaluation"):
			field = "evaluationId"
		case strings.Contains(constraint, "bitext"):
			field = "bitextId"
		}
	}
	return apierr.UnprocessableEntity("Invalid " + field)
}

// composeAnnotationDetail embeds the evaluation and bitext an
// annotation refers to.
func composeAnnotationDetail(
	c echo.Context,
	dbEvaluation kdb.EvaluationInterface,
	dbBitext kdb.BitextInterface,
	annotation kdb.Annotation,
) (apiannotations.Detail, error) {
	ctx := c.Request().Context()

	evaluation, err := dbEvaluation.Get(ctx, annotation.EvaluationId)
	if err != nil {
		return apiannotations.Detail{}, err
	}
	bitext, err := dbBitext.Get(ctx, annotation.BitextId)
	if err != nil {
		return apiannotations.Detail{}, err
	}
	return apiannotations.ComposeDetail(annotation, evaluation, bitext), nil
}

// FindAnnotationHandler lists the calling user's annotations.
func FindAnnotationHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbEvaluation kdb.EvaluationInterface,
	dbBitext kdb.BitextInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		userId, ok := auth.UserID(c)
		if !ok {
			return apierr.Unauthorized("Unauthorized")
		}

		found, err := dbAnnotation.FindByUser(c.Request().Context(), userId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		details, err := slices.MapUntilError(
			found,
			func(annotation kdb.Annotation) (apiannotations.Detail, error) {
				return composeAnnotationDetail(c, dbEvaluation, dbBitext, annotation)
			},
		)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, details)
	}
}

func CreateAnnotationHandler(
	dbAnnotation kdb.AnnotationInterface, refs AnnotationReferences,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(annotationRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if err := refs.check(c, req); err != nil {
			return err
		}

		spec := kdb.AnnotationSpec{
			UserId:       *req.UserId,
			EvaluationId: *req.EvaluationId,
			BitextId:     *req.BitextId,
			Comment:      req.Comment,
		}
		if req.IsAnnotated != nil {
			spec.IsAnnotated = *req.IsAnnotated
		}

		annotation, err := dbAnnotation.Create(ctx, spec)
		if errors.Is(err, kdb.ErrInvalidReference) {
			return invalidAnnotationReference(err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		detail, err := composeAnnotationDetail(c, refs.Evaluation, refs.Bitext, annotation)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, detail)
	}
}

func GetAnnotationHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbEvaluation kdb.EvaluationInterface,
	dbBitext kdb.BitextInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		annotation, err := dbAnnotation.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		detail, err := composeAnnotationDetail(c, dbEvaluation, dbBitext, annotation)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, detail)
	}
}

func UpdateAnnotationHandler(
	dbAnnotation kdb.AnnotationInterface, refs AnnotationReferences,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		current, err := dbAnnotation.Get(ctx, id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(annotationRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if err := refs.check(c, req); err != nil {
			return err
		}

		spec := kdb.AnnotationSpec{
			UserId:       *req.UserId,
			EvaluationId: *req.EvaluationId,
			BitextId:     *req.BitextId,
			IsAnnotated:  current.IsAnnotated,
			Comment:      current.Comment,
		}
		if req.IsAnnotated != nil {
			spec.IsAnnotated = *req.IsAnnotated
		}
		if req.Comment != nil {
			spec.Comment = req.Comment
		}

		annotation, err := dbAnnotation.Update(ctx, id, spec)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if errors.Is(err, kdb.ErrInvalidReference) {
			return invalidAnnotationReference(err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		detail, err := composeAnnotationDetail(c, refs.Evaluation, refs.Bitext, annotation)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, detail)
	}
}

func DeleteAnnotationHandler(dbAnnotation kdb.AnnotationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbAnnotation.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
