package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiannotations "github.com/yaraku/he-tool/pkg/api/types/annotations"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	apievals "github.com/yaraku/he-tool/pkg/api/types/evaluations"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/export"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type evaluationRequest struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	IsFinished *bool   `json:"isFinished"`
}

func (r *evaluationRequest) complete() bool {
	return r.Name != nil && r.Type != nil
}

func FindEvaluationHandler(dbEvaluation kdb.EvaluationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		evaluations, err := dbEvaluation.Find(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(evaluations, apievals.ComposeDetail))
	}
}

func CreateEvaluationHandler(dbEvaluation kdb.EvaluationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(evaluationRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbEvaluation.GetByName(ctx, *req.Name); err == nil {
			return apierr.Conflict("Evaluation already exists")
		} else if !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		spec := kdb.EvaluationSpec{
			Name: *req.Name,
			Type: kdb.EvaluationType(*req.Type),
		}
		if req.IsFinished != nil {
			spec.IsFinished = *req.IsFinished
		}

		evaluation, err := dbEvaluation.Create(ctx, spec)
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("Evaluation already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apievals.ComposeDetail(evaluation))
	}
}

func GetEvaluationHandler(dbEvaluation kdb.EvaluationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		evaluation, err := dbEvaluation.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apievals.ComposeDetail(evaluation))
	}
}

// GetEvaluationAnnotationsHandler lists the annotations the calling
// user owns within the evaluation, with evaluation and bitext embedded.
func GetEvaluationAnnotationsHandler(
	dbEvaluation kdb.EvaluationInterface,
	dbAnnotation kdb.AnnotationInterface,
	dbBitext kdb.BitextInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		userId, ok := auth.UserID(c)
		if !ok {
			return apierr.Unauthorized("Unauthorized")
		}

		evaluation, err := dbEvaluation.Get(ctx, id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		found, err := dbAnnotation.FindByEvaluationAndUser(ctx, id, userId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		details, err := slices.MapUntilError(
			found,
			func(annotation kdb.Annotation) (apiannotations.Detail, error) {
				bitext, err := dbBitext.Get(ctx, annotation.BitextId)
				if err != nil {
					return apiannotations.Detail{}, err
				}
				return apiannotations.ComposeDetail(annotation, evaluation, bitext), nil
			},
		)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, details)
	}
}

// GetEvaluationResultsHandler renders the evaluation's markings as
// report rows.
func GetEvaluationResultsHandler(database kdb.Database) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		results, err := export.ForEvaluation(c.Request().Context(), database, id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, results)
	}
}

func UpdateEvaluationHandler(dbEvaluation kdb.EvaluationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		current, err := dbEvaluation.Get(ctx, id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(evaluationRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if other, err := dbEvaluation.GetByName(ctx, *req.Name); err == nil && other.Id != id {
			return apierr.Conflict("Evaluation already exists")
		} else if err != nil && !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		spec := kdb.EvaluationSpec{
			Name:       *req.Name,
			Type:       kdb.EvaluationType(*req.Type),
			IsFinished: current.IsFinished,
		}
		if req.IsFinished != nil {
			spec.IsFinished = *req.IsFinished
		}

		evaluation, err := dbEvaluation.Update(ctx, id, spec)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("Evaluation already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apievals.ComposeDetail(evaluation))
	}
}

func DeleteEvaluationHandler(dbEvaluation kdb.EvaluationInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbEvaluation.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Evaluation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
