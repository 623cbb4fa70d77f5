package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiannotations "github.com/yaraku/he-tool/pkg/api/types/annotations"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type annotationSystemRequest struct {
	SystemId    *int    `json:"systemId"`
	Translation *string `json:"translation"`
}

// FindAnnotationSystemHandler lists the translations attached to an
// annotation.
func FindAnnotationSystemHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbAnnotationSystem kdb.AnnotationSystemInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbAnnotation.Get(ctx, annotationId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		found, err := dbAnnotationSystem.FindByAnnotation(ctx, annotationId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(
			http.StatusOK, slices.Map(found, apiannotations.ComposeSystemDetail),
		)
	}
}

// CreateAnnotationSystemHandler attaches a system's translation to an
// annotation. At most one translation per (annotation, system) pair.
func CreateAnnotationSystemHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbSystem kdb.SystemInterface,
	dbAnnotationSystem kdb.AnnotationSystemInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbAnnotation.Get(ctx, annotationId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Annotation not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(annotationSystemRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil ||
			req.SystemId == nil || req.Translation == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbSystem.Get(ctx, *req.SystemId); errors.Is(err, kdb.ErrMissing) {
			return apierr.UnprocessableEntity("Invalid systemId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if _, err := dbAnnotationSystem.GetByAnnotationAndSystem(
			ctx, annotationId, *req.SystemId,
		); err == nil {
			return apierr.Conflict("System already exists")
		} else if !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		created, err := dbAnnotationSystem.Create(ctx, kdb.AnnotationSystemSpec{
			AnnotationId: annotationId,
			SystemId:     *req.SystemId,
			Translation:  *req.Translation,
		})
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("System already exists")
		} else if errors.Is(err, kdb.ErrInvalidReference) {
			return apierr.UnprocessableEntity("Invalid systemId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apiannotations.ComposeSystemDetail(created))
	}
}

func GetAnnotationSystemHandler(
	dbAnnotationSystem kdb.AnnotationSystemInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}

		found, err := dbAnnotationSystem.GetByAnnotationAndSystem(
			c.Request().Context(), annotationId, systemId,
		)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiannotations.ComposeSystemDetail(found))
	}
}

func UpdateAnnotationSystemHandler(
	dbAnnotationSystem kdb.AnnotationSystemInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}

		if _, err := dbAnnotationSystem.GetByAnnotationAndSystem(
			ctx, annotationId, systemId,
		); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(annotationSystemRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil ||
			req.Translation == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		updated, err := dbAnnotationSystem.UpdateTranslation(
			ctx, annotationId, systemId, *req.Translation,
		)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiannotations.ComposeSystemDetail(updated))
	}
}

func DeleteAnnotationSystemHandler(
	dbAnnotationSystem kdb.AnnotationSystemInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}

		if err := dbAnnotationSystem.DeleteByAnnotationAndSystem(
			c.Request().Context(), annotationId, systemId,
		); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
