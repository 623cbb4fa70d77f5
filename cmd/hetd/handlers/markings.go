package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	apimarkings "github.com/yaraku/he-tool/pkg/api/types/markings"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type markingRequest struct {
	ErrorStart    *int    `json:"errorStart"`
	ErrorEnd      *int    `json:"errorEnd"`
	ErrorCategory *string `json:"errorCategory"`
	ErrorSeverity *string `json:"errorSeverity"`
	IsSource      *bool   `json:"isSource"`
}

func (r *markingRequest) complete() bool {
	return r.ErrorStart != nil && r.ErrorEnd != nil &&
		r.ErrorCategory != nil && r.ErrorSeverity != nil && r.IsSource != nil
}

// validateCodes checks the category and severity against the closed
// code tables.
func (r *markingRequest) validateCodes() error {
	if _, ok := kdb.CategoryName[*r.ErrorCategory]; !ok {
		return apierr.UnprocessableEntity("Invalid errorCategory")
	}
	if _, ok := kdb.SeverityName[*r.ErrorSeverity]; !ok {
		return apierr.UnprocessableEntity("Invalid errorSeverity")
	}
	return nil
}

// ownedAnnotation loads the annotation and rejects callers who do not
// own it. Markings are personal: only the annotating user may touch
// them.
func ownedAnnotation(
	c echo.Context, dbAnnotation kdb.AnnotationInterface, annotationId int,
) error {
	annotation, err := dbAnnotation.Get(c.Request().Context(), annotationId)
	if errors.Is(err, kdb.ErrMissing) {
		return apierr.NotFound("Annotation not found")
	} else if err != nil {
		return apierr.InternalServerError(err)
	}

	userId, ok := auth.UserID(c)
	if !ok || annotation.UserId != userId {
		return apierr.Unauthorized("Unauthorized")
	}
	return nil
}

// FindMarkingHandler lists all markings of an annotation, across
// systems.
func FindMarkingHandler(
	dbAnnotation kdb.AnnotationInterface, dbMarking kdb.MarkingInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		if err := ownedAnnotation(c, dbAnnotation, annotationId); err != nil {
			return err
		}

		markings, err := dbMarking.FindByAnnotation(c.Request().Context(), annotationId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(markings, apimarkings.ComposeDetail))
	}
}

func CreateMarkingHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbSystem kdb.SystemInterface,
	dbMarking kdb.MarkingInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		if err := ownedAnnotation(c, dbAnnotation, annotationId); err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}
		if _, err := dbSystem.Get(ctx, systemId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(markingRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}
		if err := req.validateCodes(); err != nil {
			return err
		}

		marking, err := dbMarking.Create(ctx, kdb.MarkingSpec{
			AnnotationId:  annotationId,
			SystemId:      systemId,
			ErrorStart:    *req.ErrorStart,
			ErrorEnd:      *req.ErrorEnd,
			ErrorCategory: *req.ErrorCategory,
			ErrorSeverity: *req.ErrorSeverity,
			IsSource:      *req.IsSource,
		})
		if errors.Is(err, kdb.ErrInvalidReference) {
			return apierr.UnprocessableEntity("Invalid systemId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apimarkings.ComposeDetail(marking))
	}
}

func GetMarkingHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbSystem kdb.SystemInterface,
	dbMarking kdb.MarkingInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		if err := ownedAnnotation(c, dbAnnotation, annotationId); err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}
		if _, err := dbSystem.Get(ctx, systemId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		markingId, err := pathParamId(c, "markingId")
		if err != nil {
			return err
		}

		marking, err := dbMarking.GetInScope(ctx, markingId, annotationId, systemId)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Marking not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apimarkings.ComposeDetail(marking))
	}
}

func UpdateMarkingHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbSystem kdb.SystemInterface,
	dbMarking kdb.MarkingInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		if err := ownedAnnotation(c, dbAnnotation, annotationId); err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}
		if _, err := dbSystem.Get(ctx, systemId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		markingId, err := pathParamId(c, "markingId")
		if err != nil {
			return err
		}

		if _, err := dbMarking.GetInScope(
			ctx, markingId, annotationId, systemId,
		); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Marking not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(markingRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}
		if err := req.validateCodes(); err != nil {
			return err
		}

		marking, err := dbMarking.Update(ctx, markingId, kdb.MarkingSpec{
			AnnotationId:  annotationId,
			SystemId:      systemId,
			ErrorStart:    *req.ErrorStart,
			ErrorEnd:      *req.ErrorEnd,
			ErrorCategory: *req.ErrorCategory,
			ErrorSeverity: *req.ErrorSeverity,
			IsSource:      *req.IsSource,
		})
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Marking not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apimarkings.ComposeDetail(marking))
	}
}

func DeleteMarkingHandler(
	dbAnnotation kdb.AnnotationInterface,
	dbSystem kdb.SystemInterface,
	dbMarking kdb.MarkingInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		annotationId, err := pathParamId(c, "id")
		if err != nil {
			return err
		}
		if err := ownedAnnotation(c, dbAnnotation, annotationId); err != nil {
			return err
		}
		systemId, err := pathParamId(c, "systemId")
		if err != nil {
			return err
		}
		if _, err := dbSystem.Get(ctx, systemId); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}
		markingId, err := pathParamId(c, "markingId")
		if err != nil {
			return err
		}

		if err := dbMarking.DeleteInScope(
			ctx, markingId, annotationId, systemId,
		); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Marking not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
