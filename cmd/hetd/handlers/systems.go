package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	apisystems "github.com/yaraku/he-tool/pkg/api/types/systems"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type systemRequest struct {
	Name *string `json:"name"`
}

func FindSystemHandler(dbSystem kdb.SystemInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		systems, err := dbSystem.Find(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(systems, apisystems.ComposeDetail))
	}
}

func CreateSystemHandler(dbSystem kdb.SystemInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(systemRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || req.Name == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbSystem.GetByName(ctx, *req.Name); err == nil {
			return apierr.Conflict("System already exists")
		} else if !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		system, err := dbSystem.Create(ctx, kdb.SystemSpec{Name: *req.Name})
		if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("System already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apisystems.ComposeDetail(system))
	}
}

func GetSystemHandler(dbSystem kdb.SystemInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		system, err := dbSystem.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisystems.ComposeDetail(system))
	}
}

func UpdateSystemHandler(dbSystem kdb.SystemInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbSystem.Get(ctx, id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(systemRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || req.Name == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if other, err := dbSystem.GetByName(ctx, *req.Name); err == nil && other.Id != id {
			return apierr.Conflict("System already exists")
		} else if err != nil && !errors.Is(err, kdb.ErrMissing) {
			return apierr.InternalServerError(err)
		}

		system, err := dbSystem.Update(ctx, id, kdb.SystemSpec{Name: *req.Name})
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if errors.Is(err, kdb.ErrConflict) {
			return apierr.Conflict("System already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisystems.ComposeDetail(system))
	}
}

func DeleteSystemHandler(dbSystem kdb.SystemInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbSystem.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("System not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
