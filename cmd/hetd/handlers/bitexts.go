package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apibitexts "github.com/yaraku/he-tool/pkg/api/types/bitexts"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type bitextRequest struct {
	DocumentId *int    `json:"documentId"`
	Source     *string `json:"source"`
	Target     *string `json:"target"`
}

func (r *bitextRequest) complete() bool {
	return r.DocumentId != nil && r.Source != nil && r.Target != nil
}

func FindBitextHandler(dbBitext kdb.BitextInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		bitexts, err := dbBitext.Find(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(bitexts, apibitexts.ComposeDetail))
	}
}

func CreateBitextHandler(
	dbBitext kdb.BitextInterface, dbDocument kdb.DocumentInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(bitextRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbDocument.Get(ctx, *req.DocumentId); errors.Is(err, kdb.ErrMissing) {
			return apierr.UnprocessableEntity("Invalid documentId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		bitext, err := dbBitext.Create(ctx, kdb.BitextSpec{
			DocumentId: *req.DocumentId,
			Source:     *req.Source,
			Target:     *req.Target,
		})
		if errors.Is(err, kdb.ErrInvalidReference) {
			return apierr.UnprocessableEntity("Invalid documentId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apibitexts.ComposeDetail(bitext))
	}
}

func GetBitextHandler(dbBitext kdb.BitextInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		bitext, err := dbBitext.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Bitext not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apibitexts.ComposeDetail(bitext))
	}
}

func UpdateBitextHandler(
	dbBitext kdb.BitextInterface, dbDocument kdb.DocumentInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbBitext.Get(ctx, id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Bitext not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(bitextRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || !req.complete() {
			return apierr.UnprocessableEntity("Missing required field")
		}

		if _, err := dbDocument.Get(ctx, *req.DocumentId); errors.Is(err, kdb.ErrMissing) {
			return apierr.UnprocessableEntity("Invalid documentId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		bitext, err := dbBitext.Update(ctx, id, kdb.BitextSpec{
			DocumentId: *req.DocumentId,
			Source:     *req.Source,
			Target:     *req.Target,
		})
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Bitext not found")
		} else if errors.Is(err, kdb.ErrInvalidReference) {
			return apierr.UnprocessableEntity("Invalid documentId")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apibitexts.ComposeDetail(bitext))
	}
}

func DeleteBitextHandler(dbBitext kdb.BitextInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbBitext.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Bitext not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
