package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apibitexts "github.com/yaraku/he-tool/pkg/api/types/bitexts"
	apidocs "github.com/yaraku/he-tool/pkg/api/types/documents"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	kdb "github.com/yaraku/he-tool/pkg/db"
	"github.com/yaraku/he-tool/pkg/utils/slices"
)

type documentRequest struct {
	Name *string `json:"name"`
}

func FindDocumentHandler(dbDocument kdb.DocumentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		documents, err := dbDocument.Find(c.Request().Context())
		if err != nil {
			return apierr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, slices.Map(documents, apidocs.ComposeDetail))
	}
}

func CreateDocumentHandler(dbDocument kdb.DocumentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(documentRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || req.Name == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		document, err := dbDocument.Create(
			c.Request().Context(), kdb.DocumentSpec{Name: *req.Name},
		)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apidocs.ComposeDetail(document))
	}
}

func GetDocumentHandler(dbDocument kdb.DocumentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		document, err := dbDocument.Get(c.Request().Context(), id)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Document not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apidocs.ComposeDetail(document))
	}
}

// GetDocumentBitextsHandler lists the bitexts belonging to a document.
func GetDocumentBitextsHandler(
	dbDocument kdb.DocumentInterface, dbBitext kdb.BitextInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbDocument.Get(ctx, id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Document not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		bitexts, err := dbBitext.FindByDocument(ctx, id)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(bitexts, apibitexts.ComposeDetail))
	}
}

func UpdateDocumentHandler(dbDocument kdb.DocumentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if _, err := dbDocument.Get(ctx, id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Document not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		req := new(documentRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil || req.Name == nil {
			return apierr.UnprocessableEntity("Missing required field")
		}

		document, err := dbDocument.Update(ctx, id, kdb.DocumentSpec{Name: *req.Name})
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Document not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apidocs.ComposeDetail(document))
	}
}

func DeleteDocumentHandler(dbDocument kdb.DocumentInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathParamId(c, "id")
		if err != nil {
			return err
		}

		if err := dbDocument.Delete(c.Request().Context(), id); errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("Document not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
