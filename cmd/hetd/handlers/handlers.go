// Package handlers implements the REST endpoints of hetd.
//
// Each handler is a factory taking the store interfaces it touches, so
// that tests can pass mocks. Error bodies are {"message": "..."}.
package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
)

// pathParamId parses a numeric path parameter. Non-numeric values get
// 404, the same answer as an id that does not exist.
func pathParamId(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apierr.NotFound("not found")
	}
	return id, nil
}
