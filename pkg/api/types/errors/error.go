// Package errors defines the error shapes the API returns.
//
// Every error body is a single-field object {"message": "..."}; clients
// surface the message verbatim.
package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type message struct {
	Message string `json:"message"`
}

// NewError builds an HTTP error whose body is {"message": msg}.
func NewError(code int, msg string) *echo.HTTPError {
	return &echo.HTTPError{Code: code, Message: message{Message: msg}}
}

func NotFound(msg string) *echo.HTTPError {
	return NewError(http.StatusNotFound, msg)
}

func Conflict(msg string) *echo.HTTPError {
	return NewError(http.StatusConflict, msg)
}

func UnprocessableEntity(msg string) *echo.HTTPError {
	return NewError(http.StatusUnprocessableEntity, msg)
}

func Unauthorized(msg string) *echo.HTTPError {
	return NewError(http.StatusUnauthorized, msg)
}

// InternalServerError surfaces an unexpected error. The message body
// carries the cause's text; the cause itself rides along for the logs.
func InternalServerError(err error) *echo.HTTPError {
	he := NewError(http.StatusInternalServerError, err.Error())
	he.Internal = err
	return he
}
