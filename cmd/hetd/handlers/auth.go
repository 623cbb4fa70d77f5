package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apiauth "github.com/yaraku/he-tool/pkg/api/types/auth"
	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
	"github.com/yaraku/he-tool/pkg/auth"
	kdb "github.com/yaraku/he-tool/pkg/db"
)

// LoginHandler verifies credentials and starts a session.
//
// The session rides an HTTP-only cookie. A wrong email and a wrong
// password are indistinguishable to the caller.
func LoginHandler(dbUser kdb.UserInterface, policy *auth.TokenPolicy) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := new(apiauth.LoginRequest)
		if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil {
			return apierr.UnprocessableEntity("can not understand the requested json")
		}

		user, err := dbUser.GetByEmail(ctx, req.Email)
		if errors.Is(err, kdb.ErrMissing) {
			return c.JSON(
				http.StatusUnauthorized,
				apiauth.Failed("Invalid username and password"),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if !auth.VerifyPassword(user.Password, req.Password) {
			return c.JSON(
				http.StatusUnauthorized,
				apiauth.Failed("Invalid username and password"),
			)
		}

		lifetime := auth.DefaultLifetime
		if req.Remember {
			lifetime = auth.RememberLifetime
		}
		token, expiresAt, err := policy.Issue(user.Id, lifetime)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		auth.SetCookie(c, token, expiresAt)

		return c.JSON(http.StatusOK, apiauth.Succeeded())
	}
}

// LogoutHandler clears the session cookie. There is no server-side
// session state to revoke.
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		auth.ClearCookie(c)
		return c.JSON(http.StatusOK, apiauth.Succeeded())
	}
}

// ValidateHandler answers 200 when the caller holds a valid session.
// The auth middleware does the actual checking.
func ValidateHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, apiauth.Succeeded())
	}
}
