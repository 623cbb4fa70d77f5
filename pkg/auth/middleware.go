package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	apierr "github.com/yaraku/he-tool/pkg/api/types/errors"
)

const userIdContextKey = "het/userId"

// Required guards routes behind a valid session cookie.
//
// When the session expires within RefreshWindow, a fresh token with the
// default lifetime is attached to the response before the handler runs.
func Required(policy *TokenPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil {
				return apierr.Unauthorized("missing session")
			}
			userId, expiresAt, err := policy.Verify(cookie.Value)
			if err != nil {
				return apierr.Unauthorized("invalid session")
			}
			if time.Until(expiresAt) < RefreshWindow {
				if token, exp, err := policy.Issue(userId, DefaultLifetime); err == nil {
					SetCookie(c, token, exp)
				}
			}
			SetUserID(c, userId)
			return next(c)
		}
	}
}

// SetUserID marks c as authenticated as userId, as Required does after
// verifying the session.
func SetUserID(c echo.Context, userId int) {
	c.Set(userIdContextKey, userId)
}

// UserID reads the authenticated user's id set by Required.
func UserID(c echo.Context) (int, bool) {
	userId, ok := c.Get(userIdContextKey).(int)
	return userId, ok
}
