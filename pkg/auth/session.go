package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the session token.
//
// The name is kept from the previous deployment of this tool so that
// sessions survive the switch.
const CookieName = "access_token_cookie"

const (
	// session lifetime of a plain login.
	DefaultLifetime = time.Hour

	// session lifetime when the caller asked to be remembered.
	RememberLifetime = 7 * 24 * time.Hour

	// sessions expiring within this window get a fresh token attached
	// to the response.
	RefreshWindow = 15 * time.Minute
)

var ErrInvalidToken = errors.New("invalid session token")

// TokenPolicy issues and verifies HS256-signed session tokens.
type TokenPolicy struct {
	secret []byte
}

func NewTokenPolicy(secret []byte) *TokenPolicy {
	return &TokenPolicy{secret: secret}
}

// Issue signs a session token for the user, expiring after ttl.
func (p *TokenPolicy) Issue(userId int, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.Itoa(userId),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify parses a session token and gives back the user id it was
// issued for and when it expires.
//
// error: ErrInvalidToken when the token is malformed, missigned or expired.
func (p *TokenPolicy) Verify(token string) (int, time.Time, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, time.Time{}, ErrInvalidToken
	}
	userId, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.Subject)
	}
	return userId, claims.ExpiresAt.Time, nil
}

// SetCookie attaches token to the response as the session cookie.
func SetCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie makes the client drop the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
