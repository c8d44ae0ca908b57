package middleware

import (
	"errors"
	"net/http"
	"strings"

	"rentify-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

// ClaimsKey holds the *token.Claims of a verified request.
const ClaimsKey = "token_claims"

type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// RequireToken accepts only requests carrying "Authorization: Bearer <token>"
// that the parser verifies.
func RequireToken(p TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scheme, raw, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, errBody("invalid_credentials", "missing bearer token"))
			}
			claims, err := p.Parse(strings.TrimSpace(raw))
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, token.ErrExpired) {
					msg = "token expired"
				}
				c.Set(ErrorKey, err)
				return c.JSON(http.StatusUnauthorized, errBody("invalid_credentials", msg))
			}
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
