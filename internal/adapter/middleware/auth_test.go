package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentify-backend/pkg/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthEcho(signer *token.Signer) *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		claims := c.Get(ClaimsKey).(*token.Claims)
		return c.String(http.StatusOK, claims.Subject)
	}, RequireToken(signer))
	return e
}

func getWithAuth(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireToken(t *testing.T) {
	signer := token.NewSigner("0123456789abcdef", time.Hour)
	e := setupAuthEcho(signer)

	raw, err := signer.Issue("user", "12", "User")
	require.NoError(t, err)
	other, err := token.NewSigner("fedcba9876543210", time.Hour).Issue("user", "12", "User")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + raw, http.StatusOK},
		{"lowercase scheme", "bearer " + raw, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + raw, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"foreign signer", "Bearer " + other, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := getWithAuth(e, tc.header)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
			if tc.code == http.StatusOK {
				assert.Equal(t, "user:12", rec.Body.String())
			}
		})
	}
}
