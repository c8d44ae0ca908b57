package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"rentify-backend/internal/adapter/middleware"
	"rentify-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[apperr.Kind]int{
		apperr.KindValidation:           stdhttp.StatusBadRequest,
		apperr.KindNotFound:             stdhttp.StatusNotFound,
		apperr.KindForbidden:            stdhttp.StatusForbidden,
		apperr.KindInvalidTransition:    stdhttp.StatusBadRequest,
		apperr.KindExclusivityViolation: stdhttp.StatusBadRequest,
		apperr.KindInvalidCredentials:   stdhttp.StatusForbidden,
		apperr.KindConflict:             stdhttp.StatusConflict,
		apperr.KindStore:                stdhttp.StatusInternalServerError,
		apperr.Kind("mystery"):          stdhttp.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusFor(kind), kind)
	}
}

func TestWriteError_HidesCause(t *testing.T) {
	e := echo.New()
	for _, err := range []error{
		apperr.Store(errors.New("dial tcp 10.0.0.3:3306: connection refused")),
		errors.New("raw driver failure"),
	} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), rec)

		require.NoError(t, writeError(c, err))
		assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "3306")
		assert.NotContains(t, rec.Body.String(), "driver")
		assert.Equal(t, err, c.Get(middleware.ErrorKey))
	}
}

func TestWriteError_Exclusivity(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(stdhttp.MethodPatch, "/", nil), rec)

	require.NoError(t, writeError(c, apperr.Exclusivity(42)))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperr.KindExclusivityViolation, body.Code)
	assert.Equal(t, uint64(42), body.ConflictingRequestID)
}

func TestPathIDAndParseDate(t *testing.T) {
	e := echo.New()
	for raw, ok := range map[string]bool{"7": true, "0": false, "-1": false, "x": false} {
		c := e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		_, err := pathID(c, "id")
		assert.Equal(t, ok, err == nil, raw)
	}

	d, err := parseDate("")
	assert.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = parseDate("29/02/2024")
	assert.ErrorIs(t, err, apperr.Validation(""))
}
