package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"rentify-backend/internal/adapter/middleware"
	"rentify-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request. Wrapped causes are never
// serialized.
type ErrorResponse struct {
	Error                string       `json:"error"`
	Code                 apperr.Kind  `json:"code"`
	ConflictingRequestID uint64       `json:"conflicting_request_id,omitempty"`
	Details              []FieldError `json:"details,omitempty"`
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:           http.StatusBadRequest,
	apperr.KindNotFound:             http.StatusNotFound,
	apperr.KindForbidden:            http.StatusForbidden,
	apperr.KindInvalidTransition:    http.StatusBadRequest,
	apperr.KindExclusivityViolation: http.StatusBadRequest,
	apperr.KindInvalidCredentials:   http.StatusForbidden,
	apperr.KindConflict:             http.StatusConflict,
	apperr.KindStore:                http.StatusInternalServerError,
}

func statusFor(kind apperr.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// writeError maps err onto its status and stashes it for the request logger.
func writeError(c echo.Context, err error) error {
	c.Set(middleware.ErrorKey, err)

	resp := ErrorResponse{Error: "internal error", Code: apperr.KindStore}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		resp.Error = ae.Message
		resp.Code = ae.Kind
		resp.ConflictingRequestID = ae.ConflictingRequestID
	}
	return c.JSON(statusFor(resp.Code), resp)
}

func writeInvalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: apperr.KindValidation})
}

func writeValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Code:    apperr.KindValidation,
		Details: ToFieldErrors(err),
	})
}

// bindValid binds the body into dst and runs the registered validator.
// A non-nil return has already been written to the response.
func bindValid(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, writeInvalidBody(c)
	}
	if err := c.Validate(dst); err != nil {
		return false, writeValidation(c, err)
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}

// parseDate accepts YYYY-MM-DD; empty means absent.
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, apperr.Validation("dates must be YYYY-MM-DD")
	}
	return &t, nil
}

func formatID(id uint64) string { return strconv.FormatUint(id, 10) }
