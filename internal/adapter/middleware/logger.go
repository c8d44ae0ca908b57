package middleware

import (
	"time"

	"rentify-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	// ErrorKey holds the handler error that produced a failure response.
	ErrorKey = "handler_error"

	requestIDKey    = "request_id"
	requestIDMaxLen = 64
)

// RequestID reuses an inbound X-Request-ID or mints one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" || len(rid) > requestIDMaxLen {
				rid = id.NewID32()
			}
			c.Set(requestIDKey, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			return next(c)
		}
	}
}

// RequestLogger writes one zap entry per request: warn on 4xx, error on 5xx.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []zap.Field{
				zap.Int("status", status),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.String("route", c.Path()),
				zap.String("ip", c.RealIP()),
				zap.Duration("latency", time.Since(start)),
			}
			if rid, ok := c.Get(requestIDKey).(string); ok {
				fields = append(fields, zap.String("request_id", rid))
			}
			if herr, ok := c.Get(ErrorKey).(error); ok {
				fields = append(fields, zap.Error(herr))
			} else if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case status >= 500:
				log.Error("request failed", fields...)
			case status >= 400:
				log.Warn("client error", fields...)
			default:
				log.Info("request completed", fields...)
			}
			return nil
		}
	}
}
