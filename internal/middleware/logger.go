package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes one logrus entry per request.  It reuses an
// incoming X-Request-ID or mints one, and echoes it on the response.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}

			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     c.Response().Status,
				"duration":   time.Since(start).String(),
				"remote_ip":  c.RealIP(),
			})
			if err != nil {
				entry = entry.WithError(err)
			}
			switch status := c.Response().Status; {
			case status >= 500:
				entry.Error("request failed")
			case status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request handled")
			}
			return nil
		}
	}
}
