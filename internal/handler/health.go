package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a health-check endpoint used by load balancers and monitoring
// systems.  It returns "ok" when the database answers and 503 otherwise.
func (h *DirectoryHandler) Health(c echo.Context) error {
	if err := h.Dir.Ping(ctxOf(c)); err != nil {
		h.Log.WithError(err).Warn("health check failed")
		return c.String(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.String(http.StatusOK, "ok")
}
