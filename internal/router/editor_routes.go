package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
)

// RegisterEditor registers the routes that change the directory.  The
// middlewares (editor guard, rate limit) are attached per route; an Echo
// group without a prefix would also catch unmatched paths.
func RegisterEditor(e *echo.Echo, h *handler.DirectoryHandler, mw ...echo.MiddlewareFunc) {
	// ---- Venues ----
	e.POST("/venues/create", h.CreateVenue, mw...)
	e.POST("/venues/:id/edit", h.EditVenue, mw...)
	e.DELETE("/venues/:id", h.DeleteVenue, mw...)
	e.POST("/venues/:id/delete", h.DeleteVenue, mw...) // plain HTML forms cannot send DELETE

	// ---- Artists ----
	e.POST("/artists/create", h.CreateArtist, mw...)
	e.POST("/artists/:id/edit", h.EditArtist, mw...)

	// ---- Shows ----
	e.POST("/shows/create", h.CreateShow, mw...)
}
