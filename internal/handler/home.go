package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home lists the most recently added venues and artists.
func (h *DirectoryHandler) Home(c echo.Context) error {
	home, err := h.Dir.Home(ctxOf(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "home", Page{Title: "Fyyur", Data: home})
}
