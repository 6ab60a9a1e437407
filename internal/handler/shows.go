package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Shows lists every show by start time.
func (h *DirectoryHandler) Shows(c echo.Context) error {
	rows, err := h.Dir.Shows(ctxOf(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "shows/list", Page{Title: "Shows", Data: rows})
}

func (h *DirectoryHandler) NewShowForm(c echo.Context) error {
	return respond(c, http.StatusOK, "shows/form", Page{
		Title: "New Show",
		Data:  formView{Action: "/shows/create"},
	})
}

// CreateShow books a show.  Unknown artist or venue ids are reported with
// the offending column instead of a generic failure.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	f, err := showFields(c)
	if err != nil {
		return err
	}
	s, err := h.Dir.CreateShow(ctxOf(c), f)
	if err != nil {
		return h.createFailed(c, "Show", err)
	}
	return h.homeWithFlash(c, createdStatus(c), Flash{
		Kind:    "success",
		Message: "Show was successfully listed!",
	}, s)
}
