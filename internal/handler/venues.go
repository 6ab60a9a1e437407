package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// Venues lists every venue grouped by city.
func (h *DirectoryHandler) Venues(c echo.Context) error {
	areas, err := h.Dir.VenueAreas(ctxOf(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "venues/list", Page{Title: "Venues", Data: areas})
}

// SearchVenues answers both the POSTed search form and GET ?search_term=.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.Dir.SearchVenues(ctxOf(c), term)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "venues/search", Page{Title: "Search Venues", SearchTerm: term, Data: res})
}

// ShowVenue renders one venue with its past and upcoming shows.
func (h *DirectoryHandler) ShowVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.Dir.Venue(ctxOf(c), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "venues/show", Page{Title: detail.Name, Data: detail})
}

// NewVenueForm renders the empty venue form.
func (h *DirectoryHandler) NewVenueForm(c echo.Context) error {
	return respond(c, http.StatusOK, "venues/form", Page{
		Title: "New Venue",
		Data:  formView{Action: "/venues/create", Record: &model.Venue{}},
	})
}

// CreateVenue stores a submitted venue and reports the outcome on the
// home page.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	f, err := venueFields(c)
	if err != nil {
		return err
	}
	v, err := h.Dir.CreateVenue(ctxOf(c), f)
	if err != nil {
		name := "Venue"
		if f.Name != nil && *f.Name != "" {
			name = "Venue " + *f.Name
		}
		return h.createFailed(c, name, err)
	}
	return h.homeWithFlash(c, createdStatus(c), Flash{
		Kind:    "success",
		Message: "Venue " + v.Name + " was successfully listed!",
	}, v)
}

// EditVenueForm renders the venue form prefilled with the stored values.
func (h *DirectoryHandler) EditVenueForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	v, err := h.Dir.GetVenue(ctxOf(c), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "venues/form", Page{
		Title: "Edit " + v.Name,
		Data:  formView{Action: fmt.Sprintf("/venues/%d/edit", id), Editing: true, Record: v},
	})
}

// EditVenue applies the submitted fields and redirects to the venue page.
func (h *DirectoryHandler) EditVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	f, err := venueFields(c)
	if err != nil {
		return err
	}
	v, err := h.Dir.UpdateVenue(ctxOf(c), id, f)
	if err != nil {
		var ve *service.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		current, gerr := h.Dir.GetVenue(ctxOf(c), id)
		if gerr != nil {
			return gerr
		}
		f.Apply(current)
		return respond(c, http.StatusUnprocessableEntity, "venues/form", Page{
			Title: "Edit " + current.Name,
			Flash: &Flash{Kind: "danger", Message: reason(err)},
			Data:  formView{Action: fmt.Sprintf("/venues/%d/edit", id), Editing: true, Record: current},
		})
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, v)
	}
	return redirect(c, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes a venue and its shows.  Browsers are always sent
// back to the venue list; JSON clients get 204, or 404 for an unknown id.
func (h *DirectoryHandler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	err = h.Dir.DeleteVenue(ctxOf(c), id)
	if wantsJSON(c) {
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil && !errors.Is(err, repository.ErrVenueNotFound) {
		h.Log.WithError(err).WithField("venue_id", id).Error("deleting venue failed")
	}
	return redirect(c, "/venues")
}
