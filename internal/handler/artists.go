package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/service"
)

func (h *DirectoryHandler) Artists(c echo.Context) error {
	artists, err := h.Dir.Artists(ctxOf(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "artists/list", Page{Title: "Artists", Data: artists})
}

func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.Dir.SearchArtists(ctxOf(c), term)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "artists/search", Page{Title: "Search Artists", SearchTerm: term, Data: res})
}

func (h *DirectoryHandler) ShowArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	detail, err := h.Dir.Artist(ctxOf(c), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "artists/show", Page{Title: detail.Name, Data: detail})
}

func (h *DirectoryHandler) NewArtistForm(c echo.Context) error {
	return respond(c, http.StatusOK, "artists/form", Page{
		Title: "New Artist",
		Data:  formView{Action: "/artists/create", Record: &model.Artist{}, Genres: genreChoices},
	})
}

func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	f, err := artistFields(c)
	if err != nil {
		return err
	}
	a, err := h.Dir.CreateArtist(ctxOf(c), f)
	if err != nil {
		name := "Artist"
		if f.Name != nil && *f.Name != "" {
			name = "Artist " + *f.Name
		}
		return h.createFailed(c, name, err)
	}
	return h.homeWithFlash(c, createdStatus(c), Flash{
		Kind:    "success",
		Message: "Artist " + a.Name + " was successfully listed!",
	}, a)
}

func (h *DirectoryHandler) EditArtistForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	a, err := h.Dir.GetArtist(ctxOf(c), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "artists/form", Page{
		Title: "Edit " + a.Name,
		Data:  formView{Action: fmt.Sprintf("/artists/%d/edit", id), Editing: true, Record: a, Genres: genreChoices},
	})
}

// EditArtist applies the submitted fields and redirects to the artist page.
func (h *DirectoryHandler) EditArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	f, err := artistFields(c)
	if err != nil {
		return err
	}
	a, err := h.Dir.UpdateArtist(ctxOf(c), id, f)
	if err != nil {
		var ve *service.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		current, gerr := h.Dir.GetArtist(ctxOf(c), id)
		if gerr != nil {
			return gerr
		}
		f.Apply(current)
		return respond(c, http.StatusUnprocessableEntity, "artists/form", Page{
			Title: "Edit " + current.Name,
			Flash: &Flash{Kind: "danger", Message: reason(err)},
			Data:  formView{Action: fmt.Sprintf("/artists/%d/edit", id), Editing: true, Record: current, Genres: genreChoices},
		})
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, a)
	}
	return redirect(c, fmt.Sprintf("/artists/%d", id))
}
