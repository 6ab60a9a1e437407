package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/directory"
)

// genreChoices are the options of the genres multi-select.
var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// formView feeds the create and edit templates.
type formView struct {
	Action  string
	Editing bool
	Record  any
	Genres  []string
}

func isJSONBody(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// submitted returns the posted form or, for urlencoded/multipart bodies,
// the parsed values.  Query parameters are not considered.
func submitted(c echo.Context) (url.Values, error) {
	if _, err := c.FormParams(); err != nil {
		return nil, err
	}
	return c.Request().PostForm, nil
}

func field(form url.Values, name string) *string {
	vs, ok := form[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

// checkbox reads a boolean input.  Browsers omit unchecked boxes, so an
// absent box is only "false" when the whole form was submitted.
func checkbox(form url.Values, name string, full bool) *bool {
	v := field(form, name)
	if v == nil {
		if full {
			return directory.Ptr(false)
		}
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "", "0", "false", "n", "no", "off":
		return directory.Ptr(false)
	}
	return directory.Ptr(true)
}

// venueFields reads a venue submission.  full marks a browser form that
// always carries every field, as opposed to a partial JSON patch.
func venueFields(c echo.Context) (directory.VenueFields, error) {
	var f directory.VenueFields
	if isJSONBody(c) {
		if err := json.NewDecoder(c.Request().Body).Decode(&f); err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
		}
		return f, nil
	}
	form, err := submitted(c)
	if err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	f = directory.VenueFields{
		Name:               field(form, "name"),
		City:               field(form, "city"),
		State:              field(form, "state"),
		Address:            field(form, "address"),
		Phone:              field(form, "phone"),
		ImageLink:          field(form, "image_link"),
		FacebookLink:       field(form, "facebook_link"),
		Website:            field(form, "website"),
		SeekingTalent:      checkbox(form, "seeking_talent", field(form, "name") != nil),
		SeekingDescription: field(form, "seeking_description"),
	}
	return f, nil
}

func artistFields(c echo.Context) (directory.ArtistFields, error) {
	var f directory.ArtistFields
	if isJSONBody(c) {
		if err := json.NewDecoder(c.Request().Body).Decode(&f); err != nil {
			return f, echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
		}
		return f, nil
	}
	form, err := submitted(c)
	if err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	f = directory.ArtistFields{
		Name:               field(form, "name"),
		City:               field(form, "city"),
		State:              field(form, "state"),
		Phone:              field(form, "phone"),
		ImageLink:          field(form, "image_link"),
		FacebookLink:       field(form, "facebook_link"),
		Website:            field(form, "website"),
		SeekingVenue:       checkbox(form, "seeking_venue", field(form, "name") != nil),
		SeekingDescription: field(form, "seeking_description"),
	}
	// an unselected multi-select sends nothing, like an unchecked box
	if g, ok := form["genres"]; ok {
		f.Genres = &g
	} else if f.Name != nil {
		f.Genres = &[]string{}
	}
	return f, nil
}

// showFields reads a show submission.  JSON ids may be numbers or strings.
func showFields(c echo.Context) (directory.ShowFields, error) {
	if isJSONBody(c) {
		var raw map[string]any
		dec := json.NewDecoder(c.Request().Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return directory.ShowFields{}, echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
		}
		str := func(k string) string {
			if v, ok := raw[k]; ok && v != nil {
				return fmt.Sprint(v)
			}
			return ""
		}
		return directory.ShowFields{ArtistID: str("artist_id"), VenueID: str("venue_id"), StartTime: str("start_time")}, nil
	}
	form, err := submitted(c)
	if err != nil {
		return directory.ShowFields{}, echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	return directory.ShowFields{
		ArtistID:  form.Get("artist_id"),
		VenueID:   form.Get("venue_id"),
		StartTime: form.Get("start_time"),
	}, nil
}

// pathID reads the :id parameter; a malformed id is a 404 like a missing one.
func pathID(c echo.Context) (uint64, error) {
	id, err := directory.ParseID(c.Param("id"))
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
