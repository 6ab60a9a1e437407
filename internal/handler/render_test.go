package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

func TestFormatDatetime(t *testing.T) {
	at := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"full", at, "full", "Tuesday May 21, 2019 at 9:30PM"},
		{"medium", at, "medium", "Tue 05, 21, 2019 9:30PM"},
		{"rfc3339 string", "2019-05-21T21:30:00Z", "full", "Tuesday May 21, 2019 at 9:30PM"},
		{"unreadable string", "tomorrow", "full", "tomorrow"},
		{"other zone", at.In(time.FixedZone("X", 3600)), "medium", "Tue 05, 21, 2019 9:30PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDatetime(tt.value, tt.format))
		})
	}
}

func TestHasGenre(t *testing.T) {
	assert.True(t, hasGenre("Jazz,Reggae", "reggae"))
	assert.False(t, hasGenre("Jazz", "Blues"))
	assert.False(t, hasGenre("", "Jazz"))
}

func TestWantsJSON(t *testing.T) {
	e := echo.New()
	tests := []struct {
		target, accept string
		want           bool
	}{
		{"/venues", "", false},
		{"/venues", "text/html", false},
		{"/venues", "application/json", true},
		{"/venues", "application/json, text/plain", true},
		{"/venues?format=json", "text/html", true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		req.Header.Set(echo.HeaderAccept, tt.accept)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, tt.want, wantsJSON(c), "%s accept=%q", tt.target, tt.accept)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&service.ValidationError{Field: "name", Message: "is required"}, http.StatusUnprocessableEntity},
		{fmt.Errorf("get: %w", repository.ErrVenueNotFound), http.StatusNotFound},
		{repository.ErrArtistNotFound, http.StatusNotFound},
		{&repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.venue_id"}, http.StatusConflict},
		{&repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.artist_id", Err: repository.ErrArtistNotFound}, http.StatusConflict},
		{fmt.Errorf("create show: %w", &repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.venue_id", Err: repository.ErrVenueNotFound}), http.StatusConflict},
		{fmt.Errorf("ping: %w", repository.ErrUnavailable), http.StatusServiceUnavailable},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "%v", tt.err)
	}
}

func TestReason_NamesForeignKeyColumn(t *testing.T) {
	err := &repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.artist_id"}
	assert.Equal(t, "shows.artist_id does not reference an existing record", reason(err))
	assert.Equal(t, "unexpected error", reason(errors.New("dial tcp: secret host")))
}

func TestRenderer_EveryPageRendersInLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range []string{
		"home", "venues/list", "venues/search", "venues/show", "venues/form",
		"artists/list", "artists/search", "artists/show", "artists/form",
		"shows/list", "shows/form", "errors/404", "errors/500", "errors/error",
	} {
		assert.Contains(t, r.pages, name)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, "errors/404", Page{Title: "Not Found", Flash: &Flash{Kind: "danger", Message: "gone <b>"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>")
	assert.Contains(t, buf.String(), "gone &lt;b&gt;")

	require.Error(t, r.Render(&buf, "missing", Page{}, nil))
}
