package directory_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
)

func TestBuildSearchResult(t *testing.T) {
	venues := []model.Venue{
		{ID: 2, Name: "The Dueling Pianos Bar"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}
	res := directory.BuildSearchResult(directory.VenuesNamed(venues), map[uint64]int{3: 1})

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []directory.SearchHit{
		{ID: 2, Name: "The Dueling Pianos Bar", NumUpcomingShows: 0},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
	}, res.Data)
}

func TestBuildSearchResult_NoMatchesEncodesEmptyList(t *testing.T) {
	res := directory.BuildSearchResult(directory.ArtistsNamed(nil), nil)
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"data":[]}`, string(b))
}

func TestBuildVenueDetail(t *testing.T) {
	venue := model.Venue{ID: 1, Name: "The Musical Hop"}
	shows := []model.ShowListing{
		{ShowID: 1, ArtistID: 4, ArtistName: "Guns N Petals", ArtistGenres: "Rock n Roll", StartTime: now.Add(-30 * 24 * time.Hour)},
		{ShowID: 2, ArtistID: 5, ArtistName: "Matt Quevedo", ArtistGenres: "Jazz,rock n roll", StartTime: now.Add(24 * time.Hour)},
	}

	d := directory.BuildVenueDetail(venue, shows, now)

	assert.Equal(t, "The Musical Hop", d.Name)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	assert.Equal(t, uint64(4), d.PastShows[0].ArtistID)
	assert.Equal(t, "Matt Quevedo", d.UpcomingShows[0].ArtistName)
	assert.Equal(t, directory.FormatStartTime(now.Add(24*time.Hour)), d.UpcomingShows[0].StartTime)
	assert.Equal(t, []string{"Rock n Roll", "Jazz"}, d.Genres)
}

func TestBuildArtistDetail_NoShows(t *testing.T) {
	d := directory.BuildArtistDetail(model.Artist{ID: 4, Name: "Guns N Petals"}, nil, now)

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, []any{}, body["genres"])
	assert.Equal(t, []any{}, body["past_shows"])
	assert.Equal(t, []any{}, body["upcoming_shows"])
	assert.EqualValues(t, 0, body["past_shows_count"])
	assert.EqualValues(t, 0, body["upcoming_shows_count"])
}

func TestBuildArtistDetail_CountsMatchLists(t *testing.T) {
	shows := []model.ShowListing{
		{VenueID: 1, VenueName: "The Musical Hop", StartTime: now.Add(-time.Hour)},
		{VenueID: 3, VenueName: "Park Square", StartTime: now.Add(time.Hour)},
		{VenueID: 3, VenueName: "Park Square", StartTime: now.Add(2 * time.Hour)},
	}
	d := directory.BuildArtistDetail(model.Artist{ID: 6, Genres: "Jazz"}, shows, now)

	assert.Equal(t, len(d.PastShows), d.PastShowsCount)
	assert.Equal(t, len(d.UpcomingShows), d.UpcomingShowsCount)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 2, d.UpcomingShowsCount)
	assert.Equal(t, []string{"Jazz"}, d.Genres)
}

func TestBuildShowListings(t *testing.T) {
	rows := directory.BuildShowListings([]model.ShowListing{
		{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", ArtistImageLink: "img", StartTime: now},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, directory.ShowRow{
		VenueID: 1, VenueName: "The Musical Hop",
		ArtistID: 4, ArtistName: "Guns N Petals", ArtistImageLink: "img",
		StartTime: "2026-05-01T12:00:00Z",
	}, rows[0])
}
