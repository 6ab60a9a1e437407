package directory

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// SearchHit is one match in a search result.
type SearchHit struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the body of both search pages.
type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// Named is satisfied by the search record adapters below.
type Named struct {
	ID   uint64
	Name string
}

// VenuesNamed and ArtistsNamed adapt records for BuildSearchResult.
func VenuesNamed(vs []model.Venue) []Named {
	out := make([]Named, 0, len(vs))
	for _, v := range vs {
		out = append(out, Named{ID: v.ID, Name: v.Name})
	}
	return out
}

func ArtistsNamed(as []model.Artist) []Named {
	out := make([]Named, 0, len(as))
	for _, a := range as {
		out = append(out, Named{ID: a.ID, Name: a.Name})
	}
	return out
}

// BuildSearchResult keeps the order of records and annotates each with its
// number of upcoming shows.
func BuildSearchResult(records []Named, upcoming map[uint64]int) SearchResult {
	res := SearchResult{Count: len(records), Data: make([]SearchHit, 0, len(records))}
	for _, r := range records {
		res.Data = append(res.Data, SearchHit{ID: r.ID, Name: r.Name, NumUpcomingShows: upcoming[r.ID]})
	}
	return res
}

// ArtistShow is a show seen from a venue page.
type ArtistShow struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show seen from an artist page.
type VenueShow struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueDetail is the view-model of the venue page.
type VenueDetail struct {
	model.Venue
	Genres             []string     `json:"genres"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistDetail is the view-model of the artist page.
type ArtistDetail struct {
	model.Artist
	Genres             []string    `json:"genres"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func listingStart(s model.ShowListing) time.Time { return s.StartTime }

// BuildVenueDetail assembles the venue page from the venue and its joined
// shows.  Genres lists the genres of every artist booked at the venue.
func BuildVenueDetail(v model.Venue, shows []model.ShowListing, now time.Time) VenueDetail {
	past, upcoming := Partition(shows, listingStart, now)
	d := VenueDetail{
		Venue:         v,
		Genres:        []string{},
		PastShows:     make([]ArtistShow, 0, len(past)),
		UpcomingShows: make([]ArtistShow, 0, len(upcoming)),
	}
	seen := make(map[string]bool)
	for _, s := range shows {
		d.Genres = mergeGenres(d.Genres, seen, s.ArtistGenres)
	}
	for _, s := range past {
		d.PastShows = append(d.PastShows, artistShow(s))
	}
	for _, s := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, artistShow(s))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

// BuildArtistDetail assembles the artist page from the artist and its
// joined shows.
func BuildArtistDetail(a model.Artist, shows []model.ShowListing, now time.Time) ArtistDetail {
	past, upcoming := Partition(shows, listingStart, now)
	d := ArtistDetail{
		Artist:        a,
		Genres:        SplitGenres(a.Genres),
		PastShows:     make([]VenueShow, 0, len(past)),
		UpcomingShows: make([]VenueShow, 0, len(upcoming)),
	}
	for _, s := range past {
		d.PastShows = append(d.PastShows, venueShow(s))
	}
	for _, s := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, venueShow(s))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func artistShow(s model.ShowListing) ArtistShow {
	return ArtistShow{
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		ArtistImageLink: s.ArtistImageLink,
		StartTime:       FormatStartTime(s.StartTime),
	}
}

func venueShow(s model.ShowListing) VenueShow {
	return VenueShow{
		VenueID:        s.VenueID,
		VenueName:      s.VenueName,
		VenueImageLink: s.VenueImageLink,
		StartTime:      FormatStartTime(s.StartTime),
	}
}

// ShowRow is one line of the shows page.
type ShowRow struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// BuildShowListings converts joined shows into page rows, keeping their order.
func BuildShowListings(shows []model.ShowListing) []ShowRow {
	out := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatStartTime(s.StartTime),
		})
	}
	return out
}

// ArtistSummary is an artist as listed on the artists page.
type ArtistSummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SummarizeArtists keeps id and name of each artist, in order.
func SummarizeArtists(as []model.Artist) []ArtistSummary {
	out := make([]ArtistSummary, 0, len(as))
	for _, a := range as {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out
}
