package repository

import (
	"context"

	"github.com/iliyamo/fyyur/internal/model"
)

// ShowRepo manages persistence for shows.  Shows are only ever inserted
// and read; venue deletion removes them through VenueRepo.Delete.
type ShowRepo struct {
	db querier
}

func NewShowRepo(db querier) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a show and populates its ID.  The start time is stored
// in UTC.  A reference to a missing artist or venue surfaces as a
// *ConstraintError of kind ForeignKey.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	const q = `INSERT INTO shows (start_time, artist_id, venue_id) VALUES (?, ?, ?)`
	s.StartTime = s.StartTime.UTC()
	id, err := insertID(ctx, r.db, q, s.StartTime, s.ArtistID, s.VenueID)
	if err != nil {
		return classify("insert show", err)
	}
	s.ID = id
	return nil
}

// ListSchedule returns the bare rows of every show.  Upcoming counts are
// computed from it in Go so that "now" stays an explicit input.
func (r *ShowRepo) ListSchedule(ctx context.Context) ([]model.Show, error) {
	out := []model.Show{}
	const q = `SELECT id, start_time, artist_id, venue_id FROM shows ORDER BY id`
	if err := sqlxSelect(ctx, r.db, &out, q); err != nil {
		return nil, classify("list show schedule", err)
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}

const listingSelect = `SELECT
		s.id         AS show_id,
		s.start_time AS start_time,
		v.id         AS venue_id,
		v.name       AS venue_name,
		v.image_link AS venue_image_link,
		a.id         AS artist_id,
		a.name       AS artist_name,
		a.image_link AS artist_image_link,
		a.genres     AS artist_genres
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ListAll returns every show joined with its venue and artist, ordered by
// start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.listings(ctx, "list shows", listingSelect+` ORDER BY s.start_time, s.id`)
}

// ListByVenue returns the shows hosted by one venue.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	return r.listings(ctx, "list venue shows", listingSelect+` WHERE s.venue_id = ? ORDER BY s.start_time, s.id`, venueID)
}

// ListByArtist returns the shows played by one artist.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	return r.listings(ctx, "list artist shows", listingSelect+` WHERE s.artist_id = ? ORDER BY s.start_time, s.id`, artistID)
}

func (r *ShowRepo) listings(ctx context.Context, op, q string, args ...any) ([]model.ShowListing, error) {
	out := []model.ShowListing{}
	if err := sqlxSelect(ctx, r.db, &out, q, args...); err != nil {
		return nil, classify(op, err)
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}
