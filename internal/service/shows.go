package service

import (
	"context"
	"strings"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// Shows lists every show with its venue and artist, by start time.
func (d *Directory) Shows(ctx context.Context) ([]directory.ShowRow, error) {
	var rows []directory.ShowRow
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		shows, err := uow.Shows.ListAll(ctx)
		if err != nil {
			return err
		}
		rows = directory.BuildShowListings(shows)
		return nil
	})
	return rows, err
}

// CreateShow books an artist at a venue.  Missing or malformed fields
// yield a *ValidationError; an unknown artist or venue yields a
// *repository.ConstraintError naming the offending column.
func (d *Directory) CreateShow(ctx context.Context, f directory.ShowFields) (*model.Show, error) {
	s, err := parseShow(f)
	if err != nil {
		return nil, err
	}
	err = d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		ok, err := uow.Artists.Exists(ctx, s.ArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return &repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.artist_id", Err: repository.ErrArtistNotFound}
		}
		if ok, err = uow.Venues.Exists(ctx, s.VenueID); err != nil {
			return err
		}
		if !ok {
			return &repository.ConstraintError{Kind: repository.ForeignKey, Constraint: "shows.venue_id", Err: repository.ErrVenueNotFound}
		}
		return uow.Shows.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	d.committed(ctx, queue.ShowCreated, s.ID, "")
	return s, nil
}

func parseShow(f directory.ShowFields) (*model.Show, error) {
	var s model.Show
	var err error
	if strings.TrimSpace(f.ArtistID) == "" {
		return nil, invalid("artist_id", "is required")
	}
	if s.ArtistID, err = directory.ParseID(f.ArtistID); err != nil {
		return nil, invalid("artist_id", err.Error())
	}
	if strings.TrimSpace(f.VenueID) == "" {
		return nil, invalid("venue_id", "is required")
	}
	if s.VenueID, err = directory.ParseID(f.VenueID); err != nil {
		return nil, invalid("venue_id", err.Error())
	}
	if strings.TrimSpace(f.StartTime) == "" {
		return nil, invalid("start_time", "is required")
	}
	if s.StartTime, err = directory.ParseStartTime(f.StartTime); err != nil {
		return nil, invalid("start_time", err.Error())
	}
	return &s, nil
}
