package service

import (
	"context"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// HomePage lists the most recently added venues and artists.
type HomePage struct {
	RecentVenues  []model.Venue  `json:"recent_venues"`
	RecentArtists []model.Artist `json:"recent_artists"`
}

// Home returns the latest HomeLimit venues and artists, newest first.
func (d *Directory) Home(ctx context.Context) (HomePage, error) {
	var page HomePage
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		if page.RecentVenues, err = uow.Venues.ListRecent(ctx, HomeLimit); err != nil {
			return err
		}
		page.RecentArtists, err = uow.Artists.ListRecent(ctx, HomeLimit)
		return err
	})
	return page, err
}

// VenueAreas returns all venues grouped by city with their upcoming show
// counts.
func (d *Directory) VenueAreas(ctx context.Context) ([]directory.Area, error) {
	var areas []directory.Area
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		venues, err := uow.Venues.ListAll(ctx)
		if err != nil {
			return err
		}
		shows, err := uow.Shows.ListSchedule(ctx)
		if err != nil {
			return err
		}
		areas = directory.GroupByCity(venues, directory.CountUpcoming(shows, d.now(), directory.ByVenue))
		return nil
	})
	return areas, err
}

// SearchVenues finds venues whose name contains term, ignoring case.
func (d *Directory) SearchVenues(ctx context.Context, term string) (directory.SearchResult, error) {
	var res directory.SearchResult
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		venues, err := uow.Venues.SearchByName(ctx, term)
		if err != nil {
			return err
		}
		shows, err := uow.Shows.ListSchedule(ctx)
		if err != nil {
			return err
		}
		res = directory.BuildSearchResult(directory.VenuesNamed(venues), directory.CountUpcoming(shows, d.now(), directory.ByVenue))
		return nil
	})
	return res, err
}

// Venue assembles the venue page.  It returns repository.ErrVenueNotFound
// for an unknown id.
func (d *Directory) Venue(ctx context.Context, id uint64) (directory.VenueDetail, error) {
	var detail directory.VenueDetail
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		v, err := uow.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		shows, err := uow.Shows.ListByVenue(ctx, id)
		if err != nil {
			return err
		}
		detail = directory.BuildVenueDetail(*v, shows, d.now())
		return nil
	})
	return detail, err
}

// GetVenue loads the stored venue, e.g. to prefill the edit form.
func (d *Directory) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	var v *model.Venue
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		v, err = uow.Venues.GetByID(ctx, id)
		return err
	})
	return v, err
}

// CreateVenue stores a new venue from the submitted fields.  Absent
// fields are stored empty; the name is required.
func (d *Directory) CreateVenue(ctx context.Context, f directory.VenueFields) (*model.Venue, error) {
	var v model.Venue
	f.Apply(&v)
	if err := requireName(v.Name); err != nil {
		return nil, err
	}
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		return uow.Venues.Create(ctx, &v)
	})
	if err != nil {
		return nil, err
	}
	d.committed(ctx, queue.VenueCreated, v.ID, v.Name)
	return &v, nil
}

// UpdateVenue overwrites the submitted fields of venue id and keeps the
// rest.
func (d *Directory) UpdateVenue(ctx context.Context, id uint64, f directory.VenueFields) (*model.Venue, error) {
	var v *model.Venue
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		if v, err = uow.Venues.GetByID(ctx, id); err != nil {
			return err
		}
		f.Apply(v)
		if err := requireName(v.Name); err != nil {
			return err
		}
		return uow.Venues.Update(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	d.committed(ctx, queue.VenueUpdated, v.ID, v.Name)
	return v, nil
}

// DeleteVenue removes venue id and its shows.  Nothing is removed when
// any step fails.
func (d *Directory) DeleteVenue(ctx context.Context, id uint64) error {
	var name string
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		v, err := uow.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		name = v.Name
		return uow.Venues.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	d.committed(ctx, queue.VenueDeleted, id, name)
	return nil
}
