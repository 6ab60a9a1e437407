package service

import (
	"context"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// Artists lists every artist by id.
func (d *Directory) Artists(ctx context.Context) ([]directory.ArtistSummary, error) {
	var out []directory.ArtistSummary
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		artists, err := uow.Artists.ListAll(ctx)
		if err != nil {
			return err
		}
		out = directory.SummarizeArtists(artists)
		return nil
	})
	return out, err
}

// SearchArtists finds artists whose name contains term, ignoring case.
func (d *Directory) SearchArtists(ctx context.Context, term string) (directory.SearchResult, error) {
	var res directory.SearchResult
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		artists, err := uow.Artists.SearchByName(ctx, term)
		if err != nil {
			return err
		}
		shows, err := uow.Shows.ListSchedule(ctx)
		if err != nil {
			return err
		}
		res = directory.BuildSearchResult(directory.ArtistsNamed(artists), directory.CountUpcoming(shows, d.now(), directory.ByArtist))
		return nil
	})
	return res, err
}

// Artist assembles the artist page or returns repository.ErrArtistNotFound.
func (d *Directory) Artist(ctx context.Context, id uint64) (directory.ArtistDetail, error) {
	var detail directory.ArtistDetail
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		a, err := uow.Artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		shows, err := uow.Shows.ListByArtist(ctx, id)
		if err != nil {
			return err
		}
		detail = directory.BuildArtistDetail(*a, shows, d.now())
		return nil
	})
	return detail, err
}

func (d *Directory) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	var a *model.Artist
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		a, err = uow.Artists.GetByID(ctx, id)
		return err
	})
	return a, err
}

// CreateArtist stores a new artist from the submitted fields.
func (d *Directory) CreateArtist(ctx context.Context, f directory.ArtistFields) (*model.Artist, error) {
	var a model.Artist
	f.Apply(&a)
	if err := requireName(a.Name); err != nil {
		return nil, err
	}
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		return uow.Artists.Create(ctx, &a)
	})
	if err != nil {
		return nil, err
	}
	d.committed(ctx, queue.ArtistCreated, a.ID, a.Name)
	return &a, nil
}

// UpdateArtist overwrites the submitted fields of artist id and keeps the
// rest.
func (d *Directory) UpdateArtist(ctx context.Context, id uint64, f directory.ArtistFields) (*model.Artist, error) {
	var a *model.Artist
	err := d.store.Within(ctx, func(uow *repository.UnitOfWork) error {
		var err error
		if a, err = uow.Artists.GetByID(ctx, id); err != nil {
			return err
		}
		f.Apply(a)
		if err := requireName(a.Name); err != nil {
			return err
		}
		return uow.Artists.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	d.committed(ctx, queue.ArtistUpdated, a.ID, a.Name)
	return a, nil
}
