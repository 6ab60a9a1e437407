package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/database/databasetest"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/repository"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(databasetest.Open(t))
}

func seedVenue(t *testing.T, s *repository.Store, v model.Venue) model.Venue {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), func(uow *repository.UnitOfWork) error {
		return uow.Venues.Create(context.Background(), &v)
	}))
	return v
}

func seedArtist(t *testing.T, s *repository.Store, a model.Artist) model.Artist {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), func(uow *repository.UnitOfWork) error {
		return uow.Artists.Create(context.Background(), &a)
	}))
	return a
}

func seedShow(t *testing.T, s *repository.Store, sh model.Show) model.Show {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), func(uow *repository.UnitOfWork) error {
		return uow.Shows.Create(context.Background(), &sh)
	}))
	return sh
}

func TestVenueRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	site := "https://www.themusicalhop.com"
	v := seedVenue(t, s, model.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", SeekingTalent: true, Website: &site,
	})
	require.NotZero(t, v.ID)

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		got, err := uow.Venues.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, v, *got)
		return nil
	}))
}

func TestVenueRepo_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	err := s.Within(ctx, func(uow *repository.UnitOfWork) error {
		_, err := uow.Venues.GetByID(ctx, 999)
		return err
	})
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestVenueRepo_SearchByName(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedVenue(t, s, model.Venue{Name: "The Musical Hop"})
	seedVenue(t, s, model.Venue{Name: "The Dueling Pianos Bar"})
	seedVenue(t, s, model.Venue{Name: "Park Square Live Music & Coffee"})
	seedVenue(t, s, model.Venue{Name: "100% Vinyl"})

	tests := []struct {
		term string
		want []string
	}{
		{"Hop", []string{"The Musical Hop"}},
		{"Music", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"MUSIC", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"", []string{"The Musical Hop", "The Dueling Pianos Bar", "Park Square Live Music & Coffee", "100% Vinyl"}},
		{"%", []string{"100% Vinyl"}},
		{"_", nil},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
				got, err := uow.Venues.SearchByName(ctx, tt.term)
				require.NoError(t, err)
				names := []string{}
				for _, v := range got {
					names = append(names, v.Name)
				}
				if tt.want == nil {
					assert.Empty(t, names)
				} else {
					assert.Equal(t, tt.want, names)
				}
				return nil
			}))
		})
	}
}

func TestVenueRepo_DeleteCascadesShows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	v := seedVenue(t, s, model.Venue{Name: "The Musical Hop"})
	other := seedVenue(t, s, model.Venue{Name: "Park Square"})
	a := seedArtist(t, s, model.Artist{Name: "Guns N Petals"})
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	seedShow(t, s, model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: start})
	kept := seedShow(t, s, model.Show{ArtistID: a.ID, VenueID: other.ID, StartTime: start})

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		return uow.Venues.Delete(ctx, v.ID)
	}))

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		_, err := uow.Venues.GetByID(ctx, v.ID)
		assert.ErrorIs(t, err, repository.ErrVenueNotFound)

		shows, err := uow.Shows.ListSchedule(ctx)
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, kept.ID, shows[0].ID)
		return nil
	}))

	err := s.Within(ctx, func(uow *repository.UnitOfWork) error {
		return uow.Venues.Delete(ctx, v.ID)
	})
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestArtistRepo_UpdateAndSearch(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	a := seedArtist(t, s, model.Artist{Name: "Matt Quevedo", Genres: "Jazz"})

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		a.City = "New York"
		a.SeekingVenue = true
		return uow.Artists.Update(ctx, &a)
	}))

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		got, err := uow.Artists.SearchByName(ctx, "quev")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "New York", got[0].City)
		assert.True(t, got[0].SeekingVenue)
		assert.Nil(t, got[0].Website)

		recent, err := uow.Artists.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, recent, 1)
		return nil
	}))
}

func TestShowRepo_CreateWithMissingVenueIsConstraintError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	a := seedArtist(t, s, model.Artist{Name: "Guns N Petals"})

	err := s.Within(ctx, func(uow *repository.UnitOfWork) error {
		return uow.Shows.Create(ctx, &model.Show{ArtistID: a.ID, VenueID: 42, StartTime: time.Now()})
	})
	require.Error(t, err)

	var ce *repository.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, repository.ForeignKey, ce.Kind)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestShowRepo_ListingsJoinVenueAndArtist(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	v := seedVenue(t, s, model.Venue{Name: "The Musical Hop", ImageLink: "venue.png"})
	a := seedArtist(t, s, model.Artist{Name: "Guns N Petals", ImageLink: "artist.png", Genres: "Rock n Roll"})
	late := time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)
	early := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	seedShow(t, s, model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: late})
	seedShow(t, s, model.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: early})

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		all, err := uow.Shows.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.True(t, early.Equal(all[0].StartTime))
		assert.Equal(t, "The Musical Hop", all[0].VenueName)
		assert.Equal(t, "artist.png", all[0].ArtistImageLink)
		assert.Equal(t, "Rock n Roll", all[0].ArtistGenres)

		byVenue, err := uow.Shows.ListByVenue(ctx, v.ID)
		require.NoError(t, err)
		assert.Len(t, byVenue, 2)

		byArtist, err := uow.Shows.ListByArtist(ctx, a.ID+1)
		require.NoError(t, err)
		assert.Empty(t, byArtist)
		return nil
	}))
}

func TestStore_WithinRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	boom := errors.New("boom")

	err := s.Within(ctx, func(uow *repository.UnitOfWork) error {
		require.NoError(t, uow.Venues.Create(ctx, &model.Venue{Name: "Ghost"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		all, err := uow.Venues.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		return nil
	}))
}

func TestStore_WithinRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	assert.Panics(t, func() {
		_ = s.Within(ctx, func(uow *repository.UnitOfWork) error {
			_ = uow.Venues.Create(ctx, &model.Venue{Name: "Ghost"})
			panic("boom")
		})
	})

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		all, err := uow.Venues.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		return nil
	}))
}

func TestSearchByName_FoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	seedVenue(t, s, model.Venue{Name: "Café Wha?"})
	seedVenue(t, s, model.Venue{Name: "The Musical Hop"})
	seedArtist(t, s, model.Artist{Name: "Björk Tribute"})

	require.NoError(t, s.Within(ctx, func(uow *repository.UnitOfWork) error {
		venues, err := uow.Venues.SearchByName(ctx, "CAFÉ")
		require.NoError(t, err)
		require.Len(t, venues, 1)
		assert.Equal(t, "Café Wha?", venues[0].Name)

		artists, err := uow.Artists.SearchByName(ctx, "BJÖRK")
		require.NoError(t, err)
		require.Len(t, artists, 1)
		return nil
	}))
}
