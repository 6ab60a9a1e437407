package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// UnitOfWork groups the repositories bound to one transaction.  It is
// only valid inside the Store.Within callback that produced it.
type UnitOfWork struct {
	Venues  *VenueRepo
	Artists *ArtistRepo
	Shows   *ShowRepo
}

// Store hands out units of work on a connection pool.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Within runs fn in a fresh transaction.  The transaction is committed
// once if fn returns nil and rolled back once otherwise, including when
// fn panics.  A failed rollback is joined onto fn's error.
func (s *Store) Within(ctx context.Context, fn func(uow *UnitOfWork) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return classify("begin transaction", err)
	}
	done := false
	defer func() {
		if done {
			return
		}
		// fn panicked
		_ = tx.Rollback()
	}()

	uow := &UnitOfWork{
		Venues:  NewVenueRepo(tx),
		Artists: NewArtistRepo(tx),
		Shows:   NewShowRepo(tx),
	}
	if ferr := fn(uow); ferr != nil {
		done = true
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(ferr, fmt.Errorf("rollback: %w", rbErr))
		}
		return ferr
	}
	done = true
	if cerr := tx.Commit(); cerr != nil {
		return classify("commit", cerr)
	}
	return nil
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return classify("ping", s.db.PingContext(ctx))
}
