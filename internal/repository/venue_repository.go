package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	seeking_talent, seeking_description, website`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db querier
}

// NewVenueRepo constructs a VenueRepo on a pool or a transaction.
func NewVenueRepo(db querier) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue.  On success the venue's ID field is
// populated with the generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		seeking_talent, seeking_description, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink,
		v.SeekingTalent, v.SeekingDescription, v.Website)
	if err != nil {
		return classify("insert venue", err)
	}
	v.ID = id
	return nil
}

// GetByID fetches a venue by id.  It returns ErrVenueNotFound if no row
// is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	q := r.db.Rebind(`SELECT ` + venueColumns + ` FROM venues WHERE id = ?`)
	if err := r.db.QueryRowxContext(ctx, q, id).StructScan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, classify("get venue", err)
	}
	return &v, nil
}

// Exists reports whether a venue with id is stored.
func (r *VenueRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int
	q := r.db.Rebind(`SELECT COUNT(*) FROM venues WHERE id = ?`)
	if err := r.db.QueryRowxContext(ctx, q, id).Scan(&n); err != nil {
		return false, classify("check venue", err)
	}
	return n > 0, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	return r.list(ctx, "list venues", `SELECT `+venueColumns+` FROM venues ORDER BY id`)
}

// ListRecent returns the limit most recently created venues, newest first.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]model.Venue, error) {
	return r.list(ctx, "list recent venues", `SELECT `+venueColumns+` FROM venues ORDER BY id DESC LIMIT ?`, limit)
}

// SearchByName returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	if !foldsUnicode(r.db) {
		all, err := r.list(ctx, "search venues", `SELECT `+venueColumns+` FROM venues ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return filterByName(all, term, func(x model.Venue) string { return x.Name }), nil
	}
	return r.list(ctx, "search venues",
		`SELECT `+venueColumns+` FROM venues
		WHERE LOWER(name) LIKE LOWER(?) ESCAPE '`+likeEscape+`'
		ORDER BY id`, containsPattern(term))
}

func (r *VenueRepo) list(ctx context.Context, op, q string, args ...any) ([]model.Venue, error) {
	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	out := []model.Venue{}
	for rows.Next() {
		var v model.Venue
		if err := rows.StructScan(&v); err != nil {
			return nil, classify(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return out, nil
}

// Update writes every column of v.  MySQL only counts changed rows as
// affected, so a missing venue is not detected here; callers load the
// venue first.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
		SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		    facebook_link = ?, seeking_talent = ?, seeking_description = ?, website = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink,
		v.SeekingTalent, v.SeekingDescription, v.Website, v.ID)
	return classify("update venue", err)
}

// Delete removes a venue together with its shows.  It returns
// ErrVenueNotFound if the venue does not exist.  Run it inside a unit of
// work so that the two deletes commit together.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVenueNotFound
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM shows WHERE venue_id = ?`), id); err != nil {
		return classify("delete venue shows", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM venues WHERE id = ?`), id); err != nil {
		return classify("delete venue", err)
	}
	return nil
}
