package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
	website, seeking_venue, seeking_description`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db querier
}

func NewArtistRepo(db querier) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and populates its ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
		website, seeking_venue, seeking_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.FacebookLink,
		a.Website, a.SeekingVenue, a.SeekingDescription)
	if err != nil {
		return classify("insert artist", err)
	}
	a.ID = id
	return nil
}

// GetByID fetches an artist by id or returns ErrArtistNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	q := r.db.Rebind(`SELECT ` + artistColumns + ` FROM artists WHERE id = ?`)
	if err := r.db.QueryRowxContext(ctx, q, id).StructScan(&a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, classify("get artist", err)
	}
	return &a, nil
}

func (r *ArtistRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int
	q := r.db.Rebind(`SELECT COUNT(*) FROM artists WHERE id = ?`)
	if err := r.db.QueryRowxContext(ctx, q, id).Scan(&n); err != nil {
		return false, classify("check artist", err)
	}
	return n > 0, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	return r.list(ctx, "list artists", `SELECT `+artistColumns+` FROM artists ORDER BY id`)
}

func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]model.Artist, error) {
	return r.list(ctx, "list recent artists", `SELECT `+artistColumns+` FROM artists ORDER BY id DESC LIMIT ?`, limit)
}

// SearchByName returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	if !foldsUnicode(r.db) {
		all, err := r.list(ctx, "search artists", `SELECT `+artistColumns+` FROM artists ORDER BY id`)
		if err != nil {
			return nil, err
		}
		return filterByName(all, term, func(x model.Artist) string { return x.Name }), nil
	}
	return r.list(ctx, "search artists",
		`SELECT `+artistColumns+` FROM artists
		WHERE LOWER(name) LIKE LOWER(?) ESCAPE '`+likeEscape+`'
		ORDER BY id`, containsPattern(term))
}

func (r *ArtistRepo) list(ctx context.Context, op, q string, args ...any) ([]model.Artist, error) {
	out := []model.Artist{}
	if err := sqlxSelect(ctx, r.db, &out, q, args...); err != nil {
		return nil, classify(op, err)
	}
	return out, nil
}

// Update writes every column of a.  See VenueRepo.Update.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
		SET name = ?, city = ?, state = ?, phone = ?, genres = ?, image_link = ?,
		    facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.FacebookLink,
		a.Website, a.SeekingVenue, a.SeekingDescription, a.ID)
	return classify("update artist", err)
}
