package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// querier is satisfied by both *sqlx.DB and *sqlx.Tx, so a repository can
// run on the pool or inside a unit of work.
type querier = sqlx.ExtContext

// insertID runs an INSERT and returns the generated id.  MySQL reports
// it through LastInsertId; PostgreSQL and SQLite use RETURNING.
func insertID(ctx context.Context, q querier, query string, args ...any) (uint64, error) {
	if q.DriverName() == "mysql" {
		res, err := q.ExecContext(ctx, q.Rebind(query), args...)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		return uint64(id), nil
	}
	var id uint64
	if err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// likeEscape is the escape character used by every substring search.
const likeEscape = "!"

// containsPattern turns a user search term into a LIKE pattern that
// matches it as a literal substring.
func containsPattern(term string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(term) + "%"
}

// sqlxSelect rebinds q for the driver and scans all rows into dest.
func sqlxSelect(ctx context.Context, q querier, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}

// foldsUnicode reports whether the driver's LOWER() folds non-ASCII
// letters.  SQLite's built-in LOWER only folds ASCII.
func foldsUnicode(q querier) bool {
	return q.DriverName() != "sqlite"
}

// filterByName keeps, in order, the items whose name contains term under
// Unicode lower casing.
func filterByName[T any](items []T, term string, name func(T) string) []T {
	term = strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(name(it)), term) {
			out = append(out, it)
		}
	}
	return out
}
