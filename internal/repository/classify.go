package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// constraintColumns maps the named constraints created by the migrations
// onto the column they guard.
var constraintColumns = map[string]string{
	"fk_shows_artist": "shows.artist_id",
	"fk_shows_venue":  "shows.venue_id",
}

var mysqlConstraintName = regexp.MustCompile("CONSTRAINT `([^`]+)`")

// classify wraps err with op and converts driver errors into
// *ConstraintError or ErrUnavailable.  Sentinel errors of this package
// and sql.ErrNoRows pass through wrapped but otherwise untouched.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if ce := asConstraintError(err); ce != nil {
		return fmt.Errorf("%s: %w", op, ce)
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func asConstraintError(err error) *ConstraintError {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		kind := UnknownConstraint
		switch myErr.Number {
		case 1062:
			kind = Unique
		case 1451, 1452, 1216, 1217:
			kind = ForeignKey
		case 1048:
			kind = NotNull
		case 3819:
			kind = Check
		default:
			return nil
		}
		name := ""
		if m := mysqlConstraintName.FindStringSubmatch(myErr.Message); m != nil {
			name = m[1]
		}
		return &ConstraintError{Kind: kind, Constraint: columnFor(name), Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() != "23" {
			return nil
		}
		kind := UnknownConstraint
		switch pqErr.Code {
		case "23503":
			kind = ForeignKey
		case "23505":
			kind = Unique
		case "23502":
			kind = NotNull
		case "23514":
			kind = Check
		}
		name := pqErr.Constraint
		if name == "" && pqErr.Column != "" {
			name = pqErr.Table + "." + pqErr.Column
		}
		return &ConstraintError{Kind: kind, Constraint: columnFor(name), Err: err}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code&0xff != sqlite3.SQLITE_CONSTRAINT {
			return nil
		}
		kind := UnknownConstraint
		switch code {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			kind = ForeignKey
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			kind = Unique
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			kind = NotNull
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			kind = Check
		}
		// "NOT NULL constraint failed: shows.venue_id"
		name := ""
		const marker = "constraint failed: "
		if msg := liteErr.Error(); strings.LastIndex(msg, marker) >= 0 {
			if f := strings.Fields(msg[strings.LastIndex(msg, marker)+len(marker):]); len(f) > 0 {
				name = f[0]
			}
		}
		return &ConstraintError{Kind: kind, Constraint: columnFor(name), Err: err}
	}
	return nil
}

func columnFor(name string) string {
	if col, ok := constraintColumns[name]; ok {
		return col
	}
	return name
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN:
			return true
		}
	}
	return false
}
