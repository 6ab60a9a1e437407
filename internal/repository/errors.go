// Package repository defines the data access layer and the error types
// that are reused across repositories.  These values allow higher layers
// such as the service and the handlers to distinguish between different
// failure scenarios without looking at driver specific errors.  For
// example, ErrVenueNotFound indicates that the requested venue does not
// exist, while a *ConstraintError signals that the database refused a
// write because it would break referential integrity.
package repository

import (
	"errors"
	"fmt"
)

// ErrVenueNotFound is returned when a venue cannot be found in the DB.
// Handlers should translate this into an HTTP 404 response.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when an artist cannot be found in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ErrConflict is matched by every *ConstraintError.  Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrUnavailable marks failures to reach the database at all: refused or
// dropped connections and timeouts.  Handlers should translate this into
// an HTTP 503 response.
var ErrUnavailable = errors.New("database unavailable")

// ConstraintKind names the family of a violated constraint.
type ConstraintKind string

const (
	ForeignKey        ConstraintKind = "foreign_key"
	Unique            ConstraintKind = "unique"
	NotNull           ConstraintKind = "not_null"
	Check             ConstraintKind = "check"
	UnknownConstraint ConstraintKind = "unknown"
)

// ConstraintError reports a write rejected by a database constraint.
// Constraint holds the violated column (e.g. "shows.venue_id") when it
// could be determined, otherwise the raw constraint name or "".
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return fmt.Sprintf("%s constraint violated", e.Kind)
	}
	return fmt.Sprintf("%s constraint violated on %s", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrConflict) match any constraint failure.
func (e *ConstraintError) Is(target error) bool { return target == ErrConflict }
