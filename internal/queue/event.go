// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// ActivityQueueName is the durable queue listing events are published to.
const ActivityQueueName = "listing.activity"

// EventKind names what happened to a listing.
type EventKind string

const (
	VenueCreated  EventKind = "venue.created"
	VenueUpdated  EventKind = "venue.updated"
	VenueDeleted  EventKind = "venue.deleted"
	ArtistCreated EventKind = "artist.created"
	ArtistUpdated EventKind = "artist.updated"
	ShowCreated   EventKind = "show.created"
)

// ListingEvent is published after a write to the directory commits.  It
// carries enough for downstream consumers to log or notify without
// querying the primary database.
type ListingEvent struct {
	EventID    string    `json:"event_id"`
	Kind       EventKind `json:"kind"`
	EntityID   uint64    `json:"entity_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewListingEvent stamps an event with a fresh id.
func NewListingEvent(kind EventKind, id uint64, name string, at time.Time) ListingEvent {
	return ListingEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		EntityID:   id,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}
