// Package service implements the request level operations of the booking
// directory.  Every operation runs inside exactly one unit of work; writes
// publish a listing event and purge the response cache once committed.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

// Invalidator drops cached responses after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(context.Context) error { return nil }

// HomeLimit is how many recent venues and artists the home page lists.
const HomeLimit = 10

// Directory is the entry point of every venue, artist and show operation.
type Directory struct {
	store *repository.Store
	now   func() time.Time
	pub   Publisher
	inv   Invalidator
	log   logrus.FieldLogger
}

// Option configures a Directory.
type Option func(*Directory)

// WithClock replaces time.Now, which decides what counts as upcoming.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

func WithPublisher(p Publisher) Option {
	return func(d *Directory) { d.pub = p }
}

func WithInvalidator(inv Invalidator) Option {
	return func(d *Directory) { d.inv = inv }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Directory) { d.log = log }
}

// NewDirectory builds a Directory on store.  Without options it uses the
// wall clock, publishes nothing and caches nothing.
func NewDirectory(store *repository.Store, opts ...Option) *Directory {
	d := &Directory{
		store: store,
		now:   time.Now,
		pub:   NopPublisher{},
		inv:   nopInvalidator{},
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ping reports whether the database answers.
func (d *Directory) Ping(ctx context.Context) error {
	return d.store.Ping(ctx)
}

// committed runs the side effects of a successful write.  Neither a
// failed publish nor a failed purge fails the request.
func (d *Directory) committed(ctx context.Context, kind queue.EventKind, id uint64, name string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()

	log := d.log.WithFields(logrus.Fields{"event": kind, "id": id})
	if err := d.inv.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("cache purge failed")
	}
	ev := queue.NewListingEvent(kind, id, name, d.now())
	if err := d.pub.Publish(ctx, ev); err != nil {
		log.WithError(err).Warn("publish listing event failed")
		return
	}
	log.Debug("listing event published")
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "is required")
	}
	return nil
}
