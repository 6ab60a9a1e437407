// Package directory holds the read-side logic of the booking directory:
// past/upcoming partitioning, per-record show counts, grouping venues by
// city and assembling the view-models rendered by the handlers.  Nothing
// here touches the database or the wall clock; callers pass "now" in.
package directory

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// DisplayTimeLayout is the layout used for start_time strings in views.
const DisplayTimeLayout = time.RFC3339

// IsUpcoming reports whether a show starting at start is still ahead of now.
// A show starting exactly at now is past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// Partition splits items into past and upcoming buckets using startOf to
// read each item's start time.  Every item ends up in exactly one bucket
// and the relative order of items is preserved.  Both returned slices are
// non-nil so that they encode as [] rather than null.
func Partition[T any](items []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(items))
	upcoming = make([]T, 0)
	for _, it := range items {
		if IsUpcoming(startOf(it), now) {
			upcoming = append(upcoming, it)
		} else {
			past = append(past, it)
		}
	}
	return past, upcoming
}

// CountUpcoming counts upcoming shows per key, where key picks the venue
// or artist id of a show.  Records with no upcoming shows are absent from
// the map, so lookups yield zero.
func CountUpcoming(shows []model.Show, now time.Time, key func(model.Show) uint64) map[uint64]int {
	out := make(map[uint64]int)
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			out[key(s)]++
		}
	}
	return out
}

// ByVenue and ByArtist are the two keys used with CountUpcoming.
func ByVenue(s model.Show) uint64  { return s.VenueID }
func ByArtist(s model.Show) uint64 { return s.ArtistID }

// FormatStartTime renders a show time for views, always in UTC.
func FormatStartTime(t time.Time) string {
	return t.UTC().Format(DisplayTimeLayout)
}
