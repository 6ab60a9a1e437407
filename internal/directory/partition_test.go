package directory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestIsUpcoming(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"future", now.Add(time.Hour), true},
		{"past", now.Add(-time.Hour), false},
		{"exactly now is past", now, false},
		{"one nanosecond ahead", now.Add(time.Nanosecond), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directory.IsUpcoming(tt.start, now))
		})
	}
}

func TestPartition_EveryItemInExactlyOneBucket(t *testing.T) {
	shows := []model.Show{
		{ID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, StartTime: now.Add(24 * time.Hour)},
		{ID: 3, StartTime: now},
		{ID: 4, StartTime: now.Add(time.Minute)},
	}
	past, upcoming := directory.Partition(shows, func(s model.Show) time.Time { return s.StartTime }, now)

	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, []uint64{1, 3}, ids(past))
	assert.Equal(t, []uint64{2, 4}, ids(upcoming))
}

func TestPartition_EmptyInputGivesEmptyBuckets(t *testing.T) {
	past, upcoming := directory.Partition(nil, func(s model.Show) time.Time { return s.StartTime }, now)
	require.NotNil(t, past)
	require.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestCountUpcoming(t *testing.T) {
	shows := []model.Show{
		{VenueID: 1, ArtistID: 7, StartTime: now.Add(time.Hour)},
		{VenueID: 1, ArtistID: 8, StartTime: now.Add(2 * time.Hour)},
		{VenueID: 1, ArtistID: 7, StartTime: now.Add(-time.Hour)},
		{VenueID: 2, ArtistID: 7, StartTime: now.Add(-time.Hour)},
	}

	byVenue := directory.CountUpcoming(shows, now, directory.ByVenue)
	assert.Equal(t, 2, byVenue[1])
	assert.Equal(t, 0, byVenue[2])

	byArtist := directory.CountUpcoming(shows, now, directory.ByArtist)
	assert.Equal(t, 1, byArtist[7])
	assert.Equal(t, 1, byArtist[8])
}

func TestFormatStartTime_UsesUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2026, 5, 1, 7, 30, 0, 0, loc)
	assert.Equal(t, "2026-05-01T12:30:00Z", directory.FormatStartTime(ts))
}

func ids(shows []model.Show) []uint64 {
	out := make([]uint64, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.ID)
	}
	return out
}
