package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fyyur/internal/directory"
	"github.com/iliyamo/fyyur/internal/model"
)

func TestGroupByCity(t *testing.T) {
	venues := []model.Venue{
		{ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "Boston", State: "MA"},
		{ID: 2, Name: "Park Square Live", City: "Boston", State: "MA"},
	}
	upcoming := map[uint64]int{1: 2, 3: 1}

	areas := directory.GroupByCity(venues, upcoming)

	require.Len(t, areas, 2)
	assert.Equal(t, "Boston", areas[0].City)
	assert.Equal(t, "MA", areas[0].State)
	assert.False(t, areas[0].MixedStates)
	assert.Equal(t, []directory.VenueSummary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2},
		{ID: 2, Name: "Park Square Live", NumUpcomingShows: 0},
	}, areas[0].Venues)

	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, "NY", areas[1].State)
	assert.Equal(t, []directory.VenueSummary{
		{ID: 3, Name: "The Dueling Pianos Bar", NumUpcomingShows: 1},
	}, areas[1].Venues)
}

func TestGroupByCity_EachVenueInExactlyOneArea(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, City: "Austin", State: "TX"},
		{ID: 2, City: "Boston", State: "MA"},
		{ID: 3, City: "Austin", State: "TX"},
		{ID: 4, City: "Chicago", State: "IL"},
	}
	seen := map[uint64]int{}
	for _, a := range directory.GroupByCity(venues, nil) {
		for _, v := range a.Venues {
			seen[v.ID]++
		}
	}
	assert.Equal(t, map[uint64]int{1: 1, 2: 1, 3: 1, 4: 1}, seen)
}

func TestGroupByCity_DisagreeingStatesAreFlagged(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, City: "Portland", State: "OR"},
		{ID: 2, City: "Portland", State: "ME"},
	}
	areas := directory.GroupByCity(venues, nil)
	require.Len(t, areas, 1)
	assert.Equal(t, "ME", areas[0].State)
	assert.True(t, areas[0].MixedStates)
}

func TestGroupByCity_Empty(t *testing.T) {
	areas := directory.GroupByCity(nil, nil)
	require.NotNil(t, areas)
	assert.Empty(t, areas)
}
