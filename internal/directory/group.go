package directory

import (
	"sort"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueSummary is a venue as listed under its city.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is one city bucket on the venues page.
//
// State is taken from the last venue of the city in id order.  Venues of
// one city are not required to agree on a state; when they do not,
// MixedStates is set so the inconsistency stays visible.
type Area struct {
	City        string         `json:"city"`
	State       string         `json:"state"`
	Venues      []VenueSummary `json:"venues"`
	MixedStates bool           `json:"mixed_states,omitempty"`
}

// GroupByCity buckets venues by city.  Areas are ordered by city name and
// venues inside an area by id.  upcoming maps venue id to the number of
// upcoming shows, as produced by CountUpcoming.
func GroupByCity(venues []model.Venue, upcoming map[uint64]int) []Area {
	sorted := make([]model.Venue, len(venues))
	copy(sorted, venues)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	index := make(map[string]int)
	areas := make([]Area, 0)
	for _, v := range sorted {
		i, ok := index[v.City]
		if !ok {
			i = len(areas)
			index[v.City] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []VenueSummary{}})
		}
		a := &areas[i]
		if a.State != v.State {
			a.MixedStates = true
		}
		a.State = v.State
		a.Venues = append(a.Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	sort.SliceStable(areas, func(i, j int) bool { return areas[i].City < areas[j].City })
	return areas
}
