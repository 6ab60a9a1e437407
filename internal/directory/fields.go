package directory

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueFields carries the submitted venue form.  A nil field was not part
// of the submission.
type VenueFields struct {
	Name               *string `json:"name" yaml:"name"`
	City               *string `json:"city" yaml:"city"`
	State              *string `json:"state" yaml:"state"`
	Address            *string `json:"address" yaml:"address"`
	Phone              *string `json:"phone" yaml:"phone"`
	ImageLink          *string `json:"image_link" yaml:"image_link"`
	FacebookLink       *string `json:"facebook_link" yaml:"facebook_link"`
	Website            *string `json:"website" yaml:"website"`
	SeekingTalent      *bool   `json:"seeking_talent" yaml:"seeking_talent"`
	SeekingDescription *string `json:"seeking_description" yaml:"seeking_description"`
}

// Apply copies every submitted field onto v.  Absent fields keep whatever
// v already holds, which is the zero value for a new record.
func (f VenueFields) Apply(v *model.Venue) {
	setString(&v.Name, f.Name)
	setString(&v.City, f.City)
	setString(&v.State, f.State)
	setString(&v.Address, f.Address)
	setString(&v.Phone, f.Phone)
	setString(&v.ImageLink, f.ImageLink)
	setString(&v.FacebookLink, f.FacebookLink)
	setOptional(&v.Website, f.Website)
	setOptional(&v.SeekingDescription, f.SeekingDescription)
	if f.SeekingTalent != nil {
		v.SeekingTalent = *f.SeekingTalent
	}
}

// ArtistFields carries the submitted artist form.  Genres is the list
// produced by a multi-select; it is stored joined by commas.
type ArtistFields struct {
	Name               *string   `json:"name" yaml:"name"`
	City               *string   `json:"city" yaml:"city"`
	State              *string   `json:"state" yaml:"state"`
	Phone              *string   `json:"phone" yaml:"phone"`
	Genres             *[]string `json:"genres" yaml:"genres"`
	ImageLink          *string   `json:"image_link" yaml:"image_link"`
	FacebookLink       *string   `json:"facebook_link" yaml:"facebook_link"`
	Website            *string   `json:"website" yaml:"website"`
	SeekingVenue       *bool     `json:"seeking_venue" yaml:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description" yaml:"seeking_description"`
}

func (f ArtistFields) Apply(a *model.Artist) {
	setString(&a.Name, f.Name)
	setString(&a.City, f.City)
	setString(&a.State, f.State)
	setString(&a.Phone, f.Phone)
	setString(&a.ImageLink, f.ImageLink)
	setString(&a.FacebookLink, f.FacebookLink)
	setOptional(&a.Website, f.Website)
	setOptional(&a.SeekingDescription, f.SeekingDescription)
	if f.Genres != nil {
		a.Genres = JoinGenres(*f.Genres)
	}
	if f.SeekingVenue != nil {
		a.SeekingVenue = *f.SeekingVenue
	}
}

// ShowFields is the raw show form.  Values stay strings until the service
// validates them.
type ShowFields struct {
	ArtistID  string `json:"artist_id" yaml:"artist_id"`
	VenueID   string `json:"venue_id" yaml:"venue_id"`
	StartTime string `json:"start_time" yaml:"start_time"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// setOptional stores a submitted blank value as NULL.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	s := strings.TrimSpace(*src)
	if s == "" {
		*dst = nil
		return
	}
	*dst = &s
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ErrBadStartTime is returned by ParseStartTime for unrecognised input.
var ErrBadStartTime = errors.New("must look like 2006-01-02 15:04:05")

// ParseStartTime reads a submitted start time.  Values without a zone are
// taken as UTC; the result is always in UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrBadStartTime
}

// ParseID reads a positive record id.
func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer")
	}
	return id, nil
}

// Ptr returns a pointer to v.  Handy for building field sets.
func Ptr[T any](v T) *T { return &v }
