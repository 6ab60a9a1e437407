package model

import "time"

// Show represents one artist playing one venue at a specific time.
// Shows are created only; there is no update or delete path apart from
// the cascade that runs when a venue is deleted.
//
// Fields:
//  ID        – primary key identifier.
//  StartTime – when the show begins, stored in UTC.
//  ArtistID  – artist performing (must reference artists.id).
//  VenueID   – venue hosting the show (must reference venues.id).
type Show struct {
	ID        uint64    `db:"id" json:"id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	ArtistID  uint64    `db:"artist_id" json:"artist_id"`
	VenueID   uint64    `db:"venue_id" json:"venue_id"`
}

// ShowListing is a show joined with its venue and artist.  It is the read
// model behind the shows page and both detail pages.
type ShowListing struct {
	ShowID          uint64    `db:"show_id"`
	StartTime       time.Time `db:"start_time"`
	VenueID         uint64    `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	ArtistID        uint64    `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	ArtistGenres    string    `db:"artist_genres"`
}
