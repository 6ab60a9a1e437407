package model

// Artist represents a performer that can be booked at venues.  Genres are
// stored as a single comma separated string; splitting happens when a
// view is assembled.  This struct corresponds to a row in the `artists`
// table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the artist.
//  City, State        – home location.
//  Phone              – contact number.
//  Genres             – comma separated genre names, e.g. "Jazz,Funk".
//  ImageLink          – URL of the artist picture.
//  FacebookLink       – URL of the artist's Facebook page.
//  Website            – artist website (nullable).
//  SeekingVenue       – whether the artist is looking for venues.
//  SeekingDescription – free text shown when seeking venues (nullable).
type Artist struct {
	ID                 uint64  `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	City               string  `db:"city" json:"city"`
	State              string  `db:"state" json:"state"`
	Phone              string  `db:"phone" json:"phone"`
	Genres             string  `db:"genres" json:"genres"`
	ImageLink          string  `db:"image_link" json:"image_link"`
	FacebookLink       string  `db:"facebook_link" json:"facebook_link"`
	Website            *string `db:"website" json:"website"`
	SeekingVenue       bool    `db:"seeking_venue" json:"seeking_venue"`
	SeekingDescription *string `db:"seeking_description" json:"seeking_description"`
}
