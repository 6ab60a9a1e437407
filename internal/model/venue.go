package model

// Venue represents a bookable location that hosts shows.  A venue has
// many shows; the relation is held on the shows table.  This struct
// corresponds to a row in the `venues` table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name of the venue.
//  City, State        – location used to group venues on the listing page.
//  Address, Phone     – contact details.
//  ImageLink          – URL of the venue picture.
//  FacebookLink       – URL of the venue's Facebook page.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when seeking talent (nullable).
//  Website            – venue website (nullable).
type Venue struct {
	ID                 uint64  `db:"id" json:"id"`
	Name               string  `db:"name" json:"name"`
	City               string  `db:"city" json:"city"`
	State              string  `db:"state" json:"state"`
	Address            string  `db:"address" json:"address"`
	Phone              string  `db:"phone" json:"phone"`
	ImageLink          string  `db:"image_link" json:"image_link"`
	FacebookLink       string  `db:"facebook_link" json:"facebook_link"`
	SeekingTalent      bool    `db:"seeking_talent" json:"seeking_talent"`
	SeekingDescription *string `db:"seeking_description" json:"seeking_description"`
	Website            *string `db:"website" json:"website"`
}
