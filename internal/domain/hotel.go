package domain

import "time"

type Hotel struct {
	ID            int64      `db:"id" json:"id"`
	DestinationID int64      `db:"destination_id" json:"destination_id"`
	Name          string     `db:"name" json:"name"`
	Slug          string     `db:"slug" json:"slug"`
	StarRating    *float64   `db:"star_rating" json:"star_rating"`
	PricePerNight *float64   `db:"price_per_night" json:"price_per_night"`
	Summary       *string    `db:"summary" json:"summary"`
	Amenities     StringList `db:"amenities" json:"amenities"`
	Address       *string    `db:"address" json:"address"`
	CoverImage    *string    `db:"cover_image" json:"cover_image"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// HotelWithDestination is a public hotel listing row enriched with its
// destination summary.
type HotelWithDestination struct {
	Hotel
	Destination *DestinationRef `json:"destination"`
}
