package domain

import "time"

type Destination struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Slug             string    `db:"slug" json:"slug"`
	State            *string   `db:"state" json:"state"`
	HeroImage        *string   `db:"hero_image" json:"hero_image"`
	ShortDescription *string   `db:"short_description" json:"short_description"`
	LongDescription  *string   `db:"long_description" json:"long_description"`
	BestTime         *string   `db:"best_time" json:"best_time"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// DestinationCard is the summary attached to package listings.
type DestinationCard struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Slug      string  `db:"slug" json:"slug"`
	State     *string `db:"state" json:"state"`
	HeroImage *string `db:"hero_image" json:"hero_image"`
}

// DestinationRef is the trimmed summary attached to hotel listings.
type DestinationRef struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Slug  string  `db:"slug" json:"slug"`
	State *string `db:"state" json:"state"`
}
