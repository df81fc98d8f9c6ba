package domain

import "time"

const (
	LeadSourceWebsite = "website"

	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

type Lead struct {
	ID                  int64     `db:"id" json:"id"`
	FullName            string    `db:"full_name" json:"full_name"`
	Phone               string    `db:"phone" json:"phone"`
	Email               *string   `db:"email" json:"email"`
	PreferredTravelDate *string   `db:"preferred_travel_date" json:"preferred_travel_date"`
	Travellers          *int64    `db:"travellers" json:"travellers"`
	Budget              *float64  `db:"budget" json:"budget"`
	DestinationID       *int64    `db:"destination_id" json:"destination_id"`
	PackageID           *int64    `db:"package_id" json:"package_id"`
	Message             *string   `db:"message" json:"message"`
	Source              string    `db:"source" json:"source"`
	Status              string    `db:"status" json:"status"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}

// NamedRef carries just an id and display name, used when leads are listed
// with their destination and package names resolved.
type NamedRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type LeadWithRefs struct {
	Lead
	Destination *NamedRef `json:"destinations"`
	Package     *NamedRef `json:"packages"`
}
