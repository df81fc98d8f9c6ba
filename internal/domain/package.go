package domain

import "time"

type Package struct {
	ID            int64      `db:"id" json:"id"`
	DestinationID int64      `db:"destination_id" json:"destination_id"`
	Name          string     `db:"name" json:"name"`
	Slug          string     `db:"slug" json:"slug"`
	DurationDays  *int64     `db:"duration_days" json:"duration_days"`
	PriceFrom     *float64   `db:"price_from" json:"price_from"`
	Summary       *string    `db:"summary" json:"summary"`
	Highlights    StringList `db:"highlights" json:"highlights"`
	CoverImage    *string    `db:"cover_image" json:"cover_image"`
	IsFeatured    bool       `db:"is_featured" json:"is_featured"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// PackageWithHotels is a package payload carrying its joined hotel rows.
type PackageWithHotels struct {
	Package
	Hotels []Hotel `json:"hotels"`
}

// PackageListing is a public package listing row enriched with its
// destination card and joined hotels.
type PackageListing struct {
	Package
	Destination *DestinationCard `json:"destination"`
	Hotels      []Hotel          `json:"hotels"`
}

// PackageDetails is the get-by-id payload: the full destination row plus
// joined hotels.
type PackageDetails struct {
	Package
	Destination *Destination `json:"destination"`
	Hotels      []Hotel      `json:"hotels"`
}
