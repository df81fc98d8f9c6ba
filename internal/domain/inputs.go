package domain

import "database/sql"

// Create inputs and patch shapes shared by the admin services and the
// Postgres repositories. Patch fields are pointers: nil means the field was
// not supplied and must be left untouched; sql.Null* values carry an
// explicit "set to NULL" alongside real values.

type NewDestination struct {
	Name             string
	Slug             string
	State            *string
	HeroImage        *string
	ShortDescription *string
	LongDescription  *string
	BestTime         *string
}

type DestinationPatch struct {
	Name             *string
	Slug             *string
	State            *string
	HeroImage        *string
	ShortDescription *string
	LongDescription  *string
	BestTime         *string
}

func (p DestinationPatch) Empty() bool {
	return p.Name == nil && p.Slug == nil && p.State == nil && p.HeroImage == nil &&
		p.ShortDescription == nil && p.LongDescription == nil && p.BestTime == nil
}

type NewHotel struct {
	DestinationID int64
	Name          string
	Slug          string
	StarRating    *float64
	PricePerNight *float64
	Summary       *string
	Amenities     StringList
	Address       *string
	CoverImage    *string
}

type HotelPatch struct {
	DestinationID *int64
	Name          *string
	Slug          *string
	StarRating    *sql.NullFloat64
	PricePerNight *sql.NullFloat64
	Summary       *string
	Amenities     *StringList
	Address       *string
	CoverImage    *string
}

func (p HotelPatch) Empty() bool {
	return p.DestinationID == nil && p.Name == nil && p.Slug == nil && p.StarRating == nil &&
		p.PricePerNight == nil && p.Summary == nil && p.Amenities == nil &&
		p.Address == nil && p.CoverImage == nil
}

type NewPackage struct {
	DestinationID int64
	Name          string
	Slug          string
	DurationDays  *int64
	PriceFrom     *float64
	Summary       *string
	Highlights    StringList
	CoverImage    *string
	IsFeatured    bool
}

type PackagePatch struct {
	DestinationID *int64
	Name          *string
	Slug          *string
	DurationDays  *sql.NullInt64
	PriceFrom     *sql.NullFloat64
	Summary       *string
	Highlights    *StringList
	CoverImage    *string
	IsFeatured    *bool
}

func (p PackagePatch) Empty() bool {
	return p.DestinationID == nil && p.Name == nil && p.Slug == nil && p.DurationDays == nil &&
		p.PriceFrom == nil && p.Summary == nil && p.Highlights == nil &&
		p.CoverImage == nil && p.IsFeatured == nil
}

type NewLead struct {
	FullName            string
	Phone               string
	Email               *string
	PreferredTravelDate *string
	Travellers          *int64
	Budget              *float64
	DestinationID       *int64
	PackageID           *int64
	Message             *string
	Source              string
	Status              string
}

type SettingsPatch struct {
	AgencyName     *string
	LogoURL        *string
	ContactPhone   *string
	WhatsappNumber *string
	SupportEmail   *string
	Address        *string
	InstagramURL   *string
	FacebookURL    *string
	TwitterURL     *string
	YoutubeURL     *string
}
