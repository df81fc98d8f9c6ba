package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

// AdminService owns every content mutation: destination/hotel/package CRUD,
// the package-hotel join reconciliation, the settings upsert, and the admin
// listings.
type AdminService struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	hotels       ports.HotelRepository
	leads        ports.LeadRepository
	settings     ports.SettingsRepository
}

func NewAdminService(destRepo ports.DestinationRepository, pkgRepo ports.PackageRepository, hotelRepo ports.HotelRepository, leadRepo ports.LeadRepository, settingsRepo ports.SettingsRepository) *AdminService {
	return &AdminService{
		destinations: destRepo,
		packages:     pkgRepo,
		hotels:       hotelRepo,
		leads:        leadRepo,
		settings:     settingsRepo,
	}
}

// Destinations

func (s *AdminService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.ListRecent(ctx)
}

func (s *AdminService) CreateDestination(ctx context.Context, input domain.NewDestination) (*domain.Destination, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, validation("name and slug are required.")
	}
	return s.destinations.Create(ctx, input)
}

func (s *AdminService) UpdateDestination(ctx context.Context, id int64, patch domain.DestinationPatch) (*domain.Destination, error) {
	if patch.Empty() {
		return nil, validation("No fields provided for update.")
	}
	dest, err := s.destinations.Update(ctx, id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	return dest, err
}

// DeleteDestination hard-deletes the row. Dependent packages and hotels are
// removed by the store's ON DELETE CASCADE constraints, not by application
// code.
func (s *AdminService) DeleteDestination(ctx context.Context, id int64) error {
	exists, err := s.destinations.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrDestinationNotFound
	}
	return s.destinations.Delete(ctx, id)
}

// Hotels

func (s *AdminService) ListHotels(ctx context.Context) ([]domain.HotelWithDestination, error) {
	hotels, err := s.hotels.ListRecent(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(hotels))
	seen := make(map[int64]bool, len(hotels))
	for _, hotel := range hotels {
		if !seen[hotel.DestinationID] {
			seen[hotel.DestinationID] = true
			ids = append(ids, hotel.DestinationID)
		}
	}
	refs, err := s.destinations.RefsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.HotelWithDestination, 0, len(hotels))
	for _, hotel := range hotels {
		listing := domain.HotelWithDestination{Hotel: hotel}
		if ref, ok := refs[hotel.DestinationID]; ok {
			listing.Destination = &ref
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (s *AdminService) CreateHotel(ctx context.Context, input domain.NewHotel) (*domain.Hotel, error) {
	if input.Name == "" || input.Slug == "" || input.DestinationID <= 0 {
		return nil, validation("name, slug and destination_id are required for hotels.")
	}
	return s.hotels.Create(ctx, input)
}

func (s *AdminService) UpdateHotel(ctx context.Context, id int64, patch domain.HotelPatch) (*domain.Hotel, error) {
	if patch.Empty() {
		return nil, validation("No fields provided for update.")
	}
	hotel, err := s.hotels.Update(ctx, id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	return hotel, err
}

func (s *AdminService) DeleteHotel(ctx context.Context, id int64) error {
	exists, err := s.hotels.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrHotelNotFound
	}
	return s.hotels.Delete(ctx, id)
}

// Packages

func (s *AdminService) ListPackages(ctx context.Context) ([]domain.PackageListing, error) {
	packages, err := s.packages.ListRecent(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := s.destinations.CardsByIDs(ctx, destinationIDsOfPackages(packages))
	if err != nil {
		return nil, err
	}
	joined, err := s.packages.HotelsByPackageIDs(ctx, packageIDs(packages))
	if err != nil {
		return nil, err
	}

	listings := make([]domain.PackageListing, 0, len(packages))
	for _, pkg := range packages {
		listing := domain.PackageListing{
			Package: pkg,
			Hotels:  hotelsOrEmpty(joined[pkg.ID]),
		}
		if card, ok := cards[pkg.DestinationID]; ok {
			listing.Destination = &card
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// CreatePackage inserts the package, attaches the supplied hotel ids, then
// re-fetches the package with its hotel list so the response reflects what
// the store actually holds.
func (s *AdminService) CreatePackage(ctx context.Context, input domain.NewPackage, hotelIDs []int64) (*domain.PackageWithHotels, error) {
	if input.Name == "" || input.Slug == "" || input.DestinationID <= 0 {
		return nil, validation("name, slug and destination_id are required for packages.")
	}

	pkg, err := s.packages.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(hotelIDs) > 0 {
		if err := s.packages.AttachHotels(ctx, pkg.ID, hotelIDs); err != nil {
			return nil, err
		}
	}
	return s.packageWithHotels(ctx, pkg.ID)
}

// UpdatePackage applies the scalar patch when at least one field is present
// and, independently, replaces the package's entire hotel set when hotelIDs
// is non-nil. A nil hotelIDs leaves the join rows untouched; an empty,
// non-nil list clears them. Subsets are never merged: the caller always
// supplies the full desired set.
func (s *AdminService) UpdatePackage(ctx context.Context, id int64, patch domain.PackagePatch, hotelIDs []int64, replaceHotels bool) (*domain.PackageWithHotels, error) {
	if patch.Empty() && !replaceHotels {
		return nil, validation("No fields provided for update.")
	}

	if !patch.Empty() {
		if _, err := s.packages.Update(ctx, id, patch); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrPackageNotFound
			}
			return nil, err
		}
	} else {
		exists, err := s.packages.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrPackageNotFound
		}
	}

	if replaceHotels {
		if err := s.packages.ReplaceHotels(ctx, id, hotelIDs); err != nil {
			return nil, err
		}
	}

	return s.packageWithHotels(ctx, id)
}

func (s *AdminService) DeletePackage(ctx context.Context, id int64) error {
	exists, err := s.packages.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPackageNotFound
	}
	return s.packages.Delete(ctx, id)
}

func (s *AdminService) packageWithHotels(ctx context.Context, id int64) (*domain.PackageWithHotels, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}
	joined, err := s.packages.HotelsByPackageIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return &domain.PackageWithHotels{
		Package: *pkg,
		Hotels:  hotelsOrEmpty(joined[id]),
	}, nil
}

// Leads and settings

func (s *AdminService) ListLeads(ctx context.Context) ([]domain.LeadWithRefs, error) {
	return s.leads.ListRecent(ctx)
}

func (s *AdminService) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.AgencySettings, error) {
	return s.settings.Upsert(ctx, patch)
}
