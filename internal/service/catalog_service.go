package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

// CatalogService assembles the public, read-only views of the catalog.
// Nothing here mutates state; every call re-reads from the store.
type CatalogService struct {
	destinations ports.DestinationRepository
	packages     ports.PackageRepository
	hotels       ports.HotelRepository
	settings     ports.SettingsRepository
}

func NewCatalogService(destRepo ports.DestinationRepository, pkgRepo ports.PackageRepository, hotelRepo ports.HotelRepository, settingsRepo ports.SettingsRepository) *CatalogService {
	return &CatalogService{
		destinations: destRepo,
		packages:     pkgRepo,
		hotels:       hotelRepo,
		settings:     settingsRepo,
	}
}

func (s *CatalogService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.ListByName(ctx)
}

// DestinationDetails is a destination with its packages (each carrying its
// own hotel list) and hotels attached.
type DestinationDetails struct {
	domain.Destination
	Packages []domain.PackageWithHotels `json:"packages"`
	Hotels   []domain.Hotel             `json:"hotels"`
}

// GetDestination resolves a numeric path segment as an id and anything else
// as a slug, then assembles the nested detail payload. Packages and hotels
// are fetched in parallel; each package's hotel list comes from one batched
// join query over the full package id set.
func (s *CatalogService) GetDestination(ctx context.Context, idOrSlug string) (*DestinationDetails, error) {
	var (
		dest *domain.Destination
		err  error
	)
	if id, numeric := parseNumericSegment(idOrSlug); numeric {
		dest, err = s.destinations.FindByID(ctx, id)
	} else {
		dest, err = s.destinations.FindBySlug(ctx, idOrSlug)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		packages []domain.Package
		hotels   []domain.Hotel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		packages, err = s.packages.List(gctx, &dest.ID)
		return err
	})
	g.Go(func() error {
		var err error
		hotels, err = s.hotels.List(gctx, &dest.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	joined, err := s.packages.HotelsByPackageIDs(ctx, packageIDs(packages))
	if err != nil {
		return nil, err
	}

	details := &DestinationDetails{
		Destination: *dest,
		Packages:    make([]domain.PackageWithHotels, 0, len(packages)),
		Hotels:      hotels,
	}
	for _, pkg := range packages {
		details.Packages = append(details.Packages, domain.PackageWithHotels{
			Package: pkg,
			Hotels:  hotelsOrEmpty(joined[pkg.ID]),
		})
	}
	return details, nil
}

// ListPackages returns package listings enriched with their destination card
// and joined hotels. The destination cards come from one batched query over
// the distinct destination ids in the result set.
func (s *CatalogService) ListPackages(ctx context.Context, destinationID *int64) ([]domain.PackageListing, error) {
	packages, err := s.packages.List(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	var (
		cards  map[int64]domain.DestinationCard
		joined map[int64][]domain.Hotel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.destinations.CardsByIDs(gctx, destinationIDsOfPackages(packages))
		return err
	})
	g.Go(func() error {
		var err error
		joined, err = s.packages.HotelsByPackageIDs(gctx, packageIDs(packages))
		return err
	})
	if err := g.Wait(); err != nil {
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

// GetPackage returns a package enriched with its full destination row and
// joined hotels.
func (s *CatalogService) GetPackage(ctx context.Context, id int64) (*domain.PackageDetails, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		dest   *domain.Destination
		joined map[int64][]domain.Hotel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.destinations.FindByID(gctx, pkg.DestinationID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		dest = found
		return err
	})
	g.Go(func() error {
		var err error
		joined, err = s.packages.HotelsByPackageIDs(gctx, []int64{pkg.ID})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PackageDetails{
		Package:     *pkg,
		Destination: dest,
		Hotels:      hotelsOrEmpty(joined[pkg.ID]),
	}, nil
}

// ListHotels returns hotels enriched with a trimmed destination summary,
// resolved through one batched query over the distinct destination ids.
func (s *CatalogService) ListHotels(ctx context.Context, destinationID *int64) ([]domain.HotelWithDestination, error) {
	hotels, err := s.hotels.List(ctx, destinationID)
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

// GetSettings returns the singleton settings row, or nil when none exists
// yet. Absence is not an error.
func (s *CatalogService) GetSettings(ctx context.Context) (*domain.AgencySettings, error) {
	return s.settings.Get(ctx)
}

func packageIDs(packages []domain.Package) []int64 {
	ids := make([]int64, 0, len(packages))
	for _, pkg := range packages {
		ids = append(ids, pkg.ID)
	}
	return ids
}

func destinationIDsOfPackages(packages []domain.Package) []int64 {
	ids := make([]int64, 0, len(packages))
	seen := make(map[int64]bool, len(packages))
	for _, pkg := range packages {
		if !seen[pkg.DestinationID] {
			seen[pkg.DestinationID] = true
			ids = append(ids, pkg.DestinationID)
		}
	}
	return ids
}

func hotelsOrEmpty(hotels []domain.Hotel) []domain.Hotel {
	if hotels == nil {
		return []domain.Hotel{}
	}
	return hotels
}

func parseNumericSegment(segment string) (int64, bool) {
	if segment == "" {
		return 0, false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
