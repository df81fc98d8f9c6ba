package ports

import (
	"context"

	"github.com/tripveda/agency-backend/internal/domain"
)

type PackageRepository interface {
	// List returns packages ordered featured-first then starting price
	// ascending, optionally filtered by destination.
	List(ctx context.Context, destinationID *int64) ([]domain.Package, error)
	// ListRecent returns every package ordered by creation time, newest
	// first.
	ListRecent(ctx context.Context) ([]domain.Package, error)
	FindByID(ctx context.Context, id int64) (*domain.Package, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameByID(ctx context.Context, id int64) (string, error)
	// HotelsByPackageIDs resolves the package-hotel join for the given
	// package ids in a single batched query, keyed by package id.
	HotelsByPackageIDs(ctx context.Context, packageIDs []int64) (map[int64][]domain.Hotel, error)
	Create(ctx context.Context, input domain.NewPackage) (*domain.Package, error)
	Update(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error)
	// AttachHotels inserts one join row per hotel id.
	AttachHotels(ctx context.Context, packageID int64, hotelIDs []int64) error
	// ReplaceHotels swaps the package's entire hotel set for the given one
	// inside a single transaction. An empty set clears all join rows.
	ReplaceHotels(ctx context.Context, packageID int64, hotelIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
