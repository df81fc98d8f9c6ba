package ports

import (
	"context"

	"github.com/tripveda/agency-backend/internal/domain"
)

type HotelRepository interface {
	// List returns hotels ordered by star rating descending then nightly
	// price ascending, optionally filtered by destination.
	List(ctx context.Context, destinationID *int64) ([]domain.Hotel, error)
	// ListRecent returns every hotel ordered by creation time, newest first.
	ListRecent(ctx context.Context) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, input domain.NewHotel) (*domain.Hotel, error)
	Update(ctx context.Context, id int64, patch domain.HotelPatch) (*domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
}
