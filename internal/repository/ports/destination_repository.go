package ports

import (
	"context"

	"github.com/tripveda/agency-backend/internal/domain"
)

type DestinationRepository interface {
	// ListByName returns every destination ordered by name ascending.
	ListByName(ctx context.Context) ([]domain.Destination, error)
	// ListRecent returns every destination ordered by creation time, newest
	// first. Used by the admin panel.
	ListRecent(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id int64) (*domain.Destination, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Destination, error)
	// CardsByIDs returns destination summary cards keyed by id for the given
	// distinct id set.
	CardsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationCard, error)
	// RefsByIDs returns trimmed destination refs keyed by id.
	RefsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationRef, error)
	Exists(ctx context.Context, id int64) (bool, error)
	NameByID(ctx context.Context, id int64) (string, error)
	Create(ctx context.Context, input domain.NewDestination) (*domain.Destination, error)
	// Update applies the provided patch. Returns sql.ErrNoRows when no
	// destination has the given id.
	Update(ctx context.Context, id int64, patch domain.DestinationPatch) (*domain.Destination, error)
	Delete(ctx context.Context, id int64) error
}
