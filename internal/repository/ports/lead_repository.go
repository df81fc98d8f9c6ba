package ports

import (
	"context"

	"github.com/tripveda/agency-backend/internal/domain"
)

type LeadRepository interface {
	Insert(ctx context.Context, input domain.NewLead) (*domain.Lead, error)
	// ListRecent returns leads newest first with destination and package
	// names resolved.
	ListRecent(ctx context.Context) ([]domain.LeadWithRefs, error)
}
