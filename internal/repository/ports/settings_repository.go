package ports

import (
	"context"

	"github.com/tripveda/agency-backend/internal/domain"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, or nil when it has not been
	// created yet.
	Get(ctx context.Context) (*domain.AgencySettings, error)
	// Upsert writes the patch into the fixed singleton row, creating it on
	// first call.
	Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.AgencySettings, error)
}
