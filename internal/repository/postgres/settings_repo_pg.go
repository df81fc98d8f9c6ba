package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

const settingsColumns = `id, agency_name, logo_url, contact_phone, whatsapp_number, support_email, address, instagram_url, facebook_url, twitter_url, youtube_url, updated_at`

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepo(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.AgencySettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM agency_settings WHERE id = $1`
	var settings domain.AgencySettings
	err := r.db.GetContext(ctx, &settings, query, domain.AgencySettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes only the supplied fields: on first call it creates the
// singleton row, afterwards it overwrites just the provided columns.
func (r *SettingsRepository) Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.AgencySettings, error) {
	fields := []struct {
		column string
		value  *string
	}{
		{"agency_name", patch.AgencyName},
		{"logo_url", patch.LogoURL},
		{"contact_phone", patch.ContactPhone},
		{"whatsapp_number", patch.WhatsappNumber},
		{"support_email", patch.SupportEmail},
		{"address", patch.Address},
		{"instagram_url", patch.InstagramURL},
		{"facebook_url", patch.FacebookURL},
		{"twitter_url", patch.TwitterURL},
		{"youtube_url", patch.YoutubeURL},
	}

	insertColumns := []string{"id"}
	placeholders := []string{"$1"}
	updateParts := []string{"updated_at = NOW()"}
	args := []any{int64(domain.AgencySettingsID)}

	for _, field := range fields {
		if field.value == nil {
			continue
		}
		args = append(args, *field.value)
		insertColumns = append(insertColumns, field.column)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		updateParts = append(updateParts, fmt.Sprintf("%s = EXCLUDED.%s", field.column, field.column))
	}

	query := fmt.Sprintf(`
		INSERT INTO agency_settings (%s)
		VALUES (%s)
		ON CONFLICT (id) DO UPDATE SET %s
		RETURNING %s`,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updateParts, ", "),
		settingsColumns)

	var settings domain.AgencySettings
	if err := r.db.GetContext(ctx, &settings, query, args...); err != nil {
		return nil, err
	}
	return &settings, nil
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)
