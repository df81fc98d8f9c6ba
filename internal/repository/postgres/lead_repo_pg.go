package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

const leadColumns = `id, full_name, phone, email, preferred_travel_date, travellers, budget, destination_id, package_id, message, source, status, created_at`

type LeadRepository struct {
	db *sqlx.DB
}

func NewLeadRepo(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Insert(ctx context.Context, input domain.NewLead) (*domain.Lead, error) {
	query := `
		INSERT INTO leads (full_name, phone, email, preferred_travel_date, travellers, budget,
		                   destination_id, package_id, message, source, status)
		VALUES (:full_name, :phone, :email, :preferred_travel_date, :travellers, :budget,
		        :destination_id, :package_id, :message, :source, :status)
		RETURNING ` + leadColumns

	args := map[string]any{
		"full_name":             input.FullName,
		"phone":                 input.Phone,
		"email":                 nullString(input.Email),
		"preferred_travel_date": nullString(input.PreferredTravelDate),
		"travellers":            nullInt(input.Travellers),
		"budget":                nullFloat(input.Budget),
		"destination_id":        nullInt(input.DestinationID),
		"package_id":            nullInt(input.PackageID),
		"message":               nullString(input.Message),
		"source":                input.Source,
		"status":                input.Status,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var lead domain.Lead
		if err = rows.StructScan(&lead); err != nil {
			return nil, err
		}
		return &lead, nil
	}
	return nil, sql.ErrNoRows
}

type leadListRow struct {
	domain.Lead
	DestRefID   sql.NullInt64  `db:"dest_ref_id"`
	DestRefName sql.NullString `db:"dest_ref_name"`
	PkgRefID    sql.NullInt64  `db:"pkg_ref_id"`
	PkgRefName  sql.NullString `db:"pkg_ref_name"`
}

func (r *LeadRepository) ListRecent(ctx context.Context) ([]domain.LeadWithRefs, error) {
	const query = `
		SELECT l.id, l.full_name, l.phone, l.email, l.preferred_travel_date, l.travellers,
		       l.budget, l.destination_id, l.package_id, l.message, l.source, l.status, l.created_at,
		       d.id AS dest_ref_id, d.name AS dest_ref_name,
		       p.id AS pkg_ref_id, p.name AS pkg_ref_name
		FROM leads l
		LEFT JOIN destinations d ON d.id = l.destination_id
		LEFT JOIN packages p ON p.id = l.package_id
		ORDER BY l.created_at DESC`

	rows := make([]leadListRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	leads := make([]domain.LeadWithRefs, 0, len(rows))
	for _, row := range rows {
		item := domain.LeadWithRefs{Lead: row.Lead}
		if row.DestRefID.Valid {
			item.Destination = &domain.NamedRef{ID: row.DestRefID.Int64, Name: row.DestRefName.String}
		}
		if row.PkgRefID.Valid {
			item.Package = &domain.NamedRef{ID: row.PkgRefID.Int64, Name: row.PkgRefName.String}
		}
		leads = append(leads, item)
	}
	return leads, nil
}

var _ ports.LeadRepository = (*LeadRepository)(nil)
