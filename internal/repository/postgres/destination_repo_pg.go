package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

const destinationColumns = `id, name, slug, state, hero_image, short_description, long_description, best_time, created_at`

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) ListByName(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY name ASC`
	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) ListRecent(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY created_at DESC`
	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE slug = $1`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, slug); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) CardsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationCard, error) {
	cards := make(map[int64]domain.DestinationCard, len(ids))
	if len(ids) == 0 {
		return cards, nil
	}
	const query = `SELECT id, name, slug, state, hero_image FROM destinations WHERE id = ANY($1)`
	rows := make([]domain.DestinationCard, 0, len(ids))
	if err := r.db.SelectContext(ctx, &rows, query, pq.Int64Array(ids)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		cards[row.ID] = row
	}
	return cards, nil
}

func (r *DestinationRepository) RefsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationRef, error) {
	refs := make(map[int64]domain.DestinationRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	const query = `SELECT id, name, slug, state FROM destinations WHERE id = ANY($1)`
	rows := make([]domain.DestinationRef, 0, len(ids))
	if err := r.db.SelectContext(ctx, &rows, query, pq.Int64Array(ids)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		refs[row.ID] = row
	}
	return refs, nil
}

func (r *DestinationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM destinations WHERE id = $1)`, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *DestinationRepository) NameByID(ctx context.Context, id int64) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, `SELECT name FROM destinations WHERE id = $1`, id); err != nil {
		return "", err
	}
	return name, nil
}

func (r *DestinationRepository) Create(ctx context.Context, input domain.NewDestination) (*domain.Destination, error) {
	query := `
		INSERT INTO destinations (name, slug, state, hero_image, short_description, long_description, best_time)
		VALUES (:name, :slug, :state, :hero_image, :short_description, :long_description, :best_time)
		RETURNING ` + destinationColumns

	args := map[string]any{
		"name":              input.Name,
		"slug":              input.Slug,
		"state":             nullString(input.State),
		"hero_image":        nullString(input.HeroImage),
		"short_description": nullString(input.ShortDescription),
		"long_description":  nullString(input.LongDescription),
		"best_time":         nullString(input.BestTime),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var dest domain.Destination
		if err = rows.StructScan(&dest); err != nil {
			return nil, err
		}
		return &dest, nil
	}
	return nil, sql.ErrNoRows
}

func (r *DestinationRepository) Update(ctx context.Context, id int64, patch domain.DestinationPatch) (*domain.Destination, error) {
	setParts := make([]string, 0, 7)
	args := make([]any, 0, 8)

	addSet := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Slug != nil {
		addSet("slug", *patch.Slug)
	}
	if patch.State != nil {
		addSet("state", nullString(patch.State))
	}
	if patch.HeroImage != nil {
		addSet("hero_image", nullString(patch.HeroImage))
	}
	if patch.ShortDescription != nil {
		addSet("short_description", nullString(patch.ShortDescription))
	}
	if patch.LongDescription != nil {
		addSet("long_description", nullString(patch.LongDescription))
	}
	if patch.BestTime != nil {
		addSet("best_time", nullString(patch.BestTime))
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE destinations SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args)+1, destinationColumns)
	args = append(args, id)

	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, args...); err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
