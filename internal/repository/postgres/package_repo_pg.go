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

const packageColumns = `id, destination_id, name, slug, duration_days, price_from, summary, highlights, cover_image, is_featured, created_at`

type PackageRepository struct {
	db *sqlx.DB
}

func NewPackageRepo(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) List(ctx context.Context, destinationID *int64) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages`
	args := make([]any, 0, 1)
	if destinationID != nil {
		query += ` WHERE destination_id = $1`
		args = append(args, *destinationID)
	}
	query += ` ORDER BY is_featured DESC, price_from ASC NULLS LAST`

	packages := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepository) ListRecent(ctx context.Context) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`
	packages := make([]domain.Package, 0)
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM packages WHERE id = $1)`, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PackageRepository) NameByID(ctx context.Context, id int64) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, `SELECT name FROM packages WHERE id = $1`, id); err != nil {
		return "", err
	}
	return name, nil
}

type packageHotelRow struct {
	PackageID int64 `db:"package_id"`
	domain.Hotel
}

func (r *PackageRepository) HotelsByPackageIDs(ctx context.Context, packageIDs []int64) (map[int64][]domain.Hotel, error) {
	result := make(map[int64][]domain.Hotel, len(packageIDs))
	if len(packageIDs) == 0 {
		return result, nil
	}

	const query = `
		SELECT ph.package_id, h.id, h.destination_id, h.name, h.slug, h.star_rating,
		       h.price_per_night, h.summary, h.amenities, h.address, h.cover_image, h.created_at
		FROM package_hotels ph
		JOIN hotels h ON h.id = ph.hotel_id
		WHERE ph.package_id = ANY($1)
		ORDER BY ph.package_id, h.star_rating DESC NULLS LAST, h.price_per_night ASC`

	rows := make([]packageHotelRow, 0)
	if err := r.db.SelectContext(ctx, &rows, query, pq.Int64Array(packageIDs)); err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.PackageID] = append(result[row.PackageID], row.Hotel)
	}
	return result, nil
}

func (r *PackageRepository) Create(ctx context.Context, input domain.NewPackage) (*domain.Package, error) {
	query := `
		INSERT INTO packages (destination_id, name, slug, duration_days, price_from, summary, highlights, cover_image, is_featured)
		VALUES (:destination_id, :name, :slug, :duration_days, :price_from, :summary, :highlights, :cover_image, :is_featured)
		RETURNING ` + packageColumns

	highlights := input.Highlights
	if highlights == nil {
		highlights = domain.StringList{}
	}

	args := map[string]any{
		"destination_id": input.DestinationID,
		"name":           input.Name,
		"slug":           input.Slug,
		"duration_days":  nullInt(input.DurationDays),
		"price_from":     nullFloat(input.PriceFrom),
		"summary":        nullString(input.Summary),
		"highlights":     highlights,
		"cover_image":    nullString(input.CoverImage),
		"is_featured":    input.IsFeatured,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var pkg domain.Package
		if err = rows.StructScan(&pkg); err != nil {
			return nil, err
		}
		return &pkg, nil
	}
	return nil, sql.ErrNoRows
}

func (r *PackageRepository) Update(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 10)

	addSet := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if patch.DestinationID != nil {
		addSet("destination_id", *patch.DestinationID)
	}
	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Slug != nil {
		addSet("slug", *patch.Slug)
	}
	if patch.DurationDays != nil {
		addSet("duration_days", *patch.DurationDays)
	}
	if patch.PriceFrom != nil {
		addSet("price_from", *patch.PriceFrom)
	}
	if patch.Summary != nil {
		addSet("summary", nullString(patch.Summary))
	}
	if patch.Highlights != nil {
		addSet("highlights", *patch.Highlights)
	}
	if patch.CoverImage != nil {
		addSet("cover_image", nullString(patch.CoverImage))
	}
	if patch.IsFeatured != nil {
		addSet("is_featured", *patch.IsFeatured)
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE packages SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args)+1, packageColumns)
	args = append(args, id)

	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, args...); err != nil {
		return nil, err
	}
	return &pkg, nil
}

const attachHotelsQuery = `
	INSERT INTO package_hotels (package_id, hotel_id)
	SELECT $1, unnest($2::bigint[])
	ON CONFLICT (package_id, hotel_id) DO NOTHING`

func (r *PackageRepository) AttachHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	if len(hotelIDs) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, attachHotelsQuery, packageID, pq.Int64Array(hotelIDs))
	return err
}

// ReplaceHotels swaps the full join set inside one transaction so readers
// never observe the cleared-but-not-yet-refilled intermediate state.
func (r *PackageRepository) ReplaceHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM package_hotels WHERE package_id = $1`, packageID); err != nil {
		return err
	}
	if len(hotelIDs) > 0 {
		if _, err := tx.ExecContext(ctx, attachHotelsQuery, packageID, pq.Int64Array(hotelIDs)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
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

var _ ports.PackageRepository = (*PackageRepository)(nil)
