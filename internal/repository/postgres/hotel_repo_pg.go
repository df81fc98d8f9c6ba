package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

const hotelColumns = `id, destination_id, name, slug, star_rating, price_per_night, summary, amenities, address, cover_image, created_at`

type HotelRepository struct {
	db *sqlx.DB
}

func NewHotelRepo(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context, destinationID *int64) ([]domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	args := make([]any, 0, 1)
	if destinationID != nil {
		query += ` WHERE destination_id = $1`
		args = append(args, *destinationID)
	}
	query += ` ORDER BY star_rating DESC NULLS LAST, price_per_night ASC`

	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query, args...); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) ListRecent(ctx context.Context) ([]domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels ORDER BY created_at DESC`
	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`
	var hotel domain.Hotel
	if err := r.db.GetContext(ctx, &hotel, query, id); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *HotelRepository) Create(ctx context.Context, input domain.NewHotel) (*domain.Hotel, error) {
	query := `
		INSERT INTO hotels (destination_id, name, slug, star_rating, price_per_night, summary, amenities, address, cover_image)
		VALUES (:destination_id, :name, :slug, :star_rating, :price_per_night, :summary, :amenities, :address, :cover_image)
		RETURNING ` + hotelColumns

	amenities := input.Amenities
	if amenities == nil {
		amenities = domain.StringList{}
	}

	args := map[string]any{
		"destination_id":  input.DestinationID,
		"name":            input.Name,
		"slug":            input.Slug,
		"star_rating":     nullFloat(input.StarRating),
		"price_per_night": nullFloat(input.PricePerNight),
		"summary":         nullString(input.Summary),
		"amenities":       amenities,
		"address":         nullString(input.Address),
		"cover_image":     nullString(input.CoverImage),
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var hotel domain.Hotel
		if err = rows.StructScan(&hotel); err != nil {
			return nil, err
		}
		return &hotel, nil
	}
	return nil, sql.ErrNoRows
}

func (r *HotelRepository) Update(ctx context.Context, id int64, patch domain.HotelPatch) (*domain.Hotel, error) {
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
	if patch.StarRating != nil {
		addSet("star_rating", *patch.StarRating)
	}
	if patch.PricePerNight != nil {
		addSet("price_per_night", *patch.PricePerNight)
	}
	if patch.Summary != nil {
		addSet("summary", nullString(patch.Summary))
	}
	if patch.Amenities != nil {
		addSet("amenities", *patch.Amenities)
	}
	if patch.Address != nil {
		addSet("address", nullString(patch.Address))
	}
	if patch.CoverImage != nil {
		addSet("cover_image", nullString(patch.CoverImage))
	}

	if len(setParts) == 0 {
		return r.FindByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE hotels SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args)+1, hotelColumns)
	args = append(args, id)

	var hotel domain.Hotel
	if err := r.db.GetContext(ctx, &hotel, query, args...); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
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

var _ ports.HotelRepository = (*HotelRepository)(nil)
