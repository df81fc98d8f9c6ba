package service

import (
	"context"
	"database/sql"
	"sort"

	"github.com/tripveda/agency-backend/internal/domain"
)

// In-memory repository fakes shared by the service tests. They implement the
// same contracts as the Postgres repositories, including sql.ErrNoRows on
// missing rows, but keep everything in maps.

type fakeDestinationRepo struct {
	rows   map[int64]domain.Destination
	nextID int64
}

func newFakeDestinationRepo(rows ...domain.Destination) *fakeDestinationRepo {
	repo := &fakeDestinationRepo{rows: make(map[int64]domain.Destination), nextID: 1}
	for _, row := range rows {
		repo.rows[row.ID] = row
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
	}
	return repo
}

func (r *fakeDestinationRepo) ListByName(ctx context.Context) ([]domain.Destination, error) {
	out := r.all()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDestinationRepo) ListRecent(ctx context.Context) ([]domain.Destination, error) {
	out := r.all()
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeDestinationRepo) all() []domain.Destination {
	out := make([]domain.Destination, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	return out
}

func (r *fakeDestinationRepo) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *fakeDestinationRepo) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	for _, row := range r.rows {
		if row.Slug == slug {
			found := row
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeDestinationRepo) CardsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationCard, error) {
	out := make(map[int64]domain.DestinationCard)
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			out[id] = domain.DestinationCard{
				ID:        row.ID,
				Name:      row.Name,
				Slug:      row.Slug,
				State:     row.State,
				HeroImage: row.HeroImage,
			}
		}
	}
	return out, nil
}

func (r *fakeDestinationRepo) RefsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationRef, error) {
	out := make(map[int64]domain.DestinationRef)
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			out[id] = domain.DestinationRef{ID: row.ID, Name: row.Name, Slug: row.Slug, State: row.State}
		}
	}
	return out, nil
}

func (r *fakeDestinationRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *fakeDestinationRepo) NameByID(ctx context.Context, id int64) (string, error) {
	row, ok := r.rows[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return row.Name, nil
}

func (r *fakeDestinationRepo) Create(ctx context.Context, input domain.NewDestination) (*domain.Destination, error) {
	row := domain.Destination{
		ID:               r.nextID,
		Name:             input.Name,
		Slug:             input.Slug,
		State:            input.State,
		HeroImage:        input.HeroImage,
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		BestTime:         input.BestTime,
	}
	r.nextID++
	r.rows[row.ID] = row
	return &row, nil
}

func (r *fakeDestinationRepo) Update(ctx context.Context, id int64, patch domain.DestinationPatch) (*domain.Destination, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Slug != nil {
		row.Slug = *patch.Slug
	}
	if patch.State != nil {
		row.State = patch.State
	}
	if patch.HeroImage != nil {
		row.HeroImage = patch.HeroImage
	}
	if patch.ShortDescription != nil {
		row.ShortDescription = patch.ShortDescription
	}
	if patch.LongDescription != nil {
		row.LongDescription = patch.LongDescription
	}
	if patch.BestTime != nil {
		row.BestTime = patch.BestTime
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakeDestinationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

type fakeHotelRepo struct {
	rows   map[int64]domain.Hotel
	nextID int64
}

func newFakeHotelRepo(rows ...domain.Hotel) *fakeHotelRepo {
	repo := &fakeHotelRepo{rows: make(map[int64]domain.Hotel), nextID: 1}
	for _, row := range rows {
		repo.rows[row.ID] = row
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
	}
	return repo
}

func (r *fakeHotelRepo) List(ctx context.Context, destinationID *int64) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(r.rows))
	for _, row := range r.rows {
		if destinationID != nil && row.DestinationID != *destinationID {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeHotelRepo) ListRecent(ctx context.Context) ([]domain.Hotel, error) {
	out, _ := r.List(ctx, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeHotelRepo) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *fakeHotelRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *fakeHotelRepo) Create(ctx context.Context, input domain.NewHotel) (*domain.Hotel, error) {
	row := domain.Hotel{
		ID:            r.nextID,
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Slug:          input.Slug,
		StarRating:    input.StarRating,
		PricePerNight: input.PricePerNight,
		Summary:       input.Summary,
		Amenities:     input.Amenities,
		Address:       input.Address,
		CoverImage:    input.CoverImage,
	}
	if row.Amenities == nil {
		row.Amenities = domain.StringList{}
	}
	r.nextID++
	r.rows[row.ID] = row
	return &row, nil
}

func (r *fakeHotelRepo) Update(ctx context.Context, id int64, patch domain.HotelPatch) (*domain.Hotel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.DestinationID != nil {
		row.DestinationID = *patch.DestinationID
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Slug != nil {
		row.Slug = *patch.Slug
	}
	if patch.StarRating != nil {
		if patch.StarRating.Valid {
			v := patch.StarRating.Float64
			row.StarRating = &v
		} else {
			row.StarRating = nil
		}
	}
	if patch.PricePerNight != nil {
		if patch.PricePerNight.Valid {
			v := patch.PricePerNight.Float64
			row.PricePerNight = &v
		} else {
			row.PricePerNight = nil
		}
	}
	if patch.Summary != nil {
		row.Summary = patch.Summary
	}
	if patch.Amenities != nil {
		row.Amenities = *patch.Amenities
	}
	if patch.Address != nil {
		row.Address = patch.Address
	}
	if patch.CoverImage != nil {
		row.CoverImage = patch.CoverImage
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakeHotelRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

type fakePackageRepo struct {
	rows   map[int64]domain.Package
	links  map[int64][]int64
	hotels *fakeHotelRepo
	nextID int64
}

func newFakePackageRepo(hotels *fakeHotelRepo, rows ...domain.Package) *fakePackageRepo {
	repo := &fakePackageRepo{
		rows:   make(map[int64]domain.Package),
		links:  make(map[int64][]int64),
		hotels: hotels,
		nextID: 1,
	}
	for _, row := range rows {
		repo.rows[row.ID] = row
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
	}
	return repo
}

func (r *fakePackageRepo) List(ctx context.Context, destinationID *int64) ([]domain.Package, error) {
	out := make([]domain.Package, 0, len(r.rows))
	for _, row := range r.rows {
		if destinationID != nil && row.DestinationID != *destinationID {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePackageRepo) ListRecent(ctx context.Context) ([]domain.Package, error) {
	out, _ := r.List(ctx, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakePackageRepo) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *fakePackageRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *fakePackageRepo) NameByID(ctx context.Context, id int64) (string, error) {
	row, ok := r.rows[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return row.Name, nil
}

func (r *fakePackageRepo) HotelsByPackageIDs(ctx context.Context, packageIDs []int64) (map[int64][]domain.Hotel, error) {
	out := make(map[int64][]domain.Hotel)
	for _, pkgID := range packageIDs {
		for _, hotelID := range r.links[pkgID] {
			if hotel, ok := r.hotels.rows[hotelID]; ok {
				out[pkgID] = append(out[pkgID], hotel)
			}
		}
	}
	return out, nil
}

func (r *fakePackageRepo) Create(ctx context.Context, input domain.NewPackage) (*domain.Package, error) {
	row := domain.Package{
		ID:            r.nextID,
		DestinationID: input.DestinationID,
		Name:          input.Name,
		Slug:          input.Slug,
		DurationDays:  input.DurationDays,
		PriceFrom:     input.PriceFrom,
		Summary:       input.Summary,
		Highlights:    input.Highlights,
		CoverImage:    input.CoverImage,
		IsFeatured:    input.IsFeatured,
	}
	if row.Highlights == nil {
		row.Highlights = domain.StringList{}
	}
	r.nextID++
	r.rows[row.ID] = row
	return &row, nil
}

func (r *fakePackageRepo) Update(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.DestinationID != nil {
		row.DestinationID = *patch.DestinationID
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.Slug != nil {
		row.Slug = *patch.Slug
	}
	if patch.DurationDays != nil {
		if patch.DurationDays.Valid {
			v := patch.DurationDays.Int64
			row.DurationDays = &v
		} else {
			row.DurationDays = nil
		}
	}
	if patch.PriceFrom != nil {
		if patch.PriceFrom.Valid {
			v := patch.PriceFrom.Float64
			row.PriceFrom = &v
		} else {
			row.PriceFrom = nil
		}
	}
	if patch.Summary != nil {
		row.Summary = patch.Summary
	}
	if patch.Highlights != nil {
		row.Highlights = *patch.Highlights
	}
	if patch.CoverImage != nil {
		row.CoverImage = patch.CoverImage
	}
	if patch.IsFeatured != nil {
		row.IsFeatured = *patch.IsFeatured
	}
	r.rows[id] = row
	return &row, nil
}

func (r *fakePackageRepo) AttachHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	existing := make(map[int64]bool, len(r.links[packageID]))
	for _, id := range r.links[packageID] {
		existing[id] = true
	}
	for _, id := range hotelIDs {
		if !existing[id] {
			r.links[packageID] = append(r.links[packageID], id)
			existing[id] = true
		}
	}
	return nil
}

func (r *fakePackageRepo) ReplaceHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	r.links[packageID] = nil
	return r.AttachHotels(ctx, packageID, hotelIDs)
}

func (r *fakePackageRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.rows, id)
	delete(r.links, id)
	return nil
}

type fakeLeadRepo struct {
	rows   []domain.Lead
	nextID int64
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{nextID: 1}
}

func (r *fakeLeadRepo) Insert(ctx context.Context, input domain.NewLead) (*domain.Lead, error) {
	row := domain.Lead{
		ID:                  r.nextID,
		FullName:            input.FullName,
		Phone:               input.Phone,
		Email:               input.Email,
		PreferredTravelDate: input.PreferredTravelDate,
		Travellers:          input.Travellers,
		Budget:              input.Budget,
		DestinationID:       input.DestinationID,
		PackageID:           input.PackageID,
		Message:             input.Message,
		Source:              input.Source,
		Status:              input.Status,
	}
	r.nextID++
	r.rows = append(r.rows, row)
	return &row, nil
}

func (r *fakeLeadRepo) ListRecent(ctx context.Context) ([]domain.LeadWithRefs, error) {
	out := make([]domain.LeadWithRefs, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, domain.LeadWithRefs{Lead: r.rows[i]})
	}
	return out, nil
}

type fakeSettingsRepo struct {
	row *domain.AgencySettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*domain.AgencySettings, error) {
	if r.row == nil {
		return nil, nil
	}
	copied := *r.row
	return &copied, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.AgencySettings, error) {
	if r.row == nil {
		r.row = &domain.AgencySettings{ID: domain.AgencySettingsID}
	}
	if patch.AgencyName != nil {
		r.row.AgencyName = patch.AgencyName
	}
	if patch.LogoURL != nil {
		r.row.LogoURL = patch.LogoURL
	}
	if patch.ContactPhone != nil {
		r.row.ContactPhone = patch.ContactPhone
	}
	if patch.WhatsappNumber != nil {
		r.row.WhatsappNumber = patch.WhatsappNumber
	}
	if patch.SupportEmail != nil {
		r.row.SupportEmail = patch.SupportEmail
	}
	if patch.Address != nil {
		r.row.Address = patch.Address
	}
	if patch.InstagramURL != nil {
		r.row.InstagramURL = patch.InstagramURL
	}
	if patch.FacebookURL != nil {
		r.row.FacebookURL = patch.FacebookURL
	}
	if patch.TwitterURL != nil {
		r.row.TwitterURL = patch.TwitterURL
	}
	if patch.YoutubeURL != nil {
		r.row.YoutubeURL = patch.YoutubeURL
	}
	copied := *r.row
	return &copied, nil
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }
