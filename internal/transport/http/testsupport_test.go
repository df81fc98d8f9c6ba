package http

import (
	"context"
	"database/sql"
	"io"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/service"
)

// The handler tests run the real services over in-memory repositories so a
// request exercises the whole stack below the router.

type memDestinationRepo struct {
	rows   map[int64]domain.Destination
	nextID int64
}

func newMemDestinationRepo(rows ...domain.Destination) *memDestinationRepo {
	repo := &memDestinationRepo{rows: make(map[int64]domain.Destination), nextID: 1}
	for _, row := range rows {
		repo.rows[row.ID] = row
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
	}
	return repo
}

func (r *memDestinationRepo) ListByName(ctx context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memDestinationRepo) ListRecent(ctx context.Context) ([]domain.Destination, error) {
	out, _ := r.ListByName(ctx)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memDestinationRepo) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *memDestinationRepo) FindBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	for _, row := range r.rows {
		if row.Slug == slug {
			found := row
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memDestinationRepo) CardsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationCard, error) {
	out := make(map[int64]domain.DestinationCard)
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			out[id] = domain.DestinationCard{ID: row.ID, Name: row.Name, Slug: row.Slug, State: row.State, HeroImage: row.HeroImage}
		}
	}
	return out, nil
}

func (r *memDestinationRepo) RefsByIDs(ctx context.Context, ids []int64) (map[int64]domain.DestinationRef, error) {
	out := make(map[int64]domain.DestinationRef)
	for _, id := range ids {
		if row, ok := r.rows[id]; ok {
			out[id] = domain.DestinationRef{ID: row.ID, Name: row.Name, Slug: row.Slug, State: row.State}
		}
	}
	return out, nil
}

func (r *memDestinationRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memDestinationRepo) NameByID(ctx context.Context, id int64) (string, error) {
	row, ok := r.rows[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return row.Name, nil
}

func (r *memDestinationRepo) Create(ctx context.Context, input domain.NewDestination) (*domain.Destination, error) {
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

func (r *memDestinationRepo) Update(ctx context.Context, id int64, patch domain.DestinationPatch) (*domain.Destination, error) {
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

func (r *memDestinationRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type memHotelRepo struct {
	rows   map[int64]domain.Hotel
	nextID int64
}

func newMemHotelRepo(rows ...domain.Hotel) *memHotelRepo {
	repo := &memHotelRepo{rows: make(map[int64]domain.Hotel), nextID: 1}
	for _, row := range rows {
		repo.rows[row.ID] = row
		if row.ID >= repo.nextID {
			repo.nextID = row.ID + 1
		}
	}
	return repo
}

func (r *memHotelRepo) List(ctx context.Context, destinationID *int64) ([]domain.Hotel, error) {
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

func (r *memHotelRepo) ListRecent(ctx context.Context) ([]domain.Hotel, error) {
	out, _ := r.List(ctx, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memHotelRepo) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *memHotelRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memHotelRepo) Create(ctx context.Context, input domain.NewHotel) (*domain.Hotel, error) {
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

func (r *memHotelRepo) Update(ctx context.Context, id int64, patch domain.HotelPatch) (*domain.Hotel, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.StarRating != nil {
		if patch.StarRating.Valid {
			v := patch.StarRating.Float64
			row.StarRating = &v
		} else {
			row.StarRating = nil
		}
	}
	r.rows[id] = row
	return &row, nil
}

func (r *memHotelRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type memPackageRepo struct {
	rows   map[int64]domain.Package
	links  map[int64][]int64
	hotels *memHotelRepo
	nextID int64
}

func newMemPackageRepo(hotels *memHotelRepo, rows ...domain.Package) *memPackageRepo {
	repo := &memPackageRepo{
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

func (r *memPackageRepo) List(ctx context.Context, destinationID *int64) ([]domain.Package, error) {
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

func (r *memPackageRepo) ListRecent(ctx context.Context) ([]domain.Package, error) {
	out, _ := r.List(ctx, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memPackageRepo) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (r *memPackageRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memPackageRepo) NameByID(ctx context.Context, id int64) (string, error) {
	row, ok := r.rows[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return row.Name, nil
}

func (r *memPackageRepo) HotelsByPackageIDs(ctx context.Context, packageIDs []int64) (map[int64][]domain.Hotel, error) {
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

func (r *memPackageRepo) Create(ctx context.Context, input domain.NewPackage) (*domain.Package, error) {
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

func (r *memPackageRepo) Update(ctx context.Context, id int64, patch domain.PackagePatch) (*domain.Package, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.IsFeatured != nil {
		row.IsFeatured = *patch.IsFeatured
	}
	r.rows[id] = row
	return &row, nil
}

func (r *memPackageRepo) AttachHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	seen := make(map[int64]bool, len(r.links[packageID]))
	for _, id := range r.links[packageID] {
		seen[id] = true
	}
	for _, id := range hotelIDs {
		if !seen[id] {
			r.links[packageID] = append(r.links[packageID], id)
			seen[id] = true
		}
	}
	return nil
}

func (r *memPackageRepo) ReplaceHotels(ctx context.Context, packageID int64, hotelIDs []int64) error {
	r.links[packageID] = nil
	return r.AttachHotels(ctx, packageID, hotelIDs)
}

func (r *memPackageRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	delete(r.links, id)
	return nil
}

type memLeadRepo struct {
	rows   []domain.Lead
	nextID int64
}

func (r *memLeadRepo) Insert(ctx context.Context, input domain.NewLead) (*domain.Lead, error) {
	if r.nextID == 0 {
		r.nextID = 1
	}
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

func (r *memLeadRepo) ListRecent(ctx context.Context) ([]domain.LeadWithRefs, error) {
	out := make([]domain.LeadWithRefs, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, domain.LeadWithRefs{Lead: r.rows[i]})
	}
	return out, nil
}

type memSettingsRepo struct {
	row *domain.AgencySettings
}

func (r *memSettingsRepo) Get(ctx context.Context) (*domain.AgencySettings, error) {
	if r.row == nil {
		return nil, nil
	}
	copied := *r.row
	return &copied, nil
}

func (r *memSettingsRepo) Upsert(ctx context.Context, patch domain.SettingsPatch) (*domain.AgencySettings, error) {
	if r.row == nil {
		r.row = &domain.AgencySettings{ID: domain.AgencySettingsID}
	}
	if patch.AgencyName != nil {
		r.row.AgencyName = patch.AgencyName
	}
	if patch.WhatsappNumber != nil {
		r.row.WhatsappNumber = patch.WhatsappNumber
	}
	copied := *r.row
	return &copied, nil
}

type memStorage struct {
	bucket     string
	objectName string
	size       int64
}

func (s *memStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	s.bucket = bucket
	s.objectName = objectName
	s.size = size
	_, _ = io.Copy(io.Discard, reader)
	return "https://storage.local/" + bucket + "/" + objectName, nil
}

type serverOptions struct {
	adminKey string
	writable bool
	role     string
	maxBytes int64
}

// newTestServer wires the full router with real services over in-memory
// stores, seeded with one destination, two hotels, and one linked package.
func newTestServer(opts serverOptions) (*echo.Echo, *memPackageRepo, *memLeadRepo) {
	if opts.role == "" {
		opts.role = "app_rw"
	}
	if opts.maxBytes == 0 {
		opts.maxBytes = 8 * 1024 * 1024
	}

	dests := newMemDestinationRepo(domain.Destination{ID: 1, Name: "Goa", Slug: "goa"})
	hotels := newMemHotelRepo(
		domain.Hotel{ID: 10, DestinationID: 1, Name: "Sands Resort", Slug: "sands-resort", Amenities: domain.StringList{}},
		domain.Hotel{ID: 11, DestinationID: 1, Name: "Cliff Hotel", Slug: "cliff-hotel", Amenities: domain.StringList{}},
	)
	packages := newMemPackageRepo(hotels,
		domain.Package{ID: 100, DestinationID: 1, Name: "Goa Getaway", Slug: "goa-getaway", Highlights: domain.StringList{}},
	)
	packages.links[100] = []int64{10}
	leads := &memLeadRepo{}
	settings := &memSettingsRepo{}

	catalog := service.NewCatalogService(dests, packages, hotels, settings)
	admin := service.NewAdminService(dests, packages, hotels, leads, settings)
	leadSvc := service.NewLeadService(leads, dests, packages, "+91 98765 43210")
	uploads := service.NewUploadService(&memStorage{}, "agency-images", opts.maxBytes)

	e := NewRouter([]string{"*"})
	guards := Guards{
		AdminKey: RequireAdminKey(opts.adminKey),
		Write:    RequireWriteAccess(WriteAccess{Role: opts.role, Writable: opts.writable}),
	}

	RegisterDestinations(e, catalog, admin, guards)
	RegisterPackages(e, catalog, admin, guards)
	RegisterHotels(e, catalog, admin, guards)
	RegisterLeads(e, leadSvc, admin, guards)
	RegisterSettings(e, catalog, admin, guards)
	RegisterUploads(e, uploads, guards)
	RegisterAdminVerify(e, guards)

	return e, packages, leads
}
