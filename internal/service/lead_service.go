package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/repository/ports"
)

// LeadService validates and persists inbound inquiries and prepares the
// WhatsApp hand-off message.
type LeadService struct {
	leads          ports.LeadRepository
	destinations   ports.DestinationRepository
	packages       ports.PackageRepository
	whatsappNumber string
}

func NewLeadService(leadRepo ports.LeadRepository, destRepo ports.DestinationRepository, pkgRepo ports.PackageRepository, whatsappNumber string) *LeadService {
	return &LeadService{
		leads:          leadRepo,
		destinations:   destRepo,
		packages:       pkgRepo,
		whatsappNumber: whatsappNumber,
	}
}

// LeadSubmission is the decoded public lead form. The numeric fields are
// tri-state so an empty string, a missing key, and a malformed value can be
// told apart.
type LeadSubmission struct {
	FullName            string                 `json:"full_name"`
	Phone               string                 `json:"phone"`
	Email               string                 `json:"email"`
	PreferredTravelDate string                 `json:"preferred_travel_date"`
	Travellers          *domain.OptionalNumber `json:"travellers"`
	Budget              *domain.OptionalNumber `json:"budget"`
	DestinationID       *domain.OptionalNumber `json:"destination_id"`
	PackageID           *domain.OptionalNumber `json:"package_id"`
	Message             string                 `json:"message"`
}

type LeadResult struct {
	Lead        *domain.Lead `json:"lead"`
	WhatsappURL *string      `json:"whatsapp_url"`
	Preview     string       `json:"whatsapp_message_preview"`
}

func (s *LeadService) Submit(ctx context.Context, in LeadSubmission) (*LeadResult, error) {
	fullName := strings.TrimSpace(in.FullName)
	phone := strings.TrimSpace(in.Phone)
	if fullName == "" || phone == "" {
		return nil, validation("full_name and phone are required.")
	}

	var travellers *int64
	if in.Travellers != nil && !in.Travellers.IsNull() {
		v, ok := in.Travellers.PositiveInt()
		if !ok {
			return nil, validation("travellers must be a positive integer.")
		}
		travellers = &v
	}

	var budget *float64
	if in.Budget != nil && !in.Budget.IsNull() {
		v, ok := in.Budget.NonNegative()
		if !ok {
			return nil, validation("budget must be a positive number.")
		}
		budget = &v
	}

	var destinationID *int64
	if in.DestinationID != nil && !in.DestinationID.IsNull() {
		v, ok := in.DestinationID.PositiveInt()
		if !ok {
			return nil, validation("destination_id must be a positive integer.")
		}
		destinationID = &v
	}

	var packageID *int64
	if in.PackageID != nil && !in.PackageID.IsNull() {
		v, ok := in.PackageID.PositiveInt()
		if !ok {
			return nil, validation("package_id must be a positive integer.")
		}
		packageID = &v
	}

	if destinationID != nil {
		exists, err := s.destinations.Exists(ctx, *destinationID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, validation("Selected destination does not exist.")
		}
	}

	if packageID != nil {
		pkg, err := s.packages.FindByID(ctx, *packageID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, validation("Selected package does not exist.")
		}
		if err != nil {
			return nil, err
		}
		if destinationID != nil && pkg.DestinationID != *destinationID {
			return nil, validation("Selected package does not belong to selected destination.")
		}
	}

	lead, err := s.leads.Insert(ctx, domain.NewLead{
		FullName:            fullName,
		Phone:               phone,
		Email:               optionalString(in.Email),
		PreferredTravelDate: optionalString(in.PreferredTravelDate),
		Travellers:          travellers,
		Budget:              budget,
		DestinationID:       destinationID,
		PackageID:           packageID,
		Message:             optionalString(in.Message),
		Source:              domain.LeadSourceWebsite,
		Status:              domain.LeadStatusNew,
	})
	if err != nil {
		return nil, err
	}

	// Display names are best effort: a failed lookup falls back to the
	// placeholder instead of failing the whole request.
	destinationName := "Not selected"
	if lead.DestinationID != nil {
		if name, err := s.destinations.NameByID(ctx, *lead.DestinationID); err == nil {
			destinationName = name
		}
	}
	packageName := "Not selected"
	if lead.PackageID != nil {
		if name, err := s.packages.NameByID(ctx, *lead.PackageID); err == nil {
			packageName = name
		}
	}

	preview := buildLeadMessage(lead, destinationName, packageName)
	return &LeadResult{
		Lead:        lead,
		WhatsappURL: BuildWhatsappURL(s.whatsappNumber, preview),
		Preview:     preview,
	}, nil
}

func buildLeadMessage(lead *domain.Lead, destinationName, packageName string) string {
	travelDate := "Flexible"
	if lead.PreferredTravelDate != nil {
		travelDate = *lead.PreferredTravelDate
	}
	travellers := "Not provided"
	if lead.Travellers != nil {
		travellers = strconv.FormatInt(*lead.Travellers, 10)
	}
	budget := "Not provided"
	if lead.Budget != nil {
		budget = "INR " + strconv.FormatFloat(*lead.Budget, 'f', -1, 64)
	}
	email := "Not provided"
	if lead.Email != nil {
		email = *lead.Email
	}
	message := "No additional message"
	if lead.Message != nil {
		message = *lead.Message
	}

	lines := []string{
		"New Travel Inquiry",
		fmt.Sprintf("Lead ID: %d", lead.ID),
		"Name: " + lead.FullName,
		"Phone: " + lead.Phone,
		"Email: " + email,
		"Destination: " + destinationName,
		"Package: " + packageName,
		"Travel Date: " + travelDate,
		"Travellers: " + travellers,
		"Budget: " + budget,
		"Message: " + message,
	}
	return strings.Join(lines, "\n")
}

// BuildWhatsappURL formats a wa.me deep link with the message pre-filled.
// Returns nil when no contact number is configured.
func BuildWhatsappURL(number, messageText string) *string {
	digits := sanitizeNumber(number)
	if digits == "" {
		return nil
	}
	// QueryEscape uses "+" for spaces; wa.me expects %20.
	encoded := strings.ReplaceAll(url.QueryEscape(messageText), "+", "%20")
	link := "https://wa.me/" + digits + "?text=" + encoded
	return &link
}

func sanitizeNumber(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
