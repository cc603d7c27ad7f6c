package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/helpdesk-portal/internal/classifier"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	"github.com/spec-kit/helpdesk-portal/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util"
)

const (
	ticketIDPrefix = "TKT"
	assetIDPrefix  = "AST"
)

// IntakeService orchestrates ticket and asset creation: validation, ID
// generation, classification and persistence.
type IntakeService struct {
	tickets    repository.TicketRepository
	assets     repository.AssetRepository
	dispatcher events.Dispatcher
}

// IntakeDependencies bundles repositories for the intake service.
type IntakeDependencies struct {
	TicketRepo repository.TicketRepository
	AssetRepo  repository.AssetRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Department  string
	StaffID     string
	StaffName   string
	Email       string
}

// TicketCreateResult echoes the generated identifier and the classifier's
// assignment back to the submitter.
type TicketCreateResult struct {
	TicketID string
	Category domain.TicketCategory
	Priority domain.TicketPriority
}

// AssetCreateInput describes asset registration payload.
type AssetCreateInput struct {
	Type         domain.AssetType
	Tag          string
	SerialNumber *string
	AssignedTo   string
	StaffID      string
	Department   string
}

// NewIntakeService constructs the service.
func NewIntakeService(deps IntakeDependencies) *IntakeService {
	return &IntakeService{
		tickets:    deps.TicketRepo,
		assets:     deps.AssetRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket validates input, classifies the description and persists a
// single open ticket. Category and priority are assigned exactly once, here.
func (s *IntakeService) CreateTicket(ctx context.Context, input TicketCreateInput) (*TicketCreateResult, error) {
	missing := missingFields(map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"department":  input.Department,
		"staffId":     input.StaffID,
		"staffName":   input.StaffName,
		"email":       input.Email,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}

	category, priority := classifier.Classify(input.Description)

	ticket := &domain.Ticket{
		TicketID:    generateID(ticketIDPrefix),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Priority:    priority,
		Status:      domain.TicketStatusOpen,
		Department:  strings.TrimSpace(input.Department),
		StaffID:     strings.TrimSpace(input.StaffID),
		StaffName:   strings.TrimSpace(input.StaffName),
		Email:       strings.TrimSpace(input.Email),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("ticket identifier already exists", map[string]any{"ticket_id": ticket.TicketID})
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:   ticket.TicketID,
			Title:      ticket.Title,
			Category:   ticket.Category,
			Priority:   ticket.Priority,
			Department: ticket.Department,
			Email:      ticket.Email,
		},
	})

	return &TicketCreateResult{
		TicketID: ticket.TicketID,
		Category: ticket.Category,
		Priority: ticket.Priority,
	}, nil
}

// RegisterAsset validates input and persists a single active asset. No
// classification step applies to assets.
func (s *IntakeService) RegisterAsset(ctx context.Context, input AssetCreateInput) (string, error) {
	missing := missingFields(map[string]string{
		"assetType":  string(input.Type),
		"assetTag":   input.Tag,
		"assignedTo": input.AssignedTo,
		"department": input.Department,
	})
	if len(missing) > 0 {
		return "", apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}

	asset := &domain.Asset{
		AssetID:      generateID(assetIDPrefix),
		Type:         input.Type,
		Tag:          strings.TrimSpace(input.Tag),
		SerialNumber: input.SerialNumber,
		AssignedTo:   strings.TrimSpace(input.AssignedTo),
		StaffID:      strings.TrimSpace(input.StaffID),
		Department:   strings.TrimSpace(input.Department),
		Status:       domain.AssetStatusActive,
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		if isUniqueViolation(err) {
			return "", apperrors.NewConflict("asset identifier already exists", map[string]any{"asset_id": asset.AssetID})
		}
		return "", apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventAssetRegistered,
		Payload: events.AssetRegisteredPayload{
			AssetID:    asset.AssetID,
			AssetType:  asset.Type,
			AssignedTo: asset.AssignedTo,
			Department: asset.Department,
		},
	})

	return asset.AssetID, nil
}

// ListTickets returns all tickets, newest first.
func (s *IntakeService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return tickets, nil
}

// ListAssets returns all assets, newest first.
func (s *IntakeService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assets.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return assets, nil
}

// generateID builds a public identifier from a readable prefix and a UUID
// fragment. The store's unique index backstops the vanishing collision
// chance; a duplicate insert surfaces as a conflict without retry.
func generateID(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *IntakeService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
