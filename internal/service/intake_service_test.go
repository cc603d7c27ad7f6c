package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util"
)

type mockTicketRepo struct {
	createErr error
	created   []domain.Ticket
	listRows  []domain.Ticket
	listErr   error
}

func (m *mockTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if m.createErr != nil {
		return m.createErr
	}
	ticket.ID = int64(len(m.created) + 1)
	ticket.CreatedAt = time.Now()
	m.created = append(m.created, *ticket)
	return nil
}

func (m *mockTicketRepo) GetByTicketID(_ context.Context, ticketID string) (*domain.Ticket, error) {
	for i := range m.created {
		if m.created[i].TicketID == ticketID {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockTicketRepo) ListNewestFirst(_ context.Context) ([]domain.Ticket, error) {
	return m.listRows, m.listErr
}

type mockAssetRepo struct {
	createErr error
	created   []domain.Asset
	listRows  []domain.Asset
	listErr   error
}

func (m *mockAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	if m.createErr != nil {
		return m.createErr
	}
	asset.ID = int64(len(m.created) + 1)
	asset.CreatedAt = time.Now()
	m.created = append(m.created, *asset)
	return nil
}

func (m *mockAssetRepo) GetByAssetID(_ context.Context, assetID string) (*domain.Asset, error) {
	for i := range m.created {
		if m.created[i].AssetID == assetID {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockAssetRepo) ListNewestFirst(_ context.Context) ([]domain.Asset, error) {
	return m.listRows, m.listErr
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func validTicketInput() TicketCreateInput {
	return TicketCreateInput{
		Title:       "Cannot login to Kwatos",
		Description: "Cannot login to Kwatos system, urgent",
		Department:  "Operations",
		StaffID:     "EMP1234",
		StaffName:   "John Kamau",
		Email:       "j.kamau@example.com",
	}
}

func validAssetInput() AssetCreateInput {
	return AssetCreateInput{
		Type:       domain.AssetTypeLaptop,
		Tag:        "KPA-LT-2023-001",
		AssignedTo: "John Kamau",
		StaffID:    "EMP1234",
		Department: "Operations",
	}
}

func TestCreateTicketClassifiesAndPersists(t *testing.T) {
	tickets := &mockTicketRepo{}
	dispatcher := &capturingDispatcher{}
	svc := NewIntakeService(IntakeDependencies{
		TicketRepo: tickets,
		AssetRepo:  &mockAssetRepo{},
		Dispatcher: dispatcher,
	})

	result, err := svc.CreateTicket(context.Background(), validTicketInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.TicketID, "TKT-"))
	assert.Equal(t, domain.CategorySoftware, result.Category)
	assert.Equal(t, domain.PriorityHigh, result.Priority)

	require.Len(t, tickets.created, 1)
	stored := tickets.created[0]
	assert.Equal(t, result.TicketID, stored.TicketID)
	assert.Equal(t, domain.TicketStatusOpen, stored.Status)
	assert.Equal(t, domain.CategorySoftware, stored.Category)
	assert.Equal(t, domain.PriorityHigh, stored.Priority)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventTicketCreated, dispatcher.published[0].Type)
}

func TestCreateTicketNoDedup(t *testing.T) {
	tickets := &mockTicketRepo{}
	svc := NewIntakeService(IntakeDependencies{TicketRepo: tickets, AssetRepo: &mockAssetRepo{}})

	first, err := svc.CreateTicket(context.Background(), validTicketInput())
	require.NoError(t, err)
	second, err := svc.CreateTicket(context.Background(), validTicketInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.TicketID, second.TicketID)
	assert.Len(t, tickets.created, 2)
}

func TestCreateTicketValidation(t *testing.T) {
	svc := NewIntakeService(IntakeDependencies{TicketRepo: &mockTicketRepo{}, AssetRepo: &mockAssetRepo{}})

	input := validTicketInput()
	input.Description = "   "
	input.Email = ""
	_, err := svc.CreateTicket(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.ElementsMatch(t, []string{"description", "email"}, domainErr.Details["fields"])
}

func TestCreateTicketConflictOnDuplicateID(t *testing.T) {
	tickets := &mockTicketRepo{createErr: &pgconn.PgError{Code: "23505"}}
	svc := NewIntakeService(IntakeDependencies{TicketRepo: tickets, AssetRepo: &mockAssetRepo{}})

	_, err := svc.CreateTicket(context.Background(), validTicketInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestCreateTicketStoreFailure(t *testing.T) {
	tickets := &mockTicketRepo{createErr: errors.New("connection refused")}
	svc := NewIntakeService(IntakeDependencies{TicketRepo: tickets, AssetRepo: &mockAssetRepo{}})

	_, err := svc.CreateTicket(context.Background(), validTicketInput())
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
}

func TestRegisterAssetPersistsActive(t *testing.T) {
	assets := &mockAssetRepo{}
	dispatcher := &capturingDispatcher{}
	svc := NewIntakeService(IntakeDependencies{
		TicketRepo: &mockTicketRepo{},
		AssetRepo:  assets,
		Dispatcher: dispatcher,
	})

	assetID, err := svc.RegisterAsset(context.Background(), validAssetInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(assetID, "AST-"))
	require.Len(t, assets.created, 1)
	assert.Equal(t, domain.AssetStatusActive, assets.created[0].Status)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventAssetRegistered, dispatcher.published[0].Type)
}

func TestRegisterAssetValidation(t *testing.T) {
	svc := NewIntakeService(IntakeDependencies{TicketRepo: &mockTicketRepo{}, AssetRepo: &mockAssetRepo{}})

	input := validAssetInput()
	input.Tag = ""
	input.AssignedTo = ""
	_, err := svc.RegisterAsset(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.ElementsMatch(t, []string{"assetTag", "assignedTo"}, domainErr.Details["fields"])
}

func TestGenerateIDDistinct(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := generateID(ticketIDPrefix)
		assert.True(t, strings.HasPrefix(id, "TKT-"))
		assert.Len(t, id, len("TKT-")+10)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
