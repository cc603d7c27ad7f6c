package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-portal/internal/api/http"
	"github.com/spec-kit/helpdesk-portal/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	"github.com/spec-kit/helpdesk-portal/internal/observability"
	"github.com/spec-kit/helpdesk-portal/internal/persistence"
	"github.com/spec-kit/helpdesk-portal/internal/service"
)

type stubTicketRepo struct {
	created []domain.Ticket
	rows    []domain.Ticket
}

func (s *stubTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = int64(len(s.created) + 1)
	ticket.CreatedAt = time.Now()
	s.created = append(s.created, *ticket)
	return nil
}

func (s *stubTicketRepo) GetByTicketID(_ context.Context, _ string) (*domain.Ticket, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubTicketRepo) ListNewestFirst(_ context.Context) ([]domain.Ticket, error) {
	return s.rows, nil
}

type stubAssetRepo struct {
	created []domain.Asset
	rows    []domain.Asset
}

func (s *stubAssetRepo) Create(_ context.Context, asset *domain.Asset) error {
	asset.ID = int64(len(s.created) + 1)
	asset.CreatedAt = time.Now()
	s.created = append(s.created, *asset)
	return nil
}

func (s *stubAssetRepo) GetByAssetID(_ context.Context, _ string) (*domain.Asset, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubAssetRepo) ListNewestFirst(_ context.Context) ([]domain.Asset, error) {
	return s.rows, nil
}

type stubArticleRepo struct {
	rows []domain.Article
}

func (s *stubArticleRepo) ListMostViewedFirst(_ context.Context) ([]domain.Article, error) {
	return s.rows, nil
}

func (s *stubArticleRepo) GetByArticleID(_ context.Context, articleID string) (*domain.Article, error) {
	for i := range s.rows {
		if s.rows[i].ArticleID == articleID {
			return &s.rows[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubArticleRepo) IncrementViews(_ context.Context, articleID string) error {
	if _, err := s.GetByArticleID(context.Background(), articleID); err != nil {
		return err
	}
	return nil
}

func (s *stubArticleRepo) IncrementHelpful(_ context.Context, articleID string) error {
	if _, err := s.GetByArticleID(context.Background(), articleID); err != nil {
		return err
	}
	return nil
}

type stubStatsRepo struct {
	snapshot domain.StatsSnapshot
}

func (s *stubStatsRepo) CountTickets(context.Context) (int64, error) {
	return s.snapshot.TotalTickets, nil
}

func (s *stubStatsRepo) CountTicketsByStatus(context.Context, domain.TicketStatus) (int64, error) {
	return s.snapshot.OpenTickets, nil
}

func (s *stubStatsRepo) CountAssets(context.Context) (int64, error) {
	return s.snapshot.TotalAssets, nil
}

func (s *stubStatsRepo) CountAssetsByStatus(context.Context, domain.AssetStatus) (int64, error) {
	return s.snapshot.ActiveAssets, nil
}

func (s *stubStatsRepo) TicketsByCategory(context.Context) ([]domain.CategoryCount, error) {
	return s.snapshot.ByCategory, nil
}

func (s *stubStatsRepo) TicketsByPriority(context.Context) ([]domain.PriorityCount, error) {
	return s.snapshot.ByPriority, nil
}

type appDeps struct {
	tickets  *stubTicketRepo
	assets   *stubAssetRepo
	articles *stubArticleRepo
	stats    *stubStatsRepo
}

func newTestApp(deps appDeps) *fiber.App {
	if deps.tickets == nil {
		deps.tickets = &stubTicketRepo{}
	}
	if deps.assets == nil {
		deps.assets = &stubAssetRepo{}
	}
	if deps.articles == nil {
		deps.articles = &stubArticleRepo{}
	}
	if deps.stats == nil {
		deps.stats = &stubStatsRepo{}
	}

	logger := zap.NewNop()
	intake := service.NewIntakeService(service.IntakeDependencies{
		TicketRepo: deps.tickets,
		AssetRepo:  deps.assets,
		Dispatcher: events.NewInMemoryDispatcher(),
	})
	knowledge := service.NewKnowledgeService(deps.articles)
	aggregation := service.NewAggregationService(deps.stats, nil, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Tickets:   handlers.NewTicketsHandler(intake),
		Assets:    handlers.NewAssetsHandler(intake),
		Knowledge: handlers.NewKnowledgeHandler(knowledge),
		Stats:     handlers.NewStatsHandler(aggregation),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateTicketEndpoint(t *testing.T) {
	tickets := &stubTicketRepo{}
	app := newTestApp(appDeps{tickets: tickets})

	resp, body := doJSON(t, app, http.MethodPost, "/tickets",
		`{"title":"WiFi outage","description":"WiFi is down in Building C","department":"Finance","staffId":"EMP3456","staffName":"Grace Mutua","email":"g.mutua@example.com"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "network", body["category"])
	assert.Equal(t, "high", body["priority"])
	ticketID, _ := body["ticketId"].(string)
	assert.True(t, strings.HasPrefix(ticketID, "TKT-"))
	assert.Len(t, tickets.created, 1)
}

func TestCreateTicketEndpointValidation(t *testing.T) {
	app := newTestApp(appDeps{})

	resp, body := doJSON(t, app, http.MethodPost, "/tickets", `{"title":"no description"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestListTicketsEndpoint(t *testing.T) {
	tickets := &stubTicketRepo{rows: []domain.Ticket{
		{TicketID: "TKT-AAA", Title: "newest", Status: domain.TicketStatusOpen, Category: domain.CategoryGeneral, Priority: domain.PriorityMedium, CreatedAt: time.Now()},
		{TicketID: "TKT-BBB", Title: "older", Status: domain.TicketStatusResolved, Category: domain.CategoryHardware, Priority: domain.PriorityLow, CreatedAt: time.Now().Add(-time.Hour)},
	}}
	app := newTestApp(appDeps{tickets: tickets})

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "TKT-AAA", items[0]["ticket_id"])
}

func TestCreateAssetEndpoint(t *testing.T) {
	assets := &stubAssetRepo{}
	app := newTestApp(appDeps{assets: assets})

	resp, body := doJSON(t, app, http.MethodPost, "/assets",
		`{"assetType":"Laptop","assetTag":"KPA-LT-2023-001","serialNumber":"HP1234567890","assignedTo":"John Kamau","staffId":"EMP1234","department":"Operations"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assetID, _ := body["assetId"].(string)
	assert.True(t, strings.HasPrefix(assetID, "AST-"))
	require.Len(t, assets.created, 1)
	assert.Equal(t, domain.AssetStatusActive, assets.created[0].Status)
}

func TestStatsEndpointEmpty(t *testing.T) {
	app := newTestApp(appDeps{stats: &stubStatsRepo{snapshot: domain.StatsSnapshot{
		ByCategory: []domain.CategoryCount{},
		ByPriority: []domain.PriorityCount{},
	}}})

	resp, body := doJSON(t, app, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["totalTickets"])
	assert.Equal(t, float64(0), body["openTickets"])
	categories, ok := body["ticketsByCategory"].([]any)
	require.True(t, ok)
	assert.Empty(t, categories)
}

func TestKnowledgeBaseEndpoints(t *testing.T) {
	articles := &stubArticleRepo{rows: []domain.Article{
		{ArticleID: "KB001", Title: "Password Reset", Views: 90, CreatedAt: time.Now()},
		{ArticleID: "KB002", Title: "Printer Guide", Views: 12, CreatedAt: time.Now()},
	}}
	app := newTestApp(appDeps{articles: articles})

	req := httptest.NewRequest(http.MethodGet, "/knowledge-base", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/knowledge-base/KB001", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password Reset", body["title"])

	resp, body = doJSON(t, app, http.MethodGet, "/knowledge-base/KB404", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}
