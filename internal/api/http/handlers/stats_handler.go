package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/dto"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/internal/service"
)

// StatsHandler serves the dashboard snapshot.
type StatsHandler struct {
	aggregation *service.AggregationService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(aggregation *service.AggregationService) *StatsHandler {
	return &StatsHandler{aggregation: aggregation}
}

// GetStats GET /stats.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	snapshot, err := h.aggregation.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(statsResponse(snapshot))
}

func statsResponse(snapshot *domain.StatsSnapshot) dto.StatsResponse {
	byCategory := make([]dto.CategoryCount, 0, len(snapshot.ByCategory))
	for _, entry := range snapshot.ByCategory {
		byCategory = append(byCategory, dto.CategoryCount{Category: entry.Category, Count: entry.Count})
	}
	byPriority := make([]dto.PriorityCount, 0, len(snapshot.ByPriority))
	for _, entry := range snapshot.ByPriority {
		byPriority = append(byPriority, dto.PriorityCount{Priority: entry.Priority, Count: entry.Count})
	}
	return dto.StatsResponse{
		TotalTickets:      snapshot.TotalTickets,
		OpenTickets:       snapshot.OpenTickets,
		TotalAssets:       snapshot.TotalAssets,
		ActiveAssets:      snapshot.ActiveAssets,
		TicketsByCategory: byCategory,
		TicketsByPriority: byPriority,
	}
}
