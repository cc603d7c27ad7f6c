package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-portal/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Tickets   *handlers.TicketsHandler
	Assets    *handlers.AssetsHandler
	Knowledge *handlers.KnowledgeHandler
	Stats     *handlers.StatsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/tickets", cfg.Tickets.ListTickets)
	app.Post("/tickets", cfg.Tickets.CreateTicket)

	app.Get("/assets", cfg.Assets.ListAssets)
	app.Post("/assets", cfg.Assets.CreateAsset)

	app.Get("/knowledge-base", cfg.Knowledge.ListArticles)
	app.Get("/knowledge-base/:id", cfg.Knowledge.GetArticle)
	app.Post("/knowledge-base/:id/helpful", cfg.Knowledge.MarkHelpful)

	app.Get("/stats", cfg.Stats.GetStats)
}
