package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rexesezka/ServiceDesk1/internal/api/http/handlers"
	"github.com/Rexesezka/ServiceDesk1/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireActor())

	api.Post("/tickets", cfg.Tickets.CreateTicket)
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Get("/tickets/archive", cfg.Tickets.ListArchive)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Patch("/tickets/:id", auth.RequireSupport(), cfg.Tickets.UpdateTicket)
	api.Patch("/tickets/:id/status", auth.RequireSupport(), cfg.Tickets.UpdateStatus)

	api.Get("/staff/:id/load", auth.RequireSupport(), cfg.Tickets.StaffLoad)

	api.Get("/notifications", cfg.Notifications.List)
	api.Get("/notifications/unread-count", cfg.Notifications.UnreadCount)
	api.Patch("/notifications/:id/read", cfg.Notifications.MarkRead)
}
