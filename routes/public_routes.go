package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	events := api.Group("/events")
	events.Get("", handlers.ListEvents)
	events.Get("/:eventId", handlers.GetEvent)
	events.Get("/:eventId/phase", handlers.GetEventPhase)
	events.Get("/:eventId/sessions", handlers.ListEventSessions)
	events.Get("/:eventId/companies", handlers.ListEventCompanies)

	api.Get("/sessions/:sessionId/companies/:companyId/slots", handlers.ListCompanySlots)

	api.Post("/companies/accept-invitation", handlers.AcceptInvitation)
}
