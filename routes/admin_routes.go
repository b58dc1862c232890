package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/handlers"
	"github.com/infplatform/inf_backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	events := admin.Group("/events")
	events.Post("", handlers.CreateEvent)
	events.Put("/:eventId", handlers.UpdateEvent)
	events.Delete("/:eventId", handlers.DeactivateEvent)
	events.Put("/:eventId/phase-config", handlers.UpdatePhaseConfig)
	events.Post("/:eventId/companies", handlers.AddCompanyToEvent)
	events.Delete("/:eventId/companies/:companyId", handlers.RemoveCompanyFromEvent)
	events.Post("/:eventId/regenerate-slots", handlers.RegenerateEventSlots)
	events.Post("/:eventId/generate-inf-slots", handlers.GenerateINFSlots)

	sessions := admin.Group("/sessions")
	sessions.Post("", handlers.CreateSession)
	sessions.Put("/:sessionId", handlers.UpdateSession)
	sessions.Delete("/:sessionId", handlers.DeleteSession)
	sessions.Post("/:sessionId/regenerate-slots", handlers.RegenerateSessionSlots)

	admin.Post("/invitations", handlers.InviteCompany)
	admin.Get("/invitations", handlers.ListInvitations)
	admin.Get("/companies", handlers.ListCompanies)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)

	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
}
