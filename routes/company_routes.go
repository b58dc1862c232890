package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/handlers"
	"github.com/infplatform/inf_backend/middleware"
)

func CompanyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	company := api.Group("/company", middleware.Protected(), middleware.CompanyRequired())
	company.Get("/me", handlers.GetMyCompany)
	company.Put("/me", handlers.UpdateMyCompany)
	company.Get("/slots", handlers.GetMyCompanySlots)
	company.Put("/slots/:slotId/offer", handlers.AssignOfferToSlot)

	offers := company.Group("/offers")
	offers.Post("", handlers.CreateOffer)
	offers.Put("/:offerId", handlers.UpdateOffer)
	offers.Delete("/:offerId", handlers.DeactivateOffer)
}
