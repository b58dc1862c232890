package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/handlers"
	"github.com/infplatform/inf_backend/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected(), middleware.StudentRequired())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Delete("/:bookingId", handlers.CancelBooking)

	api.Get("/events/:eventId/my-booking-status", middleware.Protected(), middleware.StudentRequired(), handlers.GetMyBookingStatus)
}
