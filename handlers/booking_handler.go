package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/notifications"
	"github.com/infplatform/inf_backend/services"
)

type CreateBookingRequest struct {
	SlotID string `json:"slot_id" validate:"required,uuid"`
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slotID, _ := uuid.Parse(req.SlotID)

	booking, err := services.BookSlot(studentID, slotID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	go func() {
		var full models.Booking
		if err := database.DB.Preload("Student").Preload("Slot.Company").Preload("Slot.Session").First(&full, "id = ?", booking.ID).Error; err == nil {
			notifications.SendEmail(full.Student.FullName, full.Student.Email,
				"Your Interview is Booked!",
				"<h1>Interview Confirmed</h1><p>Your speed-recruiting interview with "+full.Slot.Company.Name+" at "+full.Slot.StartTime.Format("15:04")+" is confirmed. See you there!</p>")
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Interview booked successfully.",
		"booking": booking,
	})
}

func CancelBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	if err := services.CancelBooking(studentID, bookingID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled. The slot is available again."})
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	database.DB.
		Preload("Slot.Company").
		Preload("Slot.Offer").
		Preload("Slot.Session").
		Where("student_id = ?", studentID).
		Order("event_slots.start_time asc").
		Joins("JOIN event_slots on bookings.slot_id = event_slots.id").
		Find(&bookings)

	return c.JSON(bookings)
}
