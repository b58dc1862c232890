package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
)

type SlotWithOccupancy struct {
	models.EventSlot
	ConfirmedBookings int  `json:"confirmed_bookings"`
	Bookable          bool `json:"bookable"`
}

// ListCompanySlots is the student-facing slot browser: active future slots
// of one company within a session, with their current occupancy. Occupancy
// here is informational; the booking transaction re-counts under lock.
func ListCompanySlots(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	companyID := c.Params("companyId")

	var slots []models.EventSlot
	database.DB.
		Preload("Offer").
		Where("session_id = ? AND company_id = ? AND is_active = ? AND start_time > ?", sessionID, companyID, true, time.Now()).
		Order("start_time asc").
		Find(&slots)

	response := make([]SlotWithOccupancy, 0, len(slots))
	for _, slot := range slots {
		var confirmed int64
		database.DB.Model(&models.Booking{}).Where("slot_id = ? AND status = ?", slot.ID, "confirmed").Count(&confirmed)
		response = append(response, SlotWithOccupancy{
			EventSlot:         slot,
			ConfirmedBookings: int(confirmed),
			Bookable:          int(confirmed) < slot.Capacity,
		})
	}

	return c.JSON(response)
}

func companyIDFromClaims(c *fiber.Ctx) (uuid.UUID, bool) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	raw, ok := claims["company_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	companyID, err := uuid.Parse(raw)
	return companyID, err == nil
}

// GetMyCompanySlots shows a company its own schedule with attendees.
func GetMyCompanySlots(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}

	var slots []models.EventSlot
	database.DB.
		Preload("Session").
		Preload("Offer").
		Preload("Bookings", "status = ?", "confirmed").
		Preload("Bookings.Student").
		Where("company_id = ?", companyID).
		Order("start_time asc").
		Find(&slots)

	return c.JSON(slots)
}

type AssignOfferRequest struct {
	OfferID *string `json:"offer_id" validate:"omitempty,uuid"`
}

// AssignOfferToSlot lets a company pin one of its offers to a slot, or
// clear it by sending null.
func AssignOfferToSlot(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}
	slotID := c.Params("slotId")

	var req AssignOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var slot models.EventSlot
	if err := database.DB.First(&slot, "id = ? AND company_id = ?", slotID, companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot not found or not yours"})
	}

	if req.OfferID == nil {
		slot.OfferID = nil
	} else {
		offerID, _ := uuid.Parse(*req.OfferID)
		var offer models.Offer
		if err := database.DB.First(&offer, "id = ? AND company_id = ?", offerID, companyID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found or not yours"})
		}
		slot.OfferID = &offerID
	}

	if err := database.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update slot"})
	}
	return c.JSON(slot)
}
