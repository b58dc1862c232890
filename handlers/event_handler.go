package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/scheduling"
	"github.com/infplatform/inf_backend/services"
)

type EventRequest struct {
	Name     string  `json:"name" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Location *string `json:"location,omitempty"`
}

func CreateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse(time.RFC3339, req.Date)
	event := models.Event{
		Name:     req.Name,
		Date:     date,
		Location: req.Location,
		IsActive: true,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func ListEvents(c *fiber.Ctx) error {
	var events []models.Event
	database.DB.Where("is_active = ?", true).Order("date asc").Find(&events)
	return c.JSON(events)
}

func GetEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var event models.Event
	if err := database.DB.Preload("Sessions").Preload("Companies").First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	return c.JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	date, _ := time.Parse(time.RFC3339, req.Date)
	event.Name = req.Name
	event.Date = date
	event.Location = req.Location
	database.DB.Save(&event)

	return c.JSON(event)
}

func DeactivateEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	event.IsActive = false
	database.DB.Save(&event)

	return c.SendStatus(fiber.StatusNoContent)
}

type PhaseConfigRequest struct {
	PhaseMode         string  `json:"phase_mode" validate:"required,oneof=manual date_based"`
	CurrentPhase      int     `json:"current_phase" validate:"min=0,max=2"`
	Phase1Start       *string `json:"phase1_start,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Phase1End         *string `json:"phase1_end,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Phase2Start       *string `json:"phase2_start,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Phase2End         *string `json:"phase2_end,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Phase1MaxBookings int     `json:"phase1_max_bookings" validate:"min=0"`
	Phase2MaxBookings int     `json:"phase2_max_bookings" validate:"min=0"`
}

func parsePhaseTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

// UpdatePhaseConfig validates the whole configuration before persisting
// anything: a malformed phase setup must never reach the booking path.
func UpdatePhaseConfig(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var req PhaseConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	cfg := scheduling.PhaseConfig{
		Mode:              req.PhaseMode,
		CurrentPhase:      req.CurrentPhase,
		Phase1Start:       parsePhaseTime(req.Phase1Start),
		Phase1End:         parsePhaseTime(req.Phase1End),
		Phase2Start:       parsePhaseTime(req.Phase2Start),
		Phase2End:         parsePhaseTime(req.Phase2End),
		Phase1MaxBookings: req.Phase1MaxBookings,
		Phase2MaxBookings: req.Phase2MaxBookings,
	}
	if err := scheduling.ValidatePhaseConfig(cfg); err != nil {
		return serviceErrorResponse(c, err)
	}

	event.PhaseMode = cfg.Mode
	event.CurrentPhase = cfg.CurrentPhase
	event.Phase1Start = cfg.Phase1Start
	event.Phase1End = cfg.Phase1End
	event.Phase2Start = cfg.Phase2Start
	event.Phase2End = cfg.Phase2End
	event.Phase1MaxBookings = cfg.Phase1MaxBookings
	event.Phase2MaxBookings = cfg.Phase2MaxBookings
	if err := database.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update phase configuration"})
	}

	resolved := scheduling.ResolvePhase(cfg, time.Now())
	return c.JSON(fiber.Map{
		"event":          event,
		"resolved_phase": resolved.Phase,
		"quota":          resolved.Quota,
	})
}

// GetEventPhase is the public phase status the booking UI polls.
func GetEventPhase(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	resolved := scheduling.ResolvePhase(event.PhaseConfig(), time.Now())
	return c.JSON(fiber.Map{
		"phase":        resolved.Phase,
		"quota":        resolved.Quota,
		"booking_open": resolved.Open(),
	})
}

// GetMyBookingStatus adds the caller's confirmed count and remaining
// allowance to the phase status.
func GetMyBookingStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	status, err := services.BookingStatus(studentID, eventID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return c.JSON(status)
}
