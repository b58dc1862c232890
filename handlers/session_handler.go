package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/scheduling"
	"github.com/infplatform/inf_backend/services"
)

type SessionRequest struct {
	EventID         string `json:"event_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required"`
	StartTime       string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime         string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1"`
	BufferMinutes   int    `json:"buffer_minutes" validate:"min=0"`
	Capacity        int    `json:"capacity" validate:"required,min=1"`
}

// validateSessionTiming rejects malformed configurations before anything is
// persisted, so slot generation never sees them.
func validateSessionTiming(start, end time.Time, durationMinutes, bufferMinutes, capacity int) error {
	if !end.After(start) {
		return scheduling.ErrInvalidConfiguration
	}
	_, err := scheduling.CalculateSlots(start, end, durationMinutes, bufferMinutes, capacity)
	return err
}

func CreateSession(c *fiber.Ctx) error {
	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eventID, _ := uuid.Parse(req.EventID)
	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if err := validateSessionTiming(startTime, endTime, req.DurationMinutes, req.BufferMinutes, req.Capacity); err != nil {
		return serviceErrorResponse(c, err)
	}

	session := models.Session{
		EventID:         eventID,
		Name:            req.Name,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: req.DurationMinutes,
		BufferMinutes:   req.BufferMinutes,
		Capacity:        req.Capacity,
		IsActive:        true,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func ListEventSessions(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var sessions []models.Session
	database.DB.Where("event_id = ? AND is_active = ?", eventID, true).Order("start_time asc").Find(&sessions)
	return c.JSON(sessions)
}

func UpdateSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.Session
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if err := validateSessionTiming(startTime, endTime, req.DurationMinutes, req.BufferMinutes, req.Capacity); err != nil {
		return serviceErrorResponse(c, err)
	}

	session.Name = req.Name
	session.StartTime = startTime
	session.EndTime = endTime
	session.DurationMinutes = req.DurationMinutes
	session.BufferMinutes = req.BufferMinutes
	session.Capacity = req.Capacity
	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	return c.JSON(fiber.Map{
		"session": session,
		"message": "Session updated. Regenerate its slots to apply the new timing.",
	})
}

func DeleteSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.Session
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	// Deleting a session cascades to its generated slots.
	if err := database.DB.Select("Slots").Delete(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete session"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func RegenerateSessionSlots(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	result, err := services.RegenerateSessionSlots(sessionID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return c.JSON(result)
}

func RegenerateEventSlots(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	result, err := services.RegenerateEventSlots(eventID)
	if err != nil {
		if errors.Is(err, services.ErrRegenerationPartialFailure) {
			// Never dressed up as a full success: the admin sees exactly
			// which sessions need a follow-up run.
			return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
				"message": "Some sessions could not be regenerated",
				"result":  result,
			})
		}
		return serviceErrorResponse(c, err)
	}
	return c.JSON(result)
}

type INFSlotRequest struct {
	Session1Start string `json:"session1_start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Session1End   string `json:"session1_end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Session2Start string `json:"session2_start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Session2End   string `json:"session2_end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func GenerateINFSlots(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event id"})
	}

	var req INFSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	s1Start, _ := time.Parse(time.RFC3339, req.Session1Start)
	s1End, _ := time.Parse(time.RFC3339, req.Session1End)
	s2Start, _ := time.Parse(time.RFC3339, req.Session2Start)
	s2End, _ := time.Parse(time.RFC3339, req.Session2End)

	result, err := services.GenerateINFSlots(eventID, s1Start, s1End, s2Start, s2End)
	if err != nil {
		return serviceErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
