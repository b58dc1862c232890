package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/scheduling"
	"github.com/infplatform/inf_backend/services"
	"gorm.io/gorm"
)

// serviceErrorResponse maps core rejections to stable HTTP responses so the
// frontend can render a specific message per reason.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrPhaseClosed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Booking is not open right now", "reason": "phase_closed"})
	case errors.Is(err, scheduling.ErrQuotaExceeded):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You have reached your booking limit for this phase", "reason": "quota_exceeded"})
	case errors.Is(err, scheduling.ErrSlotFull):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This slot has just been filled", "reason": "slot_full"})
	case errors.Is(err, scheduling.ErrDuplicateBooking):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have a booking on this slot", "reason": "duplicate_booking"})
	case errors.Is(err, scheduling.ErrOverlappingBooking):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You already have an interview at this time", "reason": "overlapping_booking"})
	case errors.Is(err, scheduling.ErrSlotInactive), errors.Is(err, scheduling.ErrSessionInactive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This slot is no longer available", "reason": "slot_inactive"})
	case errors.Is(err, scheduling.ErrInvalidConfiguration):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid session or phase configuration", "reason": "invalid_configuration"})
	case errors.Is(err, services.ErrBookingNotCancellable):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This booking can no longer be cancelled", "reason": "not_cancellable"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not have access to this resource"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, services.ErrTransientStore):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Temporary problem talking to the database, please retry", "reason": "transient", "retryable": true})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
