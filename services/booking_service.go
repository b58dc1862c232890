package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/scheduling"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingStatusResult struct {
	Phase          scheduling.Phase `json:"phase"`
	Quota          int              `json:"quota"`
	ConfirmedCount int              `json:"confirmed_count"`
	Remaining      int              `json:"remaining"`
}

// BookSlot atomically claims one unit of a slot's capacity for a student.
// The slot row is locked for the whole decision, so concurrent requests for
// the last seat serialize: exactly one inserts, the rest get ErrSlotFull.
// Phase and quota are re-resolved inside the transaction, never trusted
// from the UI pre-flight.
func BookSlot(studentID, slotID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking

	err := withRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var slot models.EventSlot
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, "id = ?", slotID).Error; err != nil {
				return err
			}

			var session models.Session
			if err := tx.First(&session, "id = ?", slot.SessionID).Error; err != nil {
				return err
			}
			var event models.Event
			if err := tx.First(&event, "id = ?", session.EventID).Error; err != nil {
				return err
			}

			resolved := scheduling.ResolvePhase(event.PhaseConfig(), time.Now())

			confirmed, err := confirmedBookingCount(tx, studentID, event.ID)
			if err != nil {
				return err
			}

			var duplicate int64
			if err := tx.Model(&models.Booking{}).
				Where("slot_id = ? AND student_id = ? AND status = ?", slot.ID, studentID, "confirmed").
				Count(&duplicate).Error; err != nil {
				return err
			}

			var overlap int64
			if err := eventBookingsQuery(tx, studentID, event.ID).
				Where("event_slots.start_time < ? AND ? < event_slots.end_time", slot.EndTime, slot.StartTime).
				Count(&overlap).Error; err != nil {
				return err
			}

			var occupancy int64
			if err := tx.Model(&models.Booking{}).
				Where("slot_id = ? AND status = ?", slot.ID, "confirmed").
				Count(&occupancy).Error; err != nil {
				return err
			}

			snapshot := scheduling.BookingSnapshot{
				SlotActive:     slot.IsActive,
				SessionActive:  session.IsActive,
				SlotStart:      slot.StartTime,
				SlotEnd:        slot.EndTime,
				Capacity:       slot.Capacity,
				Occupancy:      int(occupancy),
				ConfirmedCount: confirmed,
				AlreadyBooked:  duplicate > 0,
				OverlapCount:   int(overlap),
			}
			if err := scheduling.DecideBooking(resolved, snapshot); err != nil {
				return err
			}

			booking = models.Booking{
				SlotID:    slot.ID,
				StudentID: studentID,
				Status:    "confirmed",
			}
			return tx.Create(&booking).Error
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Booking %s confirmed: student %s, slot %s", booking.ID, studentID, slotID)
	return &booking, nil
}

// CancelBooking flips a confirmed booking to cancelled, immediately freeing
// one capacity unit on the slot and one quota unit for the student.
func CancelBooking(studentID, bookingID uuid.UUID) error {
	return withRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var booking models.Booking
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
				return err
			}
			if booking.StudentID != studentID {
				return ErrForbidden
			}
			if booking.Status != "confirmed" {
				return ErrBookingNotCancellable
			}

			var slot models.EventSlot
			if err := tx.First(&slot, "id = ?", booking.SlotID).Error; err != nil {
				return err
			}
			if slot.StartTime.Before(time.Now()) {
				return ErrBookingNotCancellable
			}

			booking.Status = "cancelled"
			return tx.Save(&booking).Error
		})
	})
}

// BookingStatus reports the resolved phase, quota and remaining allowance
// for the UI pre-flight. Informational only: BookSlot re-checks everything.
func BookingStatus(studentID, eventID uuid.UUID) (*BookingStatusResult, error) {
	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resolved := scheduling.ResolvePhase(event.PhaseConfig(), time.Now())

	confirmed, err := confirmedBookingCount(database.DB, studentID, eventID)
	if err != nil {
		return nil, err
	}

	remaining := resolved.Quota - confirmed
	if remaining < 0 || !resolved.Open() {
		remaining = 0
	}

	return &BookingStatusResult{
		Phase:          resolved.Phase,
		Quota:          resolved.Quota,
		ConfirmedCount: confirmed,
		Remaining:      remaining,
	}, nil
}

func confirmedBookingCount(tx *gorm.DB, studentID, eventID uuid.UUID) (int, error) {
	var count int64
	err := eventBookingsQuery(tx, studentID, eventID).Count(&count).Error
	return int(count), err
}

// eventBookingsQuery scopes a student's confirmed bookings to one event via
// the slot and session joins.
func eventBookingsQuery(tx *gorm.DB, studentID, eventID uuid.UUID) *gorm.DB {
	return tx.Model(&models.Booking{}).
		Joins("JOIN event_slots ON event_slots.id = bookings.slot_id").
		Joins("JOIN sessions ON sessions.id = event_slots.session_id").
		Where("bookings.student_id = ? AND bookings.status = ? AND sessions.event_id = ?", studentID, "confirmed", eventID)
}
