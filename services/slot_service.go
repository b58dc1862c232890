package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/scheduling"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	infInterviewMinutes = 10
	infBufferMinutes    = 5
	infSlotCapacity     = 2
)

type RegenerationResult struct {
	SlotsCreated      int `json:"slots_created"`
	SlotsDeleted      int `json:"slots_deleted"`
	SlotsPreserved    int `json:"slots_preserved"`
	CompaniesAffected int `json:"companies_affected"`
}

type SessionRegenerationOutcome struct {
	SessionID   uuid.UUID           `json:"session_id"`
	SessionName string              `json:"session_name"`
	Result      *RegenerationResult `json:"result,omitempty"`
	Error       string              `json:"error,omitempty"`
}

type EventRegenerationResult struct {
	Sessions          []SessionRegenerationOutcome `json:"sessions"`
	TotalSlotsCreated int                          `json:"total_slots_created"`
	FailedSessions    int                          `json:"failed_sessions"`
}

type INFGenerationResult struct {
	TotalSlotsCreated  int `json:"total_slots_created"`
	CompaniesProcessed int `json:"companies_processed"`
	Session1Slots      int `json:"session1_slots"`
	Session2Slots      int `json:"session2_slots"`
}

// RegenerateSessionSlots rebuilds the slot set of one session for every
// company participating in its event, inside a single transaction. Slots
// holding confirmed bookings survive untouched; everything else is replaced
// by the freshly calculated set.
func RegenerateSessionSlots(sessionID uuid.UUID) (*RegenerationResult, error) {
	var result RegenerationResult

	err := withRetry(func() error {
		result = RegenerationResult{}
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var session models.Session
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, "id = ?", sessionID).Error; err != nil {
				return err
			}

			candidates, err := scheduling.CalculateSlots(
				session.StartTime, session.EndTime,
				session.DurationMinutes, session.BufferMinutes, session.Capacity,
			)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				log.Printf("⚠️ Session %s window produces no slots, nothing to generate", session.ID)
			}

			companies, err := participatingCompanies(tx, session.EventID)
			if err != nil {
				return err
			}

			for _, company := range companies {
				created, deleted, preserved, err := regenerateCompanySlots(tx, &session, &company, candidates)
				if err != nil {
					return err
				}
				result.SlotsCreated += created
				result.SlotsDeleted += deleted
				result.SlotsPreserved += preserved
			}
			result.CompaniesAffected = len(companies)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Regenerated session %s: %d created, %d deleted, %d preserved across %d companies",
		sessionID, result.SlotsCreated, result.SlotsDeleted, result.SlotsPreserved, result.CompaniesAffected)
	return &result, nil
}

// RegenerateEventSlots regenerates every active session of an event. Each
// session is its own transaction; a failing session never rolls back the
// others, and partial success is reported as such instead of being
// presented as a full success.
func RegenerateEventSlots(eventID uuid.UUID) (*EventRegenerationResult, error) {
	var sessions []models.Session
	if err := database.DB.Where("event_id = ? AND is_active = ?", eventID, true).Order("start_time asc").Find(&sessions).Error; err != nil {
		return nil, err
	}

	result := &EventRegenerationResult{}
	for _, session := range sessions {
		outcome := SessionRegenerationOutcome{SessionID: session.ID, SessionName: session.Name}

		regen, err := RegenerateSessionSlots(session.ID)
		if err != nil {
			log.Printf("🔥 Regeneration failed for session %s (%s): %v", session.Name, session.ID, err)
			outcome.Error = err.Error()
			result.FailedSessions++
		} else {
			outcome.Result = regen
			result.TotalSlotsCreated += regen.SlotsCreated
		}
		result.Sessions = append(result.Sessions, outcome)
	}

	if result.FailedSessions > 0 {
		return result, ErrRegenerationPartialFailure
	}
	return result, nil
}

// GenerateINFSlots creates the fixed two-session INF format for an event:
// two windows cut into 10-minute interviews with 5-minute buffers at
// capacity 2, generated for every participating company in one transaction.
func GenerateINFSlots(eventID uuid.UUID, window1Start, window1End, window2Start, window2End time.Time) (*INFGenerationResult, error) {
	var result INFGenerationResult

	err := withRetry(func() error {
		result = INFGenerationResult{}
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var event models.Event
			if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
				return err
			}

			windows := []struct {
				name       string
				start, end time.Time
				created    *int
			}{
				{"INF Session 1", window1Start, window1End, &result.Session1Slots},
				{"INF Session 2", window2Start, window2End, &result.Session2Slots},
			}

			companies, err := participatingCompanies(tx, event.ID)
			if err != nil {
				return err
			}

			for _, w := range windows {
				candidates, err := scheduling.CalculateSlots(w.start, w.end, infInterviewMinutes, infBufferMinutes, infSlotCapacity)
				if err != nil {
					return err
				}

				session := models.Session{
					EventID:         event.ID,
					Name:            w.name,
					StartTime:       w.start,
					EndTime:         w.end,
					DurationMinutes: infInterviewMinutes,
					BufferMinutes:   infBufferMinutes,
					Capacity:        infSlotCapacity,
					IsActive:        true,
				}
				if err := tx.Create(&session).Error; err != nil {
					return err
				}

				for _, company := range companies {
					created, _, _, err := regenerateCompanySlots(tx, &session, &company, candidates)
					if err != nil {
						return err
					}
					*w.created += created
				}
			}

			result.TotalSlotsCreated = result.Session1Slots + result.Session2Slots
			result.CompaniesProcessed = len(companies)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ INF slots generated for event %s: %d total (%d + %d) across %d companies",
		eventID, result.TotalSlotsCreated, result.Session1Slots, result.Session2Slots, result.CompaniesProcessed)
	return &result, nil
}

func participatingCompanies(tx *gorm.DB, eventID uuid.UUID) ([]models.Company, error) {
	var companies []models.Company
	err := tx.
		Joins("JOIN event_companies ON event_companies.company_id = companies.id").
		Where("event_companies.event_id = ? AND companies.status = ?", eventID, "active").
		Find(&companies).Error
	return companies, err
}

// regenerateCompanySlots applies one company's regeneration plan inside the
// caller's transaction. Existing slots are locked so a booking arriving
// mid-regeneration is serialized behind the delete.
func regenerateCompanySlots(tx *gorm.DB, session *models.Session, company *models.Company, candidates []scheduling.SlotRange) (created, deleted, preserved int, err error) {
	var slots []models.EventSlot
	if err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("session_id = ? AND company_id = ?", session.ID, company.ID).
		Find(&slots).Error; err != nil {
		return 0, 0, 0, err
	}

	existing := make([]scheduling.ExistingSlot, 0, len(slots))
	for _, slot := range slots {
		var confirmed int64
		if err = tx.Model(&models.Booking{}).
			Where("slot_id = ? AND status = ?", slot.ID, "confirmed").
			Count(&confirmed).Error; err != nil {
			return 0, 0, 0, err
		}
		existing = append(existing, scheduling.ExistingSlot{
			ID:                slot.ID,
			Start:             slot.StartTime,
			End:               slot.EndTime,
			ConfirmedBookings: int(confirmed),
		})
	}

	plan := scheduling.PlanRegeneration(candidates, existing)

	if len(plan.DeleteIDs) > 0 {
		if err = tx.Where("id IN ?", plan.DeleteIDs).Delete(&models.EventSlot{}).Error; err != nil {
			return 0, 0, 0, err
		}
	}

	capacity := 0
	if company.SlotCapacity != nil && *company.SlotCapacity > 0 {
		capacity = *company.SlotCapacity
	}
	for _, candidate := range plan.Create {
		slot := models.EventSlot{
			SessionID: session.ID,
			CompanyID: company.ID,
			StartTime: candidate.Start,
			EndTime:   candidate.End,
			Capacity:  candidate.Capacity,
			IsActive:  true,
		}
		if capacity > 0 {
			slot.Capacity = capacity
		}
		if err = tx.Create(&slot).Error; err != nil {
			return 0, 0, 0, err
		}
	}

	return len(plan.Create), len(plan.DeleteIDs), len(plan.PreservedIDs), nil
}
