package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/notifications"
	"github.com/infplatform/inf_backend/scheduling"
)

// AnnouncePhaseOpenings emails students when a date-based booking phase
// opens. Each opening is announced once: the marker column is set in the
// same update that claims the announcement.
func AnnouncePhaseOpenings() {
	log.Println("Running job: AnnouncePhaseOpenings...")

	var events []models.Event
	if err := database.DB.Where("is_active = ? AND phase_mode = ?", true, scheduling.PhaseModeDateBased).Find(&events).Error; err != nil {
		log.Printf("Error loading events for phase announcements: %v", err)
		return
	}

	now := time.Now()
	for i := range events {
		event := &events[i]
		resolved := scheduling.ResolvePhase(event.PhaseConfig(), now)

		switch resolved.Phase {
		case scheduling.PhasePriority:
			if event.Phase1AnnouncedAt == nil {
				announcePhase(event, "Priority booking is open!", resolved.Quota)
				event.Phase1AnnouncedAt = &now
				database.DB.Model(event).Update("phase1_announced_at", now)
			}
		case scheduling.PhaseOpen:
			if event.Phase2AnnouncedAt == nil {
				announcePhase(event, "Open booking has started!", resolved.Quota)
				event.Phase2AnnouncedAt = &now
				database.DB.Model(event).Update("phase2_announced_at", now)
			}
		}
	}
}

func announcePhase(event *models.Event, subject string, quota int) {
	var students []models.User
	if err := database.DB.Where("role = ? AND is_active = ?", "student", true).Find(&students).Error; err != nil {
		log.Printf("Error loading students for phase announcement: %v", err)
		return
	}

	body := fmt.Sprintf(
		"<h1>%s</h1><p>Booking for <b>%s</b> is now open. You can book up to %d interview(s) in this phase. First come, first served!</p>",
		subject, event.Name, quota,
	)
	for _, student := range students {
		go notifications.SendEmail(student.FullName, student.Email, subject, body)
	}

	log.Printf("✅ Announced phase opening for event %s to %d students", event.Name, len(students))
}
