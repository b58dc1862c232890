package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/infplatform/inf_backend/scheduling"
)

type Event struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Date     time.Time `gorm:"not null" json:"date"`
	Location *string   `gorm:"size:255" json:"location"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	// Phase configuration governing booking eligibility.
	PhaseMode         string     `gorm:"size:20;not null;default:'manual'" json:"phase_mode"`
	CurrentPhase      int        `gorm:"not null;default:0" json:"current_phase"`
	Phase1Start       *time.Time `json:"phase1_start"`
	Phase1End         *time.Time `json:"phase1_end"`
	Phase2Start       *time.Time `json:"phase2_start"`
	Phase2End         *time.Time `json:"phase2_end"`
	Phase1MaxBookings int        `gorm:"not null;default:3" json:"phase1_max_bookings"`
	Phase2MaxBookings int        `gorm:"not null;default:5" json:"phase2_max_bookings"`

	Phase1AnnouncedAt *time.Time `json:"-"`
	Phase2AnnouncedAt *time.Time `json:"-"`

	Sessions  []Session  `gorm:"foreignkey:EventID" json:"sessions,omitempty"`
	Companies []*Company `gorm:"many2many:event_companies;" json:"companies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhaseConfig snapshots the event's phase columns for the resolver.
func (e *Event) PhaseConfig() scheduling.PhaseConfig {
	return scheduling.PhaseConfig{
		Mode:              e.PhaseMode,
		CurrentPhase:      e.CurrentPhase,
		Phase1Start:       e.Phase1Start,
		Phase1End:         e.Phase1End,
		Phase2Start:       e.Phase2Start,
		Phase2End:         e.Phase2End,
		Phase1MaxBookings: e.Phase1MaxBookings,
		Phase2MaxBookings: e.Phase2MaxBookings,
	}
}
