package models

import (
	"time"
	"github.com/google/uuid"
)

type Session struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID         uuid.UUID `gorm:"not null" json:"event_id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	StartTime       time.Time `gorm:"not null" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	BufferMinutes   int       `gorm:"not null;default:0" json:"buffer_minutes"`
	Capacity        int       `gorm:"not null;default:1" json:"capacity"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`

	Event Event       `gorm:"foreignkey:EventID" json:"event,omitempty"`
	Slots []EventSlot `gorm:"foreignkey:SessionID;constraint:OnDelete:CASCADE" json:"slots,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
