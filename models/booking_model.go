package models

import (
	"time"
	"github.com/google/uuid"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SlotID    uuid.UUID `gorm:"not null;index" json:"slot_id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	Status    string    `gorm:"size:20;not null;default:'confirmed'" json:"status"`

	Slot    EventSlot `gorm:"foreignkey:SlotID" json:"slot,omitempty"`
	Student User      `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
