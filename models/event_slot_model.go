package models

import (
	"time"
	"github.com/google/uuid"
)

type EventSlot struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID uuid.UUID  `gorm:"not null;index" json:"session_id"`
	CompanyID uuid.UUID  `gorm:"not null;index" json:"company_id"`
	OfferID   *uuid.UUID `json:"offer_id"`
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   time.Time  `gorm:"not null" json:"end_time"`
	Capacity  int        `gorm:"not null;default:1" json:"capacity"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`

	Session  Session   `gorm:"foreignkey:SessionID" json:"session,omitempty"`
	Company  Company   `gorm:"foreignkey:CompanyID" json:"company,omitempty"`
	Offer    *Offer    `gorm:"foreignkey:OfferID" json:"offer,omitempty"`
	Bookings []Booking `gorm:"foreignkey:SlotID" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
