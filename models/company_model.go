package models

import (
	"time"
	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Website     *string   `gorm:"size:255" json:"website"`
	LogoURL     *string   `gorm:"size:255" json:"logo_url"`
	Status      string    `gorm:"size:20;not null;default:'invited'" json:"status"`

	// Per-slot capacity override; falls back to the session capacity when nil.
	SlotCapacity *int `json:"slot_capacity"`

	Offers []Offer `gorm:"foreignkey:CompanyID" json:"offers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
