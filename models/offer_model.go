package models

import (
	"time"
	"github.com/google/uuid"
)

type Offer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID `gorm:"not null" json:"company_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	OfferType   string    `gorm:"size:50;not null;default:'internship'" json:"offer_type"`
	Location    *string   `gorm:"size:255" json:"location"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Company Company `gorm:"foreignkey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
