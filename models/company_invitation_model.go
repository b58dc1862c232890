package models

import (
	"time"
	"github.com/google/uuid"
)

type CompanyInvitation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	InviteCode  string    `gorm:"size:10;not null;unique" json:"invite_code"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`

	CompanyID *uuid.UUID `json:"company_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
