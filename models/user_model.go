package models

import (
	"time"
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	University     *string `gorm:"size:255" json:"university"`
	Degree         *string `gorm:"size:255" json:"degree"`
	GraduationYear *int    `json:"graduation_year"`

	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Company   *Company   `gorm:"foreignkey:CompanyID" json:"company,omitempty"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`
	IsActive                    bool       `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
