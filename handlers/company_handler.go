package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AcceptInvitationRequest struct {
	InviteCode string `json:"invite_code" validate:"required"`
	FullName   string `json:"full_name" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
}

// AcceptInvitation turns a pending invitation into an active company plus
// its first company user, in one transaction.
func AcceptInvitation(c *fiber.Ctx) error {
	var req AcceptInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var company models.Company
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var invitation models.CompanyInvitation
		if err := tx.Where("invite_code = ? AND status = ?", req.InviteCode, "pending").First(&invitation).Error; err != nil {
			return errors.New("invalid invitation code")
		}
		if invitation.ExpiresAt.Before(time.Now()) {
			return errors.New("invitation has expired")
		}

		company = models.Company{
			Name:   invitation.CompanyName,
			Status: "active",
		}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		user := models.User{
			FullName:  req.FullName,
			Email:     req.Email,
			Password:  string(hashedPassword),
			Role:      "company",
			CompanyID: &company.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("email already exists")
			}
			return err
		}

		invitation.Status = "accepted"
		invitation.CompanyID = &company.ID
		return tx.Save(&invitation).Error
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Invitation accepted. You can now log in.",
		"company": company,
	})
}

type UpdateCompanyRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty"`
	SlotCapacity *int    `json:"slot_capacity,omitempty" validate:"omitempty,min=1"`
}

func UpdateMyCompany(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}

	var req UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var company models.Company
	if err := database.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Website = req.Website
	company.SlotCapacity = req.SlotCapacity
	database.DB.Save(&company)

	return c.JSON(company)
}

func GetMyCompany(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}

	var company models.Company
	if err := database.DB.Preload("Offers").First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.JSON(company)
}

func ListEventCompanies(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var companies []models.Company
	database.DB.
		Preload("Offers", "is_active = ?", true).
		Joins("JOIN event_companies ON event_companies.company_id = companies.id").
		Where("event_companies.event_id = ? AND companies.status = ?", eventID, "active").
		Order("companies.name asc").
		Find(&companies)

	return c.JSON(companies)
}

type OfferRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	OfferType   string  `json:"offer_type" validate:"required,oneof=internship apprenticeship graduate"`
	Location    *string `json:"location,omitempty"`
}

func CreateOffer(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}

	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	offer := models.Offer{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		OfferType:   req.OfferType,
		Location:    req.Location,
		IsActive:    true,
	}
	if err := database.DB.Create(&offer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create offer"})
	}
	return c.Status(fiber.StatusCreated).JSON(offer)
}

func UpdateOffer(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}
	offerID := c.Params("offerId")

	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var offer models.Offer
	if err := database.DB.First(&offer, "id = ? AND company_id = ?", offerID, companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found or not yours"})
	}

	offer.Title = req.Title
	offer.Description = req.Description
	offer.OfferType = req.OfferType
	offer.Location = req.Location
	database.DB.Save(&offer)

	return c.JSON(offer)
}

func DeactivateOffer(c *fiber.Ctx) error {
	companyID, ok := companyIDFromClaims(c)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No company attached to this account"})
	}
	offerID := c.Params("offerId")

	var offer models.Offer
	if err := database.DB.First(&offer, "id = ? AND company_id = ?", offerID, companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found or not yours"})
	}

	offer.IsActive = false
	database.DB.Save(&offer)

	return c.SendStatus(fiber.StatusNoContent)
}
