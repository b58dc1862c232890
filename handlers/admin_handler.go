package handlers

import (
	"fmt"
	"time"

	config "github.com/infplatform/inf_backend/configs"
	"github.com/gofiber/fiber/v2"
	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/notifications"
	"github.com/infplatform/inf_backend/utils"
	"gorm.io/gorm"
)

type InviteCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

func InviteCompany(c *fiber.Ctx) error {
	var req InviteCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invitation models.CompanyInvitation
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueInviteCode(tx)
		if err != nil {
			return err
		}
		invitation = models.CompanyInvitation{
			CompanyName: req.CompanyName,
			Email:       req.Email,
			InviteCode:  code,
			Status:      "pending",
			ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
		}
		return tx.Create(&invitation).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invitation"})
	}

	inviteLink := fmt.Sprintf("%s/company/join?code=%s", config.Config("FRONTEND_URL"), invitation.InviteCode)
	go notifications.SendEmail(req.CompanyName, req.Email,
		"You're invited to the INF recruiting event",
		fmt.Sprintf("<h1>Invitation</h1><p>%s has been invited to join our speed-recruiting platform. Use the link below to set up your company account.</p><p><a href='%s'>Join now</a></p>", req.CompanyName, inviteLink),
	)

	return c.Status(fiber.StatusCreated).JSON(invitation)
}

func ListInvitations(c *fiber.Ctx) error {
	var invitations []models.CompanyInvitation
	database.DB.Order("created_at desc").Find(&invitations)
	return c.JSON(invitations)
}

func ListCompanies(c *fiber.Ctx) error {
	var companies []models.Company
	database.DB.Preload("Offers").Order("name asc").Find(&companies)
	return c.JSON(companies)
}

type ParticipationRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

func AddCompanyToEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var req ParticipationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	var company models.Company
	if err := database.DB.First(&company, "id = ?", req.CompanyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	if err := database.DB.Model(&event).Association("Companies").Append(&company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add company to event"})
	}

	return c.JSON(fiber.Map{"message": "Company added to event. Regenerate slots to schedule it."})
}

func RemoveCompanyFromEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")
	companyID := c.Params("companyId")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}
	var company models.Company
	if err := database.DB.First(&company, "id = ?", companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	// Slots already generated for this company keep their bookings; the
	// next regeneration run drops the unbooked ones.
	if err := database.DB.Model(&event).Association("Companies").Delete(&company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove company from event"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	database.DB.Save(&user)

	return c.JSON(fiber.Map{"id": user.ID, "is_active": user.IsActive})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	query := database.DB.
		Preload("Student").
		Preload("Slot.Company").
		Preload("Slot.Session").
		Order("created_at desc")

	if eventID := c.Query("event_id"); eventID != "" {
		query = query.
			Joins("JOIN event_slots ON event_slots.id = bookings.slot_id").
			Joins("JOIN sessions ON sessions.id = event_slots.session_id").
			Where("sessions.event_id = ?", eventID)
	}

	query.Find(&bookings)
	return c.JSON(bookings)
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var studentCount, companyCount, slotCount, bookingCount int64

	database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&studentCount)
	database.DB.Model(&models.Company{}).Where("status = ?", "active").Count(&companyCount)
	database.DB.Model(&models.EventSlot{}).Where("is_active = ?", true).Count(&slotCount)
	database.DB.Model(&models.Booking{}).Where("status = ?", "confirmed").Count(&bookingCount)

	var fillRate float64
	if slotCount > 0 {
		fillRate = float64(bookingCount) / float64(slotCount)
	}

	return c.JSON(fiber.Map{
		"students":           studentCount,
		"active_companies":   companyCount,
		"active_slots":       slotCount,
		"confirmed_bookings": bookingCount,
		"fill_rate":          fillRate,
	})
}
