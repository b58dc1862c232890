package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/infplatform/inf_backend/database"
	"github.com/infplatform/inf_backend/models"
	"github.com/infplatform/inf_backend/notifications"
)

func SendInterviewReminders() {
	log.Println("Running job: SendInterviewReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("Student").
		Preload("Slot.Company").
		Where("bookings.status = ? AND event_slots.start_time BETWEEN ? AND ?", "confirmed", lowerBound, upperBound).
		Joins("JOIN event_slots on bookings.slot_id = event_slots.id").
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("Error checking for upcoming interviews: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Interview Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Interview Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your speed-recruiting interview with %s starts at %s. Please be at the company's booth a few minutes early.</p>",
			booking.Slot.Company.Name,
			booking.Slot.StartTime.Format(time.Kitchen),
		)

		go notifications.SendEmail(booking.Student.FullName, booking.Student.Email, emailSubject, emailBody)
	}
}
