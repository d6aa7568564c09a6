package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/umer837/ConnectPro/db"
	"github.com/umer837/ConnectPro/models"
	"github.com/umer837/ConnectPro/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every day at 9:00 to remind clients of tomorrow's events
	_, err := c.AddFunc("0 9 * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for confirmed bookings with an event tomorrow
func sendBookingReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Client").Preload("Service").Preload("Provider").
		Where("status = ? AND event_date >= ? AND event_date < ?", models.StatusConfirmed, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Event - %s", booking.Service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Event Date:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The ConnectPro Team</p>
	`, booking.Client.Name, booking.Service.Title, booking.Provider.Name,
		booking.EventDate.Format("2006-01-02 15:04"),
		booking.EventLocation,
		booking.Status)

	return utils.SendEmail(booking.Client.Email, subject, body)
}
