package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/quick_stay/models"
	"github.com/anjiri1684/quick_stay/notifications"
	"gorm.io/gorm"
)

type ReminderJob struct {
	DB       *gorm.DB
	Notifier notifications.Sender
}

// Run emails every guest whose stay begins tomorrow. Reminders are best
// effort like all notifications.
func (j *ReminderJob) Run() {
	log.Println("Running job: SendCheckInReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcomingBookings []models.Booking
	err := j.DB.
		Preload("User").
		Preload("Hotel").
		Where("check_in_date = ?", tomorrow).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming check-ins: %v", err)
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending check-in reminder for booking ID: %s", booking.ID)

		emailSubject := "Reminder: Your Stay Starts Tomorrow!"
		emailBody := fmt.Sprintf(
			"<h1>Check-In Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder that your stay at %s begins tomorrow, %s.</p><p>We look forward to welcoming you!</p>",
			booking.User.FullName,
			booking.Hotel.Name,
			booking.CheckInDate.Format("Mon, 02 Jan 2006"),
		)

		go func(b models.Booking) {
			if err := j.Notifier.Send(b.User.FullName, b.User.Email, emailSubject, emailBody); err != nil {
				log.Printf("🔥 Failed to send check-in reminder for %s: %v", b.ID, err)
			}
		}(booking)
	}
}
