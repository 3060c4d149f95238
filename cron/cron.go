package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/harshkathrotiya/fixlyweb-sub001/db"
	"github.com/harshkathrotiya/fixlyweb-sub001/models"
	"github.com/harshkathrotiya/fixlyweb-sub001/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for upcoming confirmed bookings and sends reminders
func sendBookingReminders() {
	var bookings []models.Booking
	now := time.Now()
	// Look for bookings starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Customer").Preload("ServiceListing").Preload("ServiceProvider.User").
		Where("booking_status = ? AND service_date_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
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
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.ServiceListing.Title)
	body := utils.BookingEmailBody(
		booking.Customer.Name,
		"This is a reminder for your upcoming service booking scheduled in one hour.",
		booking.ServiceListing.Title,
		"Provider", booking.ServiceProvider.User.Name,
		booking.ServiceDateTime.Format("2006-01-02 15:04:05"),
		string(booking.BookingStatus),
		booking.TotalAmount,
	)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}
