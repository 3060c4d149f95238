package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// BookingEmailBody builds the shared HTML body for booking notification mails.
func BookingEmailBody(recipientName, intro, listingTitle, counterpartyLabel, counterpartyName, serviceDateTime, status string, totalAmount float64) string {
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>%s:</strong> %s</li>
			<li><strong>Scheduled For:</strong> %s</li>
			<li><strong>Total Amount:</strong> %.2f</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Thank you for using Fixly!</p>
		<p>Best regards,</p>
		<p>The Fixly Team</p>
	`, recipientName, intro, listingTitle, counterpartyLabel, counterpartyName, serviceDateTime, totalAmount, status)
}
