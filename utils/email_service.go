// utils/email_service.go
package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"github.com/oohdesk/oohdesk_backend/models"
)

// NotifyAdminOfInquiry emails the admin inbox about a newly submitted inquiry.
// Failures are logged, not surfaced; the inquiry is already stored.
func NotifyAdminOfInquiry(inquiry *models.Inquiry) {
	adminEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if adminEmail == "" {
		return
	}

	subject := fmt.Sprintf("New %s inquiry from %s", inquiry.Type, inquiry.Name)
	body := fmt.Sprintf(
		"A new %s inquiry has arrived.\n\nName: %s\nEmail: %s\nPhone: %s\n\nOpen the dashboard to respond.",
		inquiry.Type, inquiry.Name, inquiry.Email, inquiry.Phone,
	)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	if smtpHost == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send inquiry notification email: %v", err)
	}
}
