package utils

import (
	"codelab/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional HTML email through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("Email disabled, skipping send to %s (%s)", to, subject)
		return nil
	}

	from := mail.NewEmail("CodeLab Support", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: status %d", resp.StatusCode)
	}
	return nil
}

// SendVerificationCodeEmail mails the anonymous-support access code.
func SendVerificationCodeEmail(email, code string, validMinutes int) error {
	subject := "Your CodeLab Support Verification Code"
	body := fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
				<h2 style="color: #333333; text-align: center;">Support Access Verification</h2>
				<p style="font-size: 16px; color: #555555; text-align: center;">Your verification code is:</p>
				<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
				<p style="font-size: 14px; color: #999999; text-align: center;">This code expires in %d minutes. Do not share it with anyone.</p>
			</div>
		</body>
	</html>
	`, code, validMinutes)

	return SendEmail(email, subject, body)
}

// SendTicketClosedEmail notifies the requester that a ticket was closed.
func SendTicketClosedEmail(email, subjectLine string, ticketID uint) {
	subject := "Your CodeLab Support Ticket Was Closed"
	body := fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
				<h2 style="color: #333333;">Ticket #%d closed</h2>
				<p style="font-size: 15px; color: #555555;">Your support ticket <strong>%s</strong> has been closed. Replying opens a new ticket linked to this one.</p>
			</div>
		</body>
	</html>
	`, ticketID, subjectLine)

	go SendEmail(email, subject, body)
}
