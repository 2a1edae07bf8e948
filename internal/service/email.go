package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"accreditation-backend/internal/domain"
	"accreditation-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) Send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("Email sent", "to", toEmail, "subject", subject)
	return nil
}

func (s *emailService) SendRejectionNotice(ctx context.Context, p *domain.Participant, remarks string) error {
	subject := "Accreditation Request Update"
	name := fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	plainText := fmt.Sprintf("Dear %s,\n\nYour accreditation request (%s) was not approved.", name, p.RegistrationCode)
	if remarks != "" {
		plainText += fmt.Sprintf("\n\nRemarks: %s", remarks)
	}
	plainText += "\n\nYour request has been returned for re-evaluation. You will be contacted if further documents are required."
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Accreditation Request Update</h2>
				<p>Dear %s,</p>
				<p>Your accreditation request <strong>%s</strong> was not approved.</p>
				<p>%s</p>
				<p>Your request has been returned for re-evaluation. You will be contacted if further documents are required.</p>
			</body>
		</html>
	`, name, p.RegistrationCode, remarks)

	return s.Send(ctx, p.Email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendFinalizationNotice(ctx context.Context, p *domain.Participant) error {
	subject := "Accreditation Finalized"
	name := fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	plainText := fmt.Sprintf("Dear %s,\n\nYour accreditation (%s) has been finalized and archived. No further action is required.", name, p.RegistrationCode)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Accreditation Finalized</h2>
				<p>Dear %s,</p>
				<p>Your accreditation <strong>%s</strong> has been finalized and archived. No further action is required.</p>
			</body>
		</html>
	`, name, p.RegistrationCode)

	return s.Send(ctx, p.Email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendRegistrationConfirmation(ctx context.Context, p *domain.Participant, eventName string) error {
	subject := fmt.Sprintf("Registration Received - %s", eventName)
	name := fmt.Sprintf("%s %s", p.FirstName, p.LastName)
	plainText := fmt.Sprintf("Dear %s,\n\nYour registration for %s has been received.\n\nYour registration code is: %s\n\nKeep this code; it identifies your accreditation request throughout processing.", name, eventName, p.RegistrationCode)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Registration Received</h2>
				<p>Dear %s,</p>
				<p>Your registration for <strong>%s</strong> has been received.</p>
				<p>Your registration code is <strong>%s</strong>. Keep this code; it identifies your accreditation request throughout processing.</p>
			</body>
		</html>
	`, name, eventName, p.RegistrationCode)

	return s.Send(ctx, p.Email, name, subject, plainText, htmlContent)
}
