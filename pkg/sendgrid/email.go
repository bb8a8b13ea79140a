package sendgrid

import (
	"context"
	"fmt"
	"html"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
	GetSendGridClient() *sg.Client
}

type emailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// Send implements EmailService.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail("", req.To)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)

	for _, cc := range req.CC {
		personalization.AddCCs(mail.NewEmail("", cc))
	}

	for _, bcc := range req.BCC {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}

	personalization.Subject = req.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (e *emailService) GetSendGridClient() *sg.Client {
	return e.client
}

// ReceiptEmail renders the order confirmation for a paid checkout.
func ReceiptEmail(to string, payment *models.Payment) *models.EmailNotificationRequest {

	amount := fmt.Sprintf("%.2f %s", float64(payment.Amount)/100, payment.Currency)

	return &models.EmailNotificationRequest{
		To:      to,
		Subject: "Your Cloud Kitchen order is confirmed",
		Content: fmt.Sprintf("Thank you for your order.\n\n%s\nAmount paid: %s\nReference: %s\n",
			payment.Description, amount, payment.ID),
		HTMLContent: fmt.Sprintf("<h2>Thank you for your order.</h2><p>%s</p><p>Amount paid: <strong>%s</strong></p><p>Reference: %s</p>",
			html.EscapeString(payment.Description), amount, html.EscapeString(payment.ID)),
	}
}
