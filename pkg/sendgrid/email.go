package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendPath = "/v3/mail/send"

// ErrNotConfigured is returned by Send when no API key was configured.
var ErrNotConfigured = errors.New("sendgrid API key is not configured")

type EmailService interface {
	Send(ctx context.Context, req *models.EmailRequest) error
}

type emailService struct {
	client    *sendgrid.Client
	enabled   bool
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		enabled:   apiKey != "",
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// NewEmailServiceWithURL sends through baseURL instead of api.sendgrid.com.
func NewEmailServiceWithURL(apiKey, fromEmail, fromName, baseURL string) EmailService {
	client := sendgrid.NewSendClient(apiKey)
	client.Request.BaseURL = baseURL + sendPath

	return &emailService{
		client:    client,
		enabled:   apiKey != "",
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (e *emailService) Send(ctx context.Context, req *models.EmailRequest) error {

	if !e.enabled {
		return ErrNotConfigured
	}

	response, err := e.client.SendWithContext(ctx, e.build(req))
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

func (e *emailService) build(req *models.EmailRequest) *mail.SGMailV3 {

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", req.To))
	personalization.Subject = req.Subject
	if req.OrderID != "" {
		personalization.SetCustomArg("order_id", req.OrderID)
	}
	message.AddPersonalizations(personalization)

	// text/plain must precede text/html
	message.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		message.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	if len(req.Categories) > 0 {
		message.AddCategories(req.Categories...)
	}

	return message
}
