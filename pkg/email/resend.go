package email

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/finversity/finversity-backend/internal/config"
	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *log.Logger
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{
		client:       resend.NewClient(cfg.APIKey),
		from:         cfg.FromAddress,
		fromName:     cfg.FromName,
		templatesDir: "pkg/email/templates",
		logger:       log.New(os.Stdout, "EMAIL: ", log.LstdFlags),
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	s.logger.Printf("Sending welcome email to: %s (%s)", email, fullName)

	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("welcome.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing welcome template for %s: %v", email, err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to Finversity!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send welcome email to %s: %v", email, err)
		return err
	}

	s.logger.Printf("Successfully sent welcome email to %s (ID: %s)", email, resp.Id)
	return nil
}

// SendInvoiceEmail mails the purchase invoice with the rendered PDF
// attached. Callers treat failures as best-effort.
func (s *EmailService) SendInvoiceEmail(email, fullName, paymentID string, pdf []byte) error {
	s.logger.Printf("Sending invoice email to: %s (payment %s)", email, paymentID)

	templateData := map[string]interface{}{
		"FullName":  fullName,
		"PaymentID": paymentID,
		"Year":      time.Now().Year(),
	}

	html, err := s.parseTemplate("invoice.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing invoice template for %s: %v", email, err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Your Finversity Invoice",
		Html:    html,
		Attachments: []resend.Attachment{
			{
				Filename: paymentID + ".pdf",
				Content:  string(pdf),
			},
		},
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send invoice email to %s: %v", email, err)
		return err
	}

	s.logger.Printf("Successfully sent invoice email to %s (ID: %s)", email, resp.Id)
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
