package email

import (
	"gopkg.in/gomail.v2"

	"schoolhub_backend/internal/config"
)

// SMTPProvider delivers mail through the configured SMTP relay via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendTemplate(to, templateName string, data TemplateData) error {
	subject, body, err := Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(to, subject, body)
}

// MockProvider is used in development and tests when no SMTP relay is
// configured.
type MockProvider struct{}

func (MockProvider) Send(to, subject, htmlBody string) error { return nil }

func (MockProvider) SendTemplate(to, templateName string, data TemplateData) error { return nil }
