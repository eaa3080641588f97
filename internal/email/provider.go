package email

// TemplateData feeds placeholder values into a message template.
type TemplateData map[string]interface{}

// Provider sends moderation-outcome notifications. The review workflow
// never blocks on it: send failures are logged, not surfaced to the actor.
type Provider interface {
	Send(to, subject, htmlBody string) error
	SendTemplate(to, templateName string, data TemplateData) error
}
