package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TemplateReviewReported = "review_reported"
	TemplateReviewRejected = "review_rejected"
	TemplateReviewRestored = "review_restored"
)

// Subjects per template; the moderation flow fills SchoolName and Reason.
var subjects = map[string]string{
	TemplateReviewReported: "Your review is under moderation",
	TemplateReviewRejected: "Your review has been removed",
	TemplateReviewRestored: "Your review has been restored",
}

var bodies = map[string]string{
	TemplateReviewReported: `
		<p>Your review of <b>{{.SchoolName}}</b> was disputed by the school
		and is hidden while an administrator reviews the dispute.</p>
		<p>Reason given: {{.Reason}}</p>`,
	TemplateReviewRejected: `
		<p>An administrator upheld the dispute against your review of
		<b>{{.SchoolName}}</b>. The review is no longer published.</p>
		<p>Reason: {{.Reason}}</p>`,
	TemplateReviewRestored: `
		<p>The dispute against your review of <b>{{.SchoolName}}</b> was
		dismissed. Your review is published again.</p>`,
}

var parsed = func() map[string]*template.Template {
	out := make(map[string]*template.Template, len(bodies))
	for name, body := range bodies {
		out[name] = template.Must(template.New(name).Parse(body))
	}
	return out
}()

// Render produces the subject and HTML body for a named template.
func Render(templateName string, data TemplateData) (subject, body string, err error) {
	tpl, ok := parsed[templateName]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", templateName)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[templateName], buf.String(), nil
}
