package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"empleaworks-backend/config"
)

// Mailer sends transactional emails via SMTP. All sends are best-effort:
// callers log failures instead of surfacing them to users.
type Mailer struct {
	host          string
	port          string
	username      string
	password      string
	fromEmail     string
	defaultLocale string
}

// ApplicationEmailData feeds both sides of the application confirmation.
type ApplicationEmailData struct {
	CandidateName  string
	CandidateEmail string
	CandidatePhone string
	CompanyName    string
	OfferName      string
}

// PasswordResetEmailData feeds the password reset email.
type PasswordResetEmailData struct {
	Name     string
	ResetURL string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:          cfg.SMTPHost,
		port:          cfg.SMTPPort,
		username:      cfg.SMTPUsername,
		password:      cfg.SMTPPassword,
		fromEmail:     cfg.SMTPFromEmail,
		defaultLocale: cfg.DefaultLocale,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// SendApplicationCandidate confirms to the candidate that their
// application was registered.
func (m *Mailer) SendApplicationCandidate(locale, to string, data ApplicationEmailData) error {
	msg := pick(locale, m.defaultLocale, applicationCandidateMessages)
	return m.send(to, msg, data)
}

// SendApplicationCompany notifies the offer's company of a new applicant.
func (m *Mailer) SendApplicationCompany(locale, to string, data ApplicationEmailData) error {
	msg := pick(locale, m.defaultLocale, applicationCompanyMessages)
	return m.send(to, msg, data)
}

// SendPasswordReset sends the reset link.
func (m *Mailer) SendPasswordReset(locale, to string, data PasswordResetEmailData) error {
	msg := pick(locale, m.defaultLocale, passwordResetMessages)
	return m.send(to, msg, data)
}

type localizedMessage struct {
	subject string
	tmpl    *template.Template
}

func pick(locale, fallback string, messages map[string]localizedMessage) localizedMessage {
	if msg, ok := messages[locale]; ok {
		return msg
	}
	if msg, ok := messages[fallback]; ok {
		return msg
	}
	return messages["en"]
}

func (m *Mailer) send(to string, msg localizedMessage, data interface{}) error {
	var body bytes.Buffer
	if err := msg.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	// Construct MIME message
	raw := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.fromEmail,
		to,
		msg.subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.fromEmail, []string{to}, raw); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
