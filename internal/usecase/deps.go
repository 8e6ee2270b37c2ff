package usecase

import (
	"empleaworks-backend/pkg/email"
)

// TokenIssuer issues session tokens. Satisfied by pkg/token.Manager.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}

// Mailer is the slice of pkg/email.Mailer the usecases need. All sends
// are best-effort: callers log failures and move on.
type Mailer interface {
	IsConfigured() bool
	SendApplicationCandidate(locale, to string, data email.ApplicationEmailData) error
	SendApplicationCompany(locale, to string, data email.ApplicationEmailData) error
	SendPasswordReset(locale, to string, data email.PasswordResetEmailData) error
}
