package domain

import (
	"context"
	"time"
)

// Role is a closed set: every user is exactly a candidate or a company.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
)

// ParseRole validates an externally supplied role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCandidate, RoleCompany:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"` // nil for OAuth-only accounts
	Role         Role      `json:"role"`
	Description  *string   `json:"description"`
	ImagePath    *string   `json:"image"`
	GoogleID     *string   `json:"-"`
	Locale       string    `json:"locale"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoogleIdentity is what the OAuth collaborator hands over after a
// successful code exchange.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	Update(ctx context.Context, user *User) error
	// Delete removes the user; offers, applications, saved offers and the
	// profile extension row go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error
}

// ResetTokenRepository stores short-lived password reset tokens.
type ResetTokenRepository interface {
	Store(ctx context.Context, token, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error) // returns user id
	Delete(ctx context.Context, token string) error
}

type RegisterInput struct {
	Name     string `validate:"required,min=2,max=100"`
	Surname  string `validate:"omitempty,max=100"` // candidate only
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     Role
	Locale   string
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	LoginWithGoogle(ctx context.Context, identity GoogleIdentity) (*User, string, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, tok, newPassword string) error
	DeleteAccount(ctx context.Context, userID, password string) error
}
