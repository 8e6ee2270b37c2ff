package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/email"
	"empleaworks-backend/pkg/logger"
	"empleaworks-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

type authUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	companyRepo   domain.CompanyRepository
	resetTokens   domain.ResetTokenRepository
	tokens        TokenIssuer
	mailer        Mailer
	files         storage.FileStore
	validate      *validator.Validate
	frontendURL   string
	defaultLocale string
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	companyRepo domain.CompanyRepository,
	resetTokens domain.ResetTokenRepository,
	tokens TokenIssuer,
	mailer Mailer,
	files storage.FileStore,
	validate *validator.Validate,
	frontendURL string,
	defaultLocale string,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		companyRepo:   companyRepo,
		resetTokens:   resetTokens,
		tokens:        tokens,
		mailer:        mailer,
		files:         files,
		validate:      validate,
		frontendURL:   frontendURL,
		defaultLocale: defaultLocale,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}
	role, ok := domain.ParseRole(string(input.Role))
	if !ok {
		return nil, "", apperror.BadRequest("Role must be candidate or company")
	}
	if role == domain.RoleCandidate && input.Surname == "" {
		return nil, "", apperror.BadRequest("Surname is required for candidates")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	hashStr := string(hash)

	locale := input.Locale
	if locale == "" {
		locale = u.defaultLocale
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: &hashStr,
		Role:         role,
		Locale:       locale,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, "", apperror.Conflict("An account with this email already exists").Wrap(err)
		}
		return nil, "", apperror.Internal(err)
	}

	if err := u.createProfileRow(ctx, user, input.Surname); err != nil {
		return nil, "", apperror.Internal(err)
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

// createProfileRow inserts the 1:1 role extension alongside the user.
func (u *authUsecase) createProfileRow(ctx context.Context, user *domain.User, surname string) error {
	switch user.Role {
	case domain.RoleCandidate:
		return u.candidateRepo.Create(ctx, &domain.CandidateProfile{
			UserID:  user.ID,
			Surname: surname,
		})
	case domain.RoleCompany:
		return u.companyRepo.Create(ctx, &domain.CompanyProfile{UserID: user.ID})
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, userEmail, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password").Wrap(domain.ErrInvalidCredentials)
		}
		return nil, "", apperror.Internal(err)
	}
	// OAuth-only accounts have no password to check against
	if user.PasswordHash == nil {
		return nil, "", apperror.Unauthorized("Invalid email or password").Wrap(domain.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password").Wrap(domain.ErrInvalidCredentials)
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

// LoginWithGoogle links by Google subject first, then by email (joining
// the Google identity to an existing password account), and otherwise
// creates a fresh candidate user.
func (u *authUsecase) LoginWithGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, string, error) {
	user, err := u.userRepo.GetByGoogleID(ctx, identity.Subject)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", apperror.Internal(err)
	}

	if user == nil {
		existing, err := u.userRepo.GetByEmail(ctx, identity.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Internal(err)
		}
		if existing != nil {
			existing.GoogleID = &identity.Subject
			existing.UpdatedAt = time.Now()
			if err := u.userRepo.Update(ctx, existing); err != nil {
				return nil, "", apperror.Internal(err)
			}
			user = existing
		}
	}

	if user == nil {
		now := time.Now()
		user = &domain.User{
			ID:        uuid.NewString(),
			Name:      identity.Name,
			Email:     identity.Email,
			Role:      domain.RoleCandidate,
			GoogleID:  &identity.Subject,
			Locale:    u.defaultLocale,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, "", apperror.Internal(err)
		}
		if err := u.createProfileRow(ctx, user, ""); err != nil {
			return nil, "", apperror.Internal(err)
		}
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, tok, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found").Wrap(err)
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// RequestPasswordReset never reveals whether the email is registered.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, userEmail string) error {
	user, err := u.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return apperror.Internal(err)
	}

	tok, err := newResetToken()
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.resetTokens.Store(ctx, tok, user.ID, resetTokenTTL); err != nil {
		return apperror.Internal(err)
	}

	resetURL := u.frontendURL + "/reset-password?token=" + tok
	if err := u.mailer.SendPasswordReset(user.Locale, user.Email, email.PasswordResetEmailData{
		Name:     user.Name,
		ResetURL: resetURL,
	}); err != nil {
		logger.Log.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, tok, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	userID, err := u.resetTokens.Lookup(ctx, tok)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidResetToken) {
			return apperror.BadRequest("Invalid or expired reset token").Wrap(err)
		}
		return apperror.Internal(err)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	hashStr := string(hash)
	user.PasswordHash = &hashStr
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	// Single use: a consumed token must not reset twice
	if err := u.resetTokens.Delete(ctx, tok); err != nil {
		logger.Log.Error("Failed to delete used reset token", "error", err)
	}
	return nil
}

// DeleteAccount removes the user and everything the schema cascades:
// owned offers, applications, saved offers and the profile extension.
// Stored files are removed best-effort.
func (u *authUsecase) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found").Wrap(err)
		}
		return apperror.Internal(err)
	}

	// Password confirmation; OAuth-only accounts have none to confirm
	if user.PasswordHash != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
			return apperror.Forbidden("Password is incorrect")
		}
	}

	u.removeFile(ctx, user.ImagePath)
	if user.Role == domain.RoleCandidate {
		if profile, err := u.candidateRepo.GetByUserID(ctx, userID); err == nil {
			u.removeFile(ctx, profile.CVPath)
		}
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) removeFile(ctx context.Context, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.files.Delete(ctx, *path); err != nil {
		// Orphaned files are accepted, never fatal
		logger.Log.Warn("Failed to delete stored file", "path", *path, "error", err)
	}
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
