package usecase_test

import (
	"context"
	"testing"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(userRepo *MockUserRepo, candidateRepo *MockCandidateRepo, companyRepo *MockCompanyRepo, resetTokens *MockResetTokenRepo, mailer *MockMailer) domain.AuthUsecase {
	tokens := new(MockTokenIssuer)
	tokens.On("Issue", mock.Anything, mock.Anything, mock.Anything).Return("session-token", nil)
	return usecase.NewAuthUsecase(
		userRepo, candidateRepo, companyRepo, resetTokens,
		tokens, mailer, new(MockFileStore), validator.New(),
		"https://jobs.example.com", "es",
	)
}

func TestRegister(t *testing.T) {
	t.Run("Should create a candidate with its profile row", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := newAuthUC(userRepo, candidateRepo, new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		candidateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, tok, err := uc.Register(context.Background(), domain.RegisterInput{
			Name: "Ana", Surname: "Lopez", Email: "ana@example.com",
			Password: "supersecret", Role: domain.RoleCandidate,
		})
		assert.NoError(t, err)
		assert.Equal(t, "session-token", tok)
		assert.Equal(t, domain.RoleCandidate, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotNil(t, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("supersecret")))
		candidateRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create a company with its profile row", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), companyRepo, new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		companyRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Name: "Acme", Email: "hr@acme.com", Password: "supersecret", Role: domain.RoleCompany,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCompany, user.Role)
		companyRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo), new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		_, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Name: "Eve", Email: "eve@example.com", Password: "supersecret", Role: "admin",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "candidate or company")
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

		_, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Name: "Ana", Surname: "Lopez", Email: "ana@example.com",
			Password: "supersecret", Role: domain.RoleCandidate,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo), new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		_, _, err := uc.Register(context.Background(), domain.RegisterInput{
			Name: "Ana", Surname: "Lopez", Email: "ana@example.com",
			Password: "short", Role: domain.RoleCandidate,
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	hashStr := string(hash)

	t.Run("Should log in with the right password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
			ID: "u1", Email: "ana@example.com", PasswordHash: &hashStr, Role: domain.RoleCandidate,
		}, nil)

		_, tok, err := uc.Login(context.Background(), "ana@example.com", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, "session-token", tok)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
			ID: "u1", Email: "ana@example.com", PasswordHash: &hashStr,
		}, nil)

		_, _, err := uc.Login(context.Background(), "ana@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Should reject an unknown email with the same error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Should reject password login on an OAuth-only account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByEmail", mock.Anything, "g@example.com").Return(&domain.User{
			ID: "u2", Email: "g@example.com", PasswordHash: nil,
		}, nil)

		_, _, err := uc.Login(context.Background(), "g@example.com", "anything")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	identity := domain.GoogleIdentity{Subject: "goog-123", Email: "ana@example.com", Name: "Ana"}

	t.Run("Should reuse an account already linked to the subject", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByGoogleID", mock.Anything, "goog-123").Return(&domain.User{
			ID: "u1", Email: "ana@example.com", Role: domain.RoleCandidate,
		}, nil)

		user, tok, err := uc.LoginWithGoogle(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "session-token", tok)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should link the subject to an existing email account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		existing := &domain.User{ID: "u1", Email: "ana@example.com", Role: domain.RoleCandidate}
		userRepo.On("GetByGoogleID", mock.Anything, "goog-123").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(existing, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		user, _, err := uc.LoginWithGoogle(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotNil(t, user.GoogleID)
		assert.Equal(t, "goog-123", *user.GoogleID)
	})

	t.Run("Should create a fresh candidate account otherwise", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := newAuthUC(userRepo, candidateRepo, new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByGoogleID", mock.Anything, "goog-123").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		candidateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user, _, err := uc.LoginWithGoogle(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCandidate, user.Role)
		assert.Equal(t, "es", user.Locale)
		candidateRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPasswordReset(t *testing.T) {
	t.Run("Should stay silent for an unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		resetTokens := new(MockResetTokenRepo)
		mailer := new(MockMailer)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), resetTokens, mailer)

		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		err := uc.RequestPasswordReset(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		resetTokens.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should store a token and mail the reset link", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		resetTokens := new(MockResetTokenRepo)
		mailer := new(MockMailer)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), resetTokens, mailer)

		userRepo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
			ID: "u1", Name: "Ana", Email: "ana@example.com", Locale: "es",
		}, nil)
		resetTokens.On("Store", mock.Anything, mock.Anything, "u1", mock.Anything).Return(nil)
		mailer.On("SendPasswordReset", "es", "ana@example.com", mock.Anything).Return(nil)

		err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
		assert.NoError(t, err)
		resetTokens.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Should reset the password and consume the token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		resetTokens := new(MockResetTokenRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), resetTokens, new(MockMailer))

		user := &domain.User{ID: "u1", Email: "ana@example.com"}
		resetTokens.On("Lookup", mock.Anything, "tok-1").Return("u1", nil)
		userRepo.On("GetByID", mock.Anything, "u1").Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		resetTokens.On("Delete", mock.Anything, "tok-1").Return(nil)

		err := uc.ResetPassword(context.Background(), "tok-1", "newpassword")
		assert.NoError(t, err)
		assert.NotNil(t, user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("newpassword")))
		resetTokens.AssertCalled(t, "Delete", mock.Anything, "tok-1")
	})

	t.Run("Should reject an invalid token", func(t *testing.T) {
		resetTokens := new(MockResetTokenRepo)
		uc := newAuthUC(new(MockUserRepo), new(MockCandidateRepo), new(MockCompanyRepo), resetTokens, new(MockMailer))

		resetTokens.On("Lookup", mock.Anything, "bad").Return("", domain.ErrInvalidResetToken)

		err := uc.ResetPassword(context.Background(), "bad", "newpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	})
}

func TestDeleteAccount(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	hashStr := string(hash)

	t.Run("Should delete after password confirmation", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := newAuthUC(userRepo, candidateRepo, new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{
			ID: "u1", PasswordHash: &hashStr, Role: domain.RoleCandidate,
		}, nil)
		candidateRepo.On("GetByUserID", mock.Anything, "u1").Return(&domain.CandidateProfile{UserID: "u1"}, nil)
		userRepo.On("Delete", mock.Anything, "u1").Return(nil)

		err := uc.DeleteAccount(context.Background(), "u1", "supersecret")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "Delete", mock.Anything, "u1")
	})

	t.Run("Should refuse on a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockCandidateRepo), new(MockCompanyRepo), new(MockResetTokenRepo), new(MockMailer))

		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{
			ID: "u1", PasswordHash: &hashStr,
		}, nil)

		err := uc.DeleteAccount(context.Background(), "u1", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Password is incorrect")
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
