package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/email"
	"empleaworks-backend/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init("error")
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCompanyRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) Create(ctx context.Context, offer *domain.Offer) error {
	return m.Called(ctx, offer).Error(0)
}
func (m *MockOfferRepo) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}
func (m *MockOfferRepo) GetViewByID(ctx context.Context, id int64) (*domain.OfferView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfferView), args.Error(1)
}
func (m *MockOfferRepo) Fetch(ctx context.Context, filter domain.OfferFilter) ([]domain.OfferView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferView), args.Error(1)
}
func (m *MockOfferRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.OfferView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferView), args.Error(1)
}
func (m *MockOfferRepo) Update(ctx context.Context, offer *domain.Offer) error {
	return m.Called(ctx, offer).Error(0)
}
func (m *MockOfferRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOfferRepo) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOfferRepo) FindClosedBefore(ctx context.Context, cutoff time.Time) ([]domain.Offer, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, userID string, offerID int64) (bool, error) {
	args := m.Called(ctx, userID, offerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchOffers(ctx context.Context, userID string) ([]domain.OfferView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferView), args.Error(1)
}

type MockSavedOfferRepo struct {
	mock.Mock
}

func (m *MockSavedOfferRepo) Create(ctx context.Context, saved *domain.SavedOffer) error {
	return m.Called(ctx, saved).Error(0)
}
func (m *MockSavedOfferRepo) Delete(ctx context.Context, userID string, offerID int64) error {
	return m.Called(ctx, userID, offerID).Error(0)
}
func (m *MockSavedOfferRepo) Exists(ctx context.Context, userID string, offerID int64) (bool, error) {
	args := m.Called(ctx, userID, offerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockSavedOfferRepo) FetchOffers(ctx context.Context, userID string) ([]domain.OfferView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfferView), args.Error(1)
}

type MockResetTokenRepo struct {
	mock.Mock
}

func (m *MockResetTokenRepo) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	return m.Called(ctx, token, userID, ttl).Error(0)
}
func (m *MockResetTokenRepo) Lookup(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}
func (m *MockResetTokenRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// Mock Collaborators

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}
func (m *MockMailer) SendApplicationCandidate(locale, to string, data email.ApplicationEmailData) error {
	return m.Called(locale, to, data).Error(0)
}
func (m *MockMailer) SendApplicationCompany(locale, to string, data email.ApplicationEmailData) error {
	return m.Called(locale, to, data).Error(0)
}
func (m *MockMailer) SendPasswordReset(locale, to string, data email.PasswordResetEmailData) error {
	return m.Called(locale, to, data).Error(0)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, dir, filename string, data []byte) (string, error) {
	args := m.Called(ctx, dir, filename, data)
	return args.String(0), args.Error(1)
}
func (m *MockFileStore) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}
func (m *MockFileStore) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

// Context helpers

func candidateCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, string(domain.RoleCandidate))
}

func companyCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, string(domain.RoleCompany))
}
