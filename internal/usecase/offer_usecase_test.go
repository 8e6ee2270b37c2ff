package usecase_test

import (
	"testing"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validOfferInput() domain.OfferInput {
	return domain.OfferInput{
		Name:         "Backend Engineer",
		Description:  "Build the platform",
		Category:     "IT",
		Degree:       "Computer Science",
		Email:        "jobs@acme.com",
		ContractType: "full-time",
		JobLocation:  "Madrid",
		ClosingDate:  time.Now().AddDate(0, 1, 0),
	}
}

func TestCreateOffer(t *testing.T) {
	validate := validator.New()

	t.Run("Should create an offer for a company", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("NameTaken", mock.Anything, "Backend Engineer", int64(0)).Return(false, nil)
		offerRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		offer, err := uc.CreateOffer(companyCtx("company1"), "company1", validOfferInput())
		assert.NoError(t, err)
		assert.Equal(t, "company1", offer.UserID)
		assert.Equal(t, "Backend Engineer", offer.Name)
	})

	t.Run("Should reject a candidate caller", func(t *testing.T) {
		uc := usecase.NewOfferUsecase(new(MockOfferRepo), validate)

		_, err := uc.CreateOffer(candidateCtx("cand1"), "cand1", validOfferInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only companies")
	})

	t.Run("Should reject a duplicate title", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("NameTaken", mock.Anything, "Backend Engineer", int64(0)).Return(true, nil)

		_, err := uc.CreateOffer(companyCtx("company1"), "company1", validOfferInput())
		assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
		offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a closing date in the past", func(t *testing.T) {
		uc := usecase.NewOfferUsecase(new(MockOfferRepo), validate)

		input := validOfferInput()
		input.ClosingDate = time.Now().AddDate(0, 0, -1)

		_, err := uc.CreateOffer(companyCtx("company1"), "company1", input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Closing date")
	})

	t.Run("Should surface a duplicate title lost to a concurrent create", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("NameTaken", mock.Anything, "Backend Engineer", int64(0)).Return(false, nil)
		offerRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateTitle)

		_, err := uc.CreateOffer(companyCtx("company1"), "company1", validOfferInput())
		assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
	})
}

func TestUpdateOffer(t *testing.T) {
	validate := validator.New()
	existing := &domain.Offer{ID: 5, UserID: "company1", Name: "Backend Engineer"}

	t.Run("Should allow keeping the offer's own title", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		offerRepo.On("NameTaken", mock.Anything, "Backend Engineer", int64(5)).Return(false, nil)
		offerRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		offer, err := uc.UpdateOffer(companyCtx("company1"), 5, "company1", validOfferInput())
		assert.NoError(t, err)
		assert.Equal(t, int64(5), offer.ID)
	})

	t.Run("Should reject a title used by another offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		offerRepo.On("NameTaken", mock.Anything, "Backend Engineer", int64(5)).Return(true, nil)

		_, err := uc.UpdateOffer(companyCtx("company1"), 5, "company1", validOfferInput())
		assert.ErrorIs(t, err, domain.ErrDuplicateTitle)
	})

	t.Run("Should reject a caller who does not own the offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

		_, err := uc.UpdateOffer(companyCtx("company2"), 5, "company2", validOfferInput())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own")
		offerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should report not found for a missing offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateOffer(companyCtx("company1"), 99, "company1", validOfferInput())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteOffer(t *testing.T) {
	validate := validator.New()
	existing := &domain.Offer{ID: 5, UserID: "company1", Name: "Backend Engineer"}

	t.Run("Should delete an owned offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
		offerRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

		err := uc.DeleteOffer(companyCtx("company1"), 5, "company1")
		assert.NoError(t, err)
	})

	t.Run("Should reject a caller who does not own the offer", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		offerRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

		err := uc.DeleteOffer(companyCtx("company2"), 5, "company2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own")
		offerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListOffers(t *testing.T) {
	validate := validator.New()

	t.Run("Should pass the filter through and never return nil", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewOfferUsecase(offerRepo, validate)

		filter := domain.OfferFilter{Query: "engineer", Category: "IT"}
		offerRepo.On("Fetch", mock.Anything, filter).Return(nil, nil)

		offers, err := uc.ListOffers(candidateCtx("cand1"), filter)
		assert.NoError(t, err)
		assert.NotNil(t, offers)
		assert.Empty(t, offers)
	})
}
