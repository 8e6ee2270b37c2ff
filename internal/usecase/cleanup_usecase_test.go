package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteClosedOffers(t *testing.T) {
	now := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)

	t.Run("Should query with the cutoff shifted back by the grace period", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewCleanupUsecase(offerRepo)

		wantCutoff := now.AddDate(0, 0, -10)
		offerRepo.On("FindClosedBefore", mock.Anything, wantCutoff).Return([]domain.Offer{}, nil)

		deleted, err := uc.DeleteClosedOffers(context.Background(), now, 10)
		assert.NoError(t, err)
		assert.Equal(t, 0, deleted)
		offerRepo.AssertCalled(t, "FindClosedBefore", mock.Anything, wantCutoff)
	})

	t.Run("Should delete every expired offer and count them", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewCleanupUsecase(offerRepo)

		expired := []domain.Offer{{ID: 1}, {ID: 2}, {ID: 3}}
		offerRepo.On("FindClosedBefore", mock.Anything, mock.Anything).Return(expired, nil)
		offerRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
		offerRepo.On("Delete", mock.Anything, int64(2)).Return(nil)
		offerRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

		deleted, err := uc.DeleteClosedOffers(context.Background(), now, 10)
		assert.NoError(t, err)
		assert.Equal(t, 3, deleted)
	})

	t.Run("Should skip rows already removed by a concurrent run", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewCleanupUsecase(offerRepo)

		expired := []domain.Offer{{ID: 1}, {ID: 2}}
		offerRepo.On("FindClosedBefore", mock.Anything, mock.Anything).Return(expired, nil)
		offerRepo.On("Delete", mock.Anything, int64(1)).Return(domain.ErrNotFound)
		offerRepo.On("Delete", mock.Anything, int64(2)).Return(nil)

		deleted, err := uc.DeleteClosedOffers(context.Background(), now, 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})

	t.Run("Should continue past a failing row", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewCleanupUsecase(offerRepo)

		expired := []domain.Offer{{ID: 1}, {ID: 2}}
		offerRepo.On("FindClosedBefore", mock.Anything, mock.Anything).Return(expired, nil)
		offerRepo.On("Delete", mock.Anything, int64(1)).Return(errors.New("deadlock"))
		offerRepo.On("Delete", mock.Anything, int64(2)).Return(nil)

		deleted, err := uc.DeleteClosedOffers(context.Background(), now, 10)
		assert.NoError(t, err)
		assert.Equal(t, 1, deleted)
		offerRepo.AssertCalled(t, "Delete", mock.Anything, int64(2))
	})

	t.Run("Should be a no-op when nothing is expired", func(t *testing.T) {
		offerRepo := new(MockOfferRepo)
		uc := usecase.NewCleanupUsecase(offerRepo)

		offerRepo.On("FindClosedBefore", mock.Anything, mock.Anything).Return([]domain.Offer{}, nil)

		deleted, err := uc.DeleteClosedOffers(context.Background(), now, 10)
		assert.NoError(t, err)
		assert.Equal(t, 0, deleted)
		offerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
