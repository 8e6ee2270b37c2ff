package usecase

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/logger"
)

type cleanupUsecase struct {
	offerRepo domain.OfferRepository
}

func NewCleanupUsecase(offerRepo domain.OfferRepository) domain.CleanupUsecase {
	return &cleanupUsecase{offerRepo: offerRepo}
}

// DeleteClosedOffers removes every offer whose closing date passed more
// than graceDays ago. Offers are deleted one by one so a single bad row
// cannot abort the whole sweep; the run is idempotent.
func (u *cleanupUsecase) DeleteClosedOffers(ctx context.Context, now time.Time, graceDays int) (int, error) {
	cutoff := now.AddDate(0, 0, -graceDays)

	expired, err := u.offerRepo.FindClosedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, offer := range expired {
		if err := u.offerRepo.Delete(ctx, offer.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Already removed by a concurrent run
				continue
			}
			logger.Log.Error("Failed to delete expired offer", "offer_id", offer.ID, "error", err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
