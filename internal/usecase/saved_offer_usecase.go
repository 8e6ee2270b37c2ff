package usecase

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
)

type savedOfferUsecase struct {
	savedRepo domain.SavedOfferRepository
	appRepo   domain.ApplicationRepository
	offerRepo domain.OfferRepository
}

func NewSavedOfferUsecase(
	savedRepo domain.SavedOfferRepository,
	appRepo domain.ApplicationRepository,
	offerRepo domain.OfferRepository,
) domain.SavedOfferUsecase {
	return &savedOfferUsecase{savedRepo: savedRepo, appRepo: appRepo, offerRepo: offerRepo}
}

// Toggle flips the bookmark. An existing application blocks saving but
// an existing bookmark never blocks applying.
func (u *savedOfferUsecase) Toggle(ctx context.Context, candidateID string, offerID int64) (bool, error) {
	if candidateID == "" {
		return false, apperror.Unauthorized("Authentication required")
	}
	if domain.CallerRole(ctx) != domain.RoleCandidate {
		return false, apperror.Forbidden("Only candidates can save offers")
	}

	if _, err := u.offerRepo.GetByID(ctx, offerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, apperror.NotFound("Offer not found").Wrap(err)
		}
		return false, apperror.Internal(err)
	}

	applied, err := u.appRepo.Exists(ctx, candidateID, offerID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if applied {
		return false, apperror.Conflict("You already applied to this offer").Wrap(domain.ErrSaveAfterApply)
	}

	saved, err := u.savedRepo.Exists(ctx, candidateID, offerID)
	if err != nil {
		return false, apperror.Internal(err)
	}

	if saved {
		if err := u.savedRepo.Delete(ctx, candidateID, offerID); err != nil {
			return false, apperror.Internal(err)
		}
		return false, nil
	}

	if err := u.savedRepo.Create(ctx, &domain.SavedOffer{
		UserID:    candidateID,
		OfferID:   offerID,
		CreatedAt: time.Now(),
	}); err != nil {
		return false, apperror.Internal(err)
	}
	return true, nil
}

// ListSaved returns an empty list for unauthenticated or non-candidate
// callers rather than an error.
func (u *savedOfferUsecase) ListSaved(ctx context.Context, candidateID string) ([]domain.OfferView, error) {
	if candidateID == "" || domain.CallerRole(ctx) != domain.RoleCandidate {
		return []domain.OfferView{}, nil
	}
	views, err := u.savedRepo.FetchOffers(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if views == nil {
		views = []domain.OfferView{}
	}
	return views, nil
}
