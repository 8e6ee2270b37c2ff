package domain

import (
	"context"
	"time"
)

// SavedOffer records the fact "candidate X bookmarked offer Y".
type SavedOffer struct {
	UserID    string    `json:"user_id"`
	OfferID   int64     `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedOfferRepository interface {
	Create(ctx context.Context, saved *SavedOffer) error
	Delete(ctx context.Context, userID string, offerID int64) error
	Exists(ctx context.Context, userID string, offerID int64) (bool, error)
	FetchOffers(ctx context.Context, userID string) ([]OfferView, error)
}

type SavedOfferUsecase interface {
	// Toggle flips the saved state and returns the new state.
	Toggle(ctx context.Context, candidateID string, offerID int64) (bool, error)
	// ListSaved soft-fails: non-candidate callers get an empty list.
	ListSaved(ctx context.Context, candidateID string) ([]OfferView, error)
}
