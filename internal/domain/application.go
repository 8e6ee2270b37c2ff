package domain

import (
	"context"
	"time"
)

// Application records the fact "candidate X applied to offer Y".
// At most one row per (candidate, offer) pair, enforced by the store.
type Application struct {
	UserID    string    `json:"user_id"`
	OfferID   int64     `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactFields travel with an application into the notification mails;
// they are not persisted on the relation itself.
type ContactFields struct {
	Phone string `validate:"omitempty,max=30"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, userID string, offerID int64) (bool, error)
	// FetchOffers returns the offers the candidate applied to, most
	// recent application first.
	FetchOffers(ctx context.Context, userID string) ([]OfferView, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID string, offerID int64, contact ContactFields) error
	ListApplications(ctx context.Context, candidateID string) ([]OfferView, error)
	HasApplied(ctx context.Context, candidateID string, offerID int64) (bool, error)
}
