package domain

import (
	"context"
	"time"
)

// Offer is a job offer owned by exactly one company-role user.
type Offer struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"` // owning company
	Name         string    `json:"name"`    // unique across all offers
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Degree       string    `json:"degree"`
	Email        string    `json:"email"`
	ContractType string    `json:"contract_type"`
	JobLocation  string    `json:"job_location"`
	ClosingDate  time.Time `json:"closing_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OfferView is the read shape handed to the presentation layer: the
// offer joined with its owning company's public fields.
type OfferView struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Degree       string       `json:"degree"`
	Email        string       `json:"email"`
	ContractType string       `json:"contract_type"`
	JobLocation  string       `json:"job_location"`
	ClosingDate  time.Time    `json:"closing_date"`
	Company      *CompanyView `json:"company"`
}

// OfferFilter narrows listOffers. Zero values mean "no filter".
type OfferFilter struct {
	Query        string // free text over name/description
	Category     string
	ContractType string
}

type OfferRepository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id int64) (*Offer, error)
	GetViewByID(ctx context.Context, id int64) (*OfferView, error)
	Fetch(ctx context.Context, filter OfferFilter) ([]OfferView, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]OfferView, error)
	Update(ctx context.Context, offer *Offer) error
	// Delete cascades the offer's application and saved-offer rows.
	Delete(ctx context.Context, id int64) error
	// NameTaken reports whether another offer (excluding excludeID, 0 for
	// none) already uses the given name.
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	// FindClosedBefore returns offers whose closing date is at or before cutoff.
	FindClosedBefore(ctx context.Context, cutoff time.Time) ([]Offer, error)
}

type OfferInput struct {
	Name         string    `validate:"required,min=3,max=255"`
	Description  string    `validate:"required"`
	Category     string    `validate:"required,max=100"`
	Degree       string    `validate:"required,max=100"`
	Email        string    `validate:"required,email"`
	ContractType string    `validate:"required,max=100"`
	JobLocation  string    `validate:"required,max=255"`
	ClosingDate  time.Time `validate:"required"`
}

type OfferUsecase interface {
	CreateOffer(ctx context.Context, ownerID string, input OfferInput) (*Offer, error)
	UpdateOffer(ctx context.Context, offerID int64, callerID string, input OfferInput) (*Offer, error)
	DeleteOffer(ctx context.Context, offerID int64, callerID string) error
	GetOffer(ctx context.Context, offerID int64) (*OfferView, error)
	ListOffers(ctx context.Context, filter OfferFilter) ([]OfferView, error)
	ListOwnOffers(ctx context.Context, ownerID string) ([]OfferView, error)
}

// CleanupUsecase is the daily sweep removing offers whose closing date
// passed more than the grace period ago.
type CleanupUsecase interface {
	DeleteClosedOffers(ctx context.Context, now time.Time, graceDays int) (int, error)
}
