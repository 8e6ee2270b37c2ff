package usecase

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type offerUsecase struct {
	offerRepo domain.OfferRepository
	validate  *validator.Validate
}

func NewOfferUsecase(offerRepo domain.OfferRepository, validate *validator.Validate) domain.OfferUsecase {
	return &offerUsecase{offerRepo: offerRepo, validate: validate}
}

func (u *offerUsecase) CreateOffer(ctx context.Context, ownerID string, input domain.OfferInput) (*domain.Offer, error) {
	if ownerID == "" {
		return nil, apperror.Unauthorized("Authentication required")
	}
	if domain.CallerRole(ctx) != domain.RoleCompany {
		return nil, apperror.Forbidden("Only companies can publish offers")
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	// Closing date is checked on creation only; editing an offer past its
	// closing date stays allowed.
	if !input.ClosingDate.After(time.Now()) {
		return nil, apperror.BadRequest("Closing date must be in the future")
	}

	taken, err := u.offerRepo.NameTaken(ctx, input.Name, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken {
		return nil, apperror.Conflict("An offer with this title already exists").Wrap(domain.ErrDuplicateTitle)
	}

	now := time.Now()
	offer := &domain.Offer{
		UserID:       ownerID,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Degree:       input.Degree,
		Email:        input.Email,
		ContractType: input.ContractType,
		JobLocation:  input.JobLocation,
		ClosingDate:  input.ClosingDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.offerRepo.Create(ctx, offer); err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, apperror.Conflict("An offer with this title already exists").Wrap(err)
		}
		return nil, apperror.Internal(err)
	}
	return offer, nil
}

func (u *offerUsecase) UpdateOffer(ctx context.Context, offerID int64, callerID string, input domain.OfferInput) (*domain.Offer, error) {
	if callerID == "" {
		return nil, apperror.Unauthorized("Authentication required")
	}

	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offer not found").Wrap(err)
		}
		return nil, apperror.Internal(err)
	}
	if offer.UserID != callerID {
		return nil, apperror.Forbidden("You do not own this offer")
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Keeping the offer's own title is not a collision
	taken, err := u.offerRepo.NameTaken(ctx, input.Name, offerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken {
		return nil, apperror.Conflict("An offer with this title already exists").Wrap(domain.ErrDuplicateTitle)
	}

	offer.Name = input.Name
	offer.Description = input.Description
	offer.Category = input.Category
	offer.Degree = input.Degree
	offer.Email = input.Email
	offer.ContractType = input.ContractType
	offer.JobLocation = input.JobLocation
	offer.ClosingDate = input.ClosingDate
	offer.UpdatedAt = time.Now()

	if err := u.offerRepo.Update(ctx, offer); err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, apperror.Conflict("An offer with this title already exists").Wrap(err)
		}
		return nil, apperror.Internal(err)
	}
	return offer, nil
}

func (u *offerUsecase) DeleteOffer(ctx context.Context, offerID int64, callerID string) error {
	if callerID == "" {
		return apperror.Unauthorized("Authentication required")
	}

	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Offer not found").Wrap(err)
		}
		return apperror.Internal(err)
	}
	if offer.UserID != callerID {
		return apperror.Forbidden("You do not own this offer")
	}

	if err := u.offerRepo.Delete(ctx, offerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Offer not found").Wrap(err)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *offerUsecase) GetOffer(ctx context.Context, offerID int64) (*domain.OfferView, error) {
	view, err := u.offerRepo.GetViewByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Offer not found").Wrap(err)
		}
		return nil, apperror.Internal(err)
	}
	return view, nil
}

func (u *offerUsecase) ListOffers(ctx context.Context, filter domain.OfferFilter) ([]domain.OfferView, error) {
	views, err := u.offerRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if views == nil {
		views = []domain.OfferView{}
	}
	return views, nil
}

func (u *offerUsecase) ListOwnOffers(ctx context.Context, ownerID string) ([]domain.OfferView, error) {
	if ownerID == "" {
		return nil, apperror.Unauthorized("Authentication required")
	}
	views, err := u.offerRepo.FetchByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if views == nil {
		views = []domain.OfferView{}
	}
	return views, nil
}
