package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/email"
	"empleaworks-backend/pkg/logger"
	"empleaworks-backend/pkg/storage"
)

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	offerRepo     domain.OfferRepository
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	mailer        Mailer
	files         storage.FileStore
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	offerRepo domain.OfferRepository,
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	mailer Mailer,
	files storage.FileStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		offerRepo:     offerRepo,
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		mailer:        mailer,
		files:         files,
	}
}

// Apply records the application and then notifies both parties. The
// write is durable before any mail is attempted; a failed send never
// rolls the application back.
func (u *applicationUsecase) Apply(ctx context.Context, candidateID string, offerID int64, contact domain.ContactFields) error {
	if candidateID == "" {
		return apperror.Unauthorized("Authentication required")
	}
	if domain.CallerRole(ctx) != domain.RoleCandidate {
		return apperror.Forbidden("Only candidates can apply to offers")
	}

	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Offer not found").Wrap(err)
		}
		return apperror.Internal(err)
	}

	applied, err := u.appRepo.Exists(ctx, candidateID, offerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if applied {
		return apperror.Conflict("You have already applied to this offer").Wrap(domain.ErrDuplicateApplication)
	}

	profile, err := u.candidateRepo.GetByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Upload a CV before applying").Wrap(domain.ErrMissingCV)
		}
		return apperror.Internal(err)
	}
	if profile.CVPath == nil || *profile.CVPath == "" {
		return apperror.BadRequest("Upload a CV before applying").Wrap(domain.ErrMissingCV)
	}
	present, err := u.files.Exists(ctx, *profile.CVPath)
	if err != nil {
		return apperror.Internal(err)
	}
	if !present {
		// A dangling path counts the same as never having uploaded one
		return apperror.BadRequest("Upload a CV before applying").Wrap(domain.ErrMissingCV)
	}

	app := &domain.Application{
		UserID:    candidateID,
		OfferID:   offerID,
		CreatedAt: time.Now(),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return apperror.Conflict("You have already applied to this offer").Wrap(err)
		}
		return apperror.Internal(err)
	}

	u.notify(ctx, candidateID, profile, offer, contact)
	return nil
}

func (u *applicationUsecase) notify(ctx context.Context, candidateID string, profile *domain.CandidateProfile, offer *domain.Offer, contact domain.ContactFields) {
	if !u.mailer.IsConfigured() {
		return
	}

	candidate, err := u.userRepo.GetByID(ctx, candidateID)
	if err != nil {
		logger.Log.Error("Failed to load candidate for application mail", "user_id", candidateID, "error", err)
		return
	}
	owner, err := u.userRepo.GetByID(ctx, offer.UserID)
	if err != nil {
		logger.Log.Error("Failed to load offer owner for application mail", "user_id", offer.UserID, "error", err)
		owner = nil
	}

	data := email.ApplicationEmailData{
		CandidateName:  strings.TrimSpace(candidate.Name + " " + profile.Surname),
		CandidateEmail: candidate.Email,
		CandidatePhone: contact.Phone,
		OfferName:      offer.Name,
	}
	if owner != nil {
		data.CompanyName = owner.Name
	}

	if err := u.mailer.SendApplicationCandidate(candidate.Locale, candidate.Email, data); err != nil {
		logger.Log.Error("Failed to send application confirmation", "user_id", candidateID, "offer_id", offer.ID, "error", err)
	}
	if owner != nil {
		if err := u.mailer.SendApplicationCompany(owner.Locale, owner.Email, data); err != nil {
			logger.Log.Error("Failed to send application notification", "user_id", owner.ID, "offer_id", offer.ID, "error", err)
		}
	}
}

func (u *applicationUsecase) ListApplications(ctx context.Context, candidateID string) ([]domain.OfferView, error) {
	if candidateID == "" {
		return nil, apperror.Unauthorized("Authentication required")
	}
	views, err := u.appRepo.FetchOffers(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if views == nil {
		views = []domain.OfferView{}
	}
	return views, nil
}

func (u *applicationUsecase) HasApplied(ctx context.Context, candidateID string, offerID int64) (bool, error) {
	if candidateID == "" {
		return false, nil
	}
	applied, err := u.appRepo.Exists(ctx, candidateID, offerID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return applied, nil
}
