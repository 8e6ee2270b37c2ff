package usecase

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/images"
	"empleaworks-backend/pkg/logger"
	"empleaworks-backend/pkg/security"
	"empleaworks-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

const (
	avatarDir = "images"
	cvDir     = "cvs"
	logoDir   = "logos"

	maxAvatarSize = 5 << 20  // 5 MB
	maxCVSize     = 10 << 20 // 10 MB
)

type candidateUsecase struct {
	userRepo      domain.UserRepository
	candidateRepo domain.CandidateRepository
	files         storage.FileStore
	validate      *validator.Validate
}

func NewCandidateUsecase(
	userRepo domain.UserRepository,
	candidateRepo domain.CandidateRepository,
	files storage.FileStore,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		files:         files,
		validate:      validate,
	}
}

// requireCandidate loads the user and its profile row, enforcing that
// the context caller is acting on their own profile.
func (u *candidateUsecase) requireCandidate(ctx context.Context, userID string) (*domain.User, *domain.CandidateProfile, error) {
	callerID := domain.CallerID(ctx)
	if callerID == "" {
		return nil, nil, apperror.Unauthorized("Authentication required")
	}
	if callerID != userID {
		return nil, nil, apperror.Forbidden("You can only manage your own profile")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("User not found").Wrap(err)
		}
		return nil, nil, apperror.Internal(err)
	}
	if user.Role != domain.RoleCandidate {
		return nil, nil, apperror.Forbidden("Not a candidate account")
	}

	profile, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Candidate profile not found").Wrap(err)
		}
		return nil, nil, apperror.Internal(err)
	}
	return user, profile, nil
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateView, error) {
	user, profile, err := u.requireCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.CandidateView{User: *user, Profile: *profile}, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, userID string, input domain.UpdateCandidateInput) error {
	user, profile, err := u.requireCandidate(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(err.Error())
	}

	user.Name = input.Name
	user.Description = input.Description
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}

	profile.Surname = input.Surname
	if err := u.candidateRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) UploadAvatar(ctx context.Context, userID, filename string, data []byte, mime string) (string, error) {
	user, _, err := u.requireCandidate(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(data) > maxAvatarSize {
		return "", apperror.BadRequest("Image exceeds the 5MB limit")
	}
	if result := security.ValidateImage(filename, data, mime); !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}
	filename, data = normalizeImage(filename, data)

	path, err := u.files.Save(ctx, avatarDir, filename, data)
	if err != nil {
		return "", apperror.Internal(err)
	}

	old := user.ImagePath
	user.ImagePath = &path
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return "", apperror.Internal(err)
	}
	u.removeOld(ctx, old)
	return path, nil
}

func (u *candidateUsecase) UploadCV(ctx context.Context, userID, filename string, data []byte, mime string) (string, error) {
	_, profile, err := u.requireCandidate(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(data) > maxCVSize {
		return "", apperror.BadRequest("Document exceeds the 10MB limit")
	}
	if result := security.ValidateDocument(filename, data, mime); !result.Valid {
		return "", apperror.BadRequest(result.Error)
	}

	path, err := u.files.Save(ctx, cvDir, filename, data)
	if err != nil {
		return "", apperror.Internal(err)
	}

	old := profile.CVPath
	profile.CVPath = &path
	if err := u.candidateRepo.Update(ctx, profile); err != nil {
		return "", apperror.Internal(err)
	}
	u.removeOld(ctx, old)
	return path, nil
}

func (u *candidateUsecase) DeleteCV(ctx context.Context, userID string) error {
	_, profile, err := u.requireCandidate(ctx, userID)
	if err != nil {
		return err
	}
	if profile.CVPath == nil {
		return nil
	}

	old := profile.CVPath
	profile.CVPath = nil
	if err := u.candidateRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	u.removeOld(ctx, old)
	return nil
}

// normalizeImage re-encodes a validated avatar or logo as a bounded
// JPEG. Input that passed the magic byte check but does not decode is
// stored as received.
func normalizeImage(filename string, data []byte) (string, []byte) {
	normalized, err := images.Normalize(data, images.MaxDimension, images.JPEGQuality)
	if err != nil {
		logger.Log.Warn("Image normalization failed, storing original", "file", filename, "error", err)
		return filename, data
	}
	return images.AsJPEG(filename), normalized
}

func (u *candidateUsecase) removeOld(ctx context.Context, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := u.files.Delete(ctx, *path); err != nil {
		logger.Log.Warn("Failed to delete replaced file", "path", *path, "error", err)
	}
}
