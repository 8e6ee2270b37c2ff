package usecase

import (
	"context"
	"errors"
	"time"

	"empleaworks-backend/internal/domain"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/logger"
	"empleaworks-backend/pkg/security"
	"empleaworks-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
	files       storage.FileStore
	validate    *validator.Validate
}

func NewCompanyUsecase(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	files storage.FileStore,
	validate *validator.Validate,
) domain.CompanyUsecase {
	return &companyUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		files:       files,
		validate:    validate,
	}
}

func (u *companyUsecase) requireCompany(ctx context.Context, userID string) (*domain.User, *domain.CompanyProfile, error) {
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
	if user.Role != domain.RoleCompany {
		return nil, nil, apperror.Forbidden("Not a company account")
	}

	profile, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Company profile not found").Wrap(err)
		}
		return nil, nil, apperror.Internal(err)
	}
	return user, profile, nil
}

func (u *companyUsecase) GetProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	_, profile, err := u.requireCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, userID string, input domain.UpdateCompanyInput) error {
	user, profile, err := u.requireCompany(ctx, userID)
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

	profile.Address = input.Address
	profile.WebLink = input.WebLink
	if err := u.companyRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) UploadLogo(ctx context.Context, userID, filename string, data []byte, mime string) (string, error) {
	user, _, err := u.requireCompany(ctx, userID)
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

	path, err := u.files.Save(ctx, logoDir, filename, data)
	if err != nil {
		return "", apperror.Internal(err)
	}

	old := user.ImagePath
	user.ImagePath = &path
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return "", apperror.Internal(err)
	}

	if old != nil && *old != "" {
		if err := u.files.Delete(ctx, *old); err != nil {
			logger.Log.Warn("Failed to delete replaced logo", "path", *old, "error", err)
		}
	}
	return path, nil
}
