package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"enrols.backend/internal/domain/entities"
	"enrols.backend/internal/domain/repositories"
)

// InstituteUsecase handles institute profile business logic
type InstituteUsecase struct {
	instituteRepo repositories.InstituteRepository
}

// NewInstituteUsecase creates a new institute usecase
func NewInstituteUsecase(instituteRepo repositories.InstituteRepository) *InstituteUsecase {
	return &InstituteUsecase{instituteRepo: instituteRepo}
}

// GetProfile gets an institute's public profile
func (u *InstituteUsecase) GetProfile(ctx context.Context, accountID uuid.UUID) (*entities.InstituteProfile, error) {
	return u.instituteRepo.GetByAccountID(ctx, accountID)
}

// List lists all institute profiles
func (u *InstituteUsecase) List(ctx context.Context) ([]*entities.InstituteProfile, error) {
	return u.instituteRepo.List(ctx)
}

// UpdateProfile replaces the admin's own institute page content
func (u *InstituteUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *entities.UpdateInstituteProfileInput) (*entities.InstituteProfile, error) {
	profile := &entities.InstituteProfile{
		AccountID:   accountID,
		Name:        input.Name,
		Description: input.Description,
	}
	if input.LogoURL != "" {
		profile.LogoURL = null.StringFrom(input.LogoURL)
	}
	for _, d := range input.Details {
		profile.Details = append(profile.Details, entities.Detail{Detail: d.Detail, Info: d.Info})
	}

	if err := u.instituteRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.instituteRepo.GetByAccountID(ctx, accountID)
}
