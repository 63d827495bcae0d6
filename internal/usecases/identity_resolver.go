package usecases

import (
	"context"
	"errors"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/domain/repositories"
)

// IdentityResolver loads the richest profile view for an account.
type IdentityResolver struct {
	studentRepo   repositories.StudentRepository
	instituteRepo repositories.InstituteRepository
}

// NewIdentityResolver creates a new identity resolver
func NewIdentityResolver(studentRepo repositories.StudentRepository, instituteRepo repositories.InstituteRepository) *IdentityResolver {
	return &IdentityResolver{
		studentRepo:   studentRepo,
		instituteRepo: instituteRepo,
	}
}

// Resolve loads the profile matching the account's kind. A missing
// profile row degrades to the bare account instead of failing; only
// infrastructure errors propagate.
func (r *IdentityResolver) Resolve(ctx context.Context, account *entities.Account) (*entities.Identity, error) {
	identity := &entities.Identity{Account: account}

	switch account.Kind {
	case entities.AccountKindStudent:
		profile, err := r.studentRepo.GetByAccountID(ctx, account.ID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return identity, nil
			}
			return nil, err
		}
		identity.Student = profile
	case entities.AccountKindInstituteAdmin:
		profile, err := r.instituteRepo.GetByAccountID(ctx, account.ID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return identity, nil
			}
			return nil, err
		}
		identity.Institute = profile
	}
	return identity, nil
}
