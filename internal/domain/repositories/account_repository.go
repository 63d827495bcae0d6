package repositories

import (
	"context"

	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
)

// AccountRepository defines identity-root data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// StudentRepository defines student-profile data operations
type StudentRepository interface {
	Create(ctx context.Context, profile *entities.StudentProfile) error
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.StudentProfile, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.StudentProfile, error)
	GetByEmail(ctx context.Context, email string) (*entities.StudentProfile, error)
	SetEmailVerified(ctx context.Context, accountID uuid.UUID) error
	SetPhoneNumberVerified(ctx context.Context, accountID uuid.UUID) error
	SetEducationLevel(ctx context.Context, accountID, educationLevelID uuid.UUID) error
	AddTags(ctx context.Context, accountID uuid.UUID, tagIDs []uuid.UUID) error
	AddInterests(ctx context.Context, accountID uuid.UUID, interestIDs []uuid.UUID) error
	AddPreferredLocations(ctx context.Context, accountID uuid.UUID, locationIDs []uuid.UUID) error
	AddToWishlist(ctx context.Context, accountID, courseID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, accountID, courseID uuid.UUID) error
}

// InstituteRepository defines institute-profile data operations
type InstituteRepository interface {
	Create(ctx context.Context, profile *entities.InstituteProfile) error
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.InstituteProfile, error)
	Update(ctx context.Context, profile *entities.InstituteProfile) error
	List(ctx context.Context) ([]*entities.InstituteProfile, error)
}

// OtpRepository records issued codes for auditing; expired rows are
// reaped by a background job.
type OtpRepository interface {
	Create(ctx context.Context, record *entities.OtpRecord) error
	DeleteExpired(ctx context.Context, limit int) (int64, error)
}
