package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/infrastructure/models"
)

// AccountRepository implements identity-root data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	m := &models.Account{
		ID:           account.ID,
		Email:        account.Email,
		Kind:         string(account.Kind),
		PasswordHash: account.PasswordHash,
		IsActive:     account.IsActive,
		IsStaff:      account.IsStaff,
		IsSuperuser:  account.IsSuperuser,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// GetByEmail gets an account by email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var m models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// UpdatePasswordHash sets a new password hash for the account
func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func accountToEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:           m.ID,
		Email:        m.Email,
		Kind:         entities.AccountKind(m.Kind),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		IsStaff:      m.IsStaff,
		IsSuperuser:  m.IsSuperuser,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
