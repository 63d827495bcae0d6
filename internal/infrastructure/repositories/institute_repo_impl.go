package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/infrastructure/models"
)

// InstituteRepository implements institute-profile data operations
type InstituteRepository struct {
	db *gorm.DB
}

// NewInstituteRepository creates a new institute repository
func NewInstituteRepository(db *gorm.DB) *InstituteRepository {
	return &InstituteRepository{db: db}
}

// Create creates a new institute profile
func (r *InstituteRepository) Create(ctx context.Context, profile *entities.InstituteProfile) error {
	m := &models.InstituteProfile{
		AccountID:   profile.AccountID,
		Name:        profile.Name,
		Description: profile.Description,
		LogoURL:     profile.LogoURL.Ptr(),
		CreatedAt:   profile.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByAccountID gets an institute profile by account identifier
func (r *InstituteRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.InstituteProfile, error) {
	var m models.InstituteProfile
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Preload("Account").
		Preload("Details").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return instituteToEntity(&m), nil
}

// Update replaces the mutable profile fields and detail rows
func (r *InstituteRepository) Update(ctx context.Context, profile *entities.InstituteProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InstituteProfile{}).
			Where("account_id = ?", profile.AccountID).
			Updates(map[string]interface{}{
				"name":        profile.Name,
				"description": profile.Description,
				"logo_url":    profile.LogoURL.Ptr(),
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}

		// Detail rows are replaced wholesale on every update.
		if err := tx.Where("institute_id = ?", profile.AccountID).Delete(&models.InstituteDetail{}).Error; err != nil {
			return err
		}
		for _, d := range profile.Details {
			row := &models.InstituteDetail{
				ID:          uuid.New(),
				InstituteID: profile.AccountID,
				Detail:      d.Detail,
				Info:        d.Info,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List lists all institute profiles
func (r *InstituteRepository) List(ctx context.Context) ([]*entities.InstituteProfile, error) {
	var rows []models.InstituteProfile
	if err := r.db.WithContext(ctx).Preload("Account").Preload("Details").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	var profiles []*entities.InstituteProfile
	for _, m := range rows {
		row := m
		profiles = append(profiles, instituteToEntity(&row))
	}
	return profiles, nil
}

func instituteToEntity(m *models.InstituteProfile) *entities.InstituteProfile {
	e := &entities.InstituteProfile{
		AccountID:   m.AccountID,
		Email:       m.Account.Email,
		Name:        m.Name,
		Description: m.Description,
		LogoURL:     null.StringFromPtr(m.LogoURL),
		CreatedAt:   m.CreatedAt,
	}
	for _, d := range m.Details {
		e.Details = append(e.Details, entities.Detail{ID: d.ID, Detail: d.Detail, Info: d.Info})
	}
	return e
}
