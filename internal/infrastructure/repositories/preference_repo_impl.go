package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/infrastructure/models"
)

// PreferenceRepository implements reference-data lookups for preferences
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// ListTags returns all tags ordered by name
func (r *PreferenceRepository) ListTags(ctx context.Context) ([]entities.Tag, error) {
	var rows []models.Tag
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	tags := make([]entities.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, tagToEntity(&rows[i]))
	}
	return tags, nil
}

// ListInterests returns all interests ordered by name
func (r *PreferenceRepository) ListInterests(ctx context.Context) ([]entities.Interest, error) {
	var rows []models.Interest
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	interests := make([]entities.Interest, 0, len(rows))
	for _, m := range rows {
		interests = append(interests, entities.Interest{
			ID:       m.ID,
			Name:     m.Name,
			ImageURL: null.StringFromPtr(m.ImageURL),
		})
	}
	return interests, nil
}

// ListLocations returns all locations ordered by name
func (r *PreferenceRepository) ListLocations(ctx context.Context) ([]entities.Location, error) {
	var rows []models.Location
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	locations := make([]entities.Location, 0, len(rows))
	for _, m := range rows {
		locations = append(locations, entities.Location{
			ID:       m.ID,
			Name:     m.Name,
			ImageURL: null.StringFromPtr(m.ImageURL),
		})
	}
	return locations, nil
}

// ListEducationLevels returns all education levels ordered by name
func (r *PreferenceRepository) ListEducationLevels(ctx context.Context) ([]entities.EducationLevel, error) {
	var rows []models.EducationLevel
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	levels := make([]entities.EducationLevel, 0, len(rows))
	for _, m := range rows {
		levels = append(levels, entities.EducationLevel{
			ID:       m.ID,
			Name:     m.Name,
			ImageURL: null.StringFromPtr(m.ImageURL),
		})
	}
	return levels, nil
}

// GetEducationLevel gets one education level by ID
func (r *PreferenceRepository) GetEducationLevel(ctx context.Context, id uuid.UUID) (*entities.EducationLevel, error) {
	var m models.EducationLevel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.EducationLevel{
		ID:       m.ID,
		Name:     m.Name,
		ImageURL: null.StringFromPtr(m.ImageURL),
	}, nil
}
