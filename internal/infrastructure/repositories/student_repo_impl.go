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

// StudentRepository implements student-profile data operations
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student profile
func (r *StudentRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	m := &models.StudentProfile{
		AccountID:           profile.AccountID,
		FullName:            profile.FullName,
		PhoneNumber:         profile.PhoneNumber,
		EmailVerified:       profile.EmailVerified,
		PhoneNumberVerified: profile.PhoneNumberVerified,
		CreatedAt:           profile.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByAccountID gets a student profile by its shared account identifier
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.StudentProfile, error) {
	return r.getOne(ctx, "account_id = ?", accountID)
}

// GetByPhoneNumber gets a student profile by phone number (E.164)
func (r *StudentRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.StudentProfile, error) {
	return r.getOne(ctx, "phone_number = ?", phoneNumber)
}

// GetByEmail gets a student profile via its account email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	err := r.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = student_profiles.account_id").
		Where("accounts.email = ?", email).
		Preload("Account").
		Preload("CurrentEducationLevel").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return studentToEntity(&m), nil
}

func (r *StudentRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Preload("Account").
		Preload("CurrentEducationLevel").
		Preload("SelectedTags").
		Preload("Interests").
		Preload("PreferredLocations").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return studentToEntity(&m), nil
}

// SetEmailVerified marks the student's email as verified. Idempotent.
func (r *StudentRepository) SetEmailVerified(ctx context.Context, accountID uuid.UUID) error {
	return r.setFlag(ctx, accountID, map[string]interface{}{
		"email_verified": true,
		"updated_at":     time.Now(),
	})
}

// SetPhoneNumberVerified marks the student's phone as verified. Idempotent.
func (r *StudentRepository) SetPhoneNumberVerified(ctx context.Context, accountID uuid.UUID) error {
	now := time.Now()
	return r.setFlag(ctx, accountID, map[string]interface{}{
		"phone_number_verified": true,
		"phone_verified_at":     now,
		"updated_at":            now,
	})
}

// SetEducationLevel sets the student's current education level
func (r *StudentRepository) SetEducationLevel(ctx context.Context, accountID, educationLevelID uuid.UUID) error {
	return r.setFlag(ctx, accountID, map[string]interface{}{
		"current_education_level_id": educationLevelID,
		"updated_at":                 time.Now(),
	})
}

func (r *StudentRepository) setFlag(ctx context.Context, accountID uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.StudentProfile{}).
		Where("account_id = ?", accountID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddTags attaches tags to the student's selection
func (r *StudentRepository) AddTags(ctx context.Context, accountID uuid.UUID, tagIDs []uuid.UUID) error {
	return r.appendAssociation(ctx, accountID, "SelectedTags", tagModels(tagIDs))
}

// AddInterests attaches interests to the student
func (r *StudentRepository) AddInterests(ctx context.Context, accountID uuid.UUID, interestIDs []uuid.UUID) error {
	interests := make([]models.Interest, len(interestIDs))
	for i, id := range interestIDs {
		interests[i] = models.Interest{ID: id}
	}
	return r.appendAssociation(ctx, accountID, "Interests", interests)
}

// AddPreferredLocations attaches preferred locations to the student
func (r *StudentRepository) AddPreferredLocations(ctx context.Context, accountID uuid.UUID, locationIDs []uuid.UUID) error {
	locations := make([]models.Location, len(locationIDs))
	for i, id := range locationIDs {
		locations[i] = models.Location{ID: id}
	}
	return r.appendAssociation(ctx, accountID, "PreferredLocations", locations)
}

// AddToWishlist adds a course to the student's wishlist
func (r *StudentRepository) AddToWishlist(ctx context.Context, accountID, courseID uuid.UUID) error {
	return r.appendAssociation(ctx, accountID, "Wishlist", []models.Course{{ID: courseID}})
}

// RemoveFromWishlist removes a course from the student's wishlist
func (r *StudentRepository) RemoveFromWishlist(ctx context.Context, accountID, courseID uuid.UUID) error {
	m := &models.StudentProfile{AccountID: accountID}
	return r.db.WithContext(ctx).Model(m).Association("Wishlist").Delete(&models.Course{ID: courseID})
}

func (r *StudentRepository) appendAssociation(ctx context.Context, accountID uuid.UUID, name string, value interface{}) error {
	var m models.StudentProfile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	return r.db.WithContext(ctx).Model(&m).Association(name).Append(value)
}

func tagModels(ids []uuid.UUID) []models.Tag {
	tags := make([]models.Tag, len(ids))
	for i, id := range ids {
		tags[i] = models.Tag{ID: id}
	}
	return tags
}

func studentToEntity(m *models.StudentProfile) *entities.StudentProfile {
	e := &entities.StudentProfile{
		AccountID:           m.AccountID,
		Email:               m.Account.Email,
		FullName:            m.FullName,
		PhoneNumber:         m.PhoneNumber,
		EmailVerified:       m.EmailVerified,
		PhoneNumberVerified: m.PhoneNumberVerified,
		PhoneVerifiedAt:     null.TimeFromPtr(m.PhoneVerifiedAt),
		CreatedAt:           m.CreatedAt,
	}
	if m.CurrentEducationLevel != nil {
		e.CurrentEducationLevel = &entities.EducationLevel{
			ID:       m.CurrentEducationLevel.ID,
			Name:     m.CurrentEducationLevel.Name,
			ImageURL: null.StringFromPtr(m.CurrentEducationLevel.ImageURL),
		}
	}
	for _, t := range m.SelectedTags {
		e.SelectedTags = append(e.SelectedTags, entities.Tag{ID: t.ID, Name: t.Name, Type: entities.TagType(t.Type)})
	}
	for _, i := range m.Interests {
		e.Interests = append(e.Interests, entities.Interest{ID: i.ID, Name: i.Name, ImageURL: null.StringFromPtr(i.ImageURL)})
	}
	for _, l := range m.PreferredLocations {
		e.PreferredLocations = append(e.PreferredLocations, entities.Location{ID: l.ID, Name: l.Name, ImageURL: null.StringFromPtr(l.ImageURL)})
	}
	return e
}
