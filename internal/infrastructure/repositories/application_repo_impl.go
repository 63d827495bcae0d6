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

// ApplicationRepository implements application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create persists an application with its form responses
func (r *ApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	m := &models.Application{
		ID:          application.ID,
		AppliedBy:   application.AppliedBy,
		CourseID:    application.CourseID,
		BatchID:     application.BatchID,
		FullName:    application.FullName,
		Email:       application.Email,
		PhoneNumber: application.PhoneNumber,
		DateOfBirth: application.DateOfBirth,
		Status:      string(application.Status),
		SubmittedOn: application.SubmittedOn,
		UpdatedOn:   application.UpdatedOn,
	}
	for _, fr := range application.FormResponses {
		m.FormResponses = append(m.FormResponses, models.ApplicationFormResponse{
			ID:          fr.ID,
			FormFieldID: fr.FormFieldID,
			ValueText:   fr.ValueText.Ptr(),
			ValueNumber: fr.ValueNumber.Ptr(),
			ValueFile:   fr.ValueFile.Ptr(),
		})
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	application.ID = m.ID
	return nil
}

// GetByID gets an application with its form responses
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	err := r.db.WithContext(ctx).
		Preload("FormResponses").
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return applicationToEntity(&m), nil
}

// ListByStudent returns a student's applications newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Application, error) {
	return r.list(ctx, "applied_by = ?", studentID)
}

// ListByCourse returns all applications submitted for a course
func (r *ApplicationRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entities.Application, error) {
	return r.list(ctx, "course_id = ?", courseID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg interface{}) ([]*entities.Application, error) {
	var rows []models.Application
	err := r.db.WithContext(ctx).
		Preload("FormResponses").
		Where(query, arg).
		Order("submitted_on DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	applications := make([]*entities.Application, 0, len(rows))
	for i := range rows {
		applications = append(applications, applicationToEntity(&rows[i]))
	}
	return applications, nil
}

// UpdateStatus moves an application through the review pipeline
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_on": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func applicationToEntity(m *models.Application) *entities.Application {
	a := &entities.Application{
		ID:          m.ID,
		AppliedBy:   m.AppliedBy,
		CourseID:    m.CourseID,
		BatchID:     m.BatchID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		DateOfBirth: m.DateOfBirth,
		Status:      entities.ApplicationStatus(m.Status),
		SubmittedOn: m.SubmittedOn,
		UpdatedOn:   m.UpdatedOn,
	}
	for _, fr := range m.FormResponses {
		a.FormResponses = append(a.FormResponses, entities.FormResponse{
			ID:          fr.ID,
			FormFieldID: fr.FormFieldID,
			ValueText:   null.StringFromPtr(fr.ValueText),
			ValueNumber: null.Float64FromPtr(fr.ValueNumber),
			ValueFile:   null.StringFromPtr(fr.ValueFile),
		})
	}
	return a
}
