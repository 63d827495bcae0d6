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

// CourseRepository implements course catalog data operations
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create persists a course together with its nested batches,
// eligibility lines, form fields and tag links in one transaction.
func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	m := courseToModel(course)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(m).Error; err != nil {
			return err
		}
		if len(course.Tags) > 0 {
			tags := make([]models.Tag, 0, len(course.Tags))
			for _, t := range course.Tags {
				tags = append(tags, models.Tag{ID: t.ID})
			}
			if err := tx.Model(m).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		course.ID = m.ID
		course.CreatedAt = m.CreatedAt
		course.UpdatedAt = m.UpdatedAt
		return nil
	})
}

// GetByID gets a course by ID with all nested collections
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetBySlug gets a course by its URL slug
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*entities.Course, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

func (r *CourseRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Course, error) {
	var m models.Course
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Batches").
		Preload("Eligibility").
		Preload("FormFields").
		Where(query, arg).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return courseToEntity(&m), nil
}

// GetBatch gets a single batch by ID
func (r *CourseRepository) GetBatch(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error) {
	var m models.Batch
	if err := r.db.WithContext(ctx).Where("id = ?", batchID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	batch := batchToEntity(&m)
	return &batch, nil
}

// List returns a page of courses newest first along with the total count
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]*entities.Course, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Course
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Batches").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	courses := make([]*entities.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, courseToEntity(&rows[i]))
	}
	return courses, total, nil
}

// ListByInstitute returns all courses offered by an institute
func (r *CourseRepository) ListByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*entities.Course, error) {
	var rows []models.Course
	err := r.db.WithContext(ctx).
		Preload("Batches").
		Where("offered_by = ?", instituteID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	courses := make([]*entities.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, courseToEntity(&rows[i]))
	}
	return courses, nil
}

// Update saves mutable course attributes
func (r *CourseRepository) Update(ctx context.Context, course *entities.Course) error {
	updates := map[string]interface{}{
		"name":           course.Name,
		"mode":           string(course.Mode),
		"description":    course.Description,
		"duration_weeks": course.DurationWeeks,
		"fee_amount":     course.FeeAmount,
	}
	if course.SyllabusURL.Valid {
		updates["syllabus_url"] = course.SyllabusURL.String
	}
	if course.FeeBreakdownURL.Valid {
		updates["fee_breakdown_url"] = course.FeeBreakdownURL.String
	}

	result := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", course.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft-deletes a course
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddBatch appends a batch to an existing course
func (r *CourseRepository) AddBatch(ctx context.Context, batch *entities.Batch) error {
	m := &models.Batch{
		ID:               batch.ID,
		CourseID:         batch.CourseID,
		Location:         batch.Location,
		CommencementDate: batch.CommencementDate.Ptr(),
		Discount:         batch.Discount,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	batch.ID = m.ID
	return nil
}

func courseToModel(c *entities.Course) *models.Course {
	m := &models.Course{
		ID:              c.ID,
		OfferedBy:       c.OfferedBy,
		Name:            c.Name,
		Slug:            c.Slug,
		Mode:            string(c.Mode),
		Description:     c.Description,
		DurationWeeks:   c.DurationWeeks,
		FeeAmount:       c.FeeAmount,
		SyllabusURL:     c.SyllabusURL.Ptr(),
		FeeBreakdownURL: c.FeeBreakdownURL.Ptr(),
	}
	for _, b := range c.Batches {
		m.Batches = append(m.Batches, models.Batch{
			ID:               b.ID,
			Location:         b.Location,
			CommencementDate: b.CommencementDate.Ptr(),
			Discount:         b.Discount,
		})
	}
	for _, e := range c.Eligibility {
		m.Eligibility = append(m.Eligibility, models.EligibilityCriteria{
			ID:     e.ID,
			Detail: e.Detail,
		})
	}
	for _, f := range c.FormFields {
		m.FormFields = append(m.FormFields, models.ApplicationFormField{
			ID:       f.ID,
			Label:    f.Label,
			Type:     string(f.Type),
			Required: f.Required,
		})
	}
	return m
}

func courseToEntity(m *models.Course) *entities.Course {
	c := &entities.Course{
		ID:              m.ID,
		OfferedBy:       m.OfferedBy,
		Name:            m.Name,
		Slug:            m.Slug,
		Mode:            entities.CourseMode(m.Mode),
		Description:     m.Description,
		DurationWeeks:   m.DurationWeeks,
		FeeAmount:       m.FeeAmount,
		SyllabusURL:     null.StringFromPtr(m.SyllabusURL),
		FeeBreakdownURL: null.StringFromPtr(m.FeeBreakdownURL),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	for i := range m.Tags {
		c.Tags = append(c.Tags, tagToEntity(&m.Tags[i]))
	}
	for i := range m.Batches {
		c.Batches = append(c.Batches, batchToEntity(&m.Batches[i]))
	}
	for i := range m.Eligibility {
		c.Eligibility = append(c.Eligibility, entities.EligibilityCriteria{
			ID:       m.Eligibility[i].ID,
			CourseID: m.Eligibility[i].CourseID,
			Detail:   m.Eligibility[i].Detail,
		})
	}
	for i := range m.FormFields {
		c.FormFields = append(c.FormFields, entities.ApplicationFormField{
			ID:       m.FormFields[i].ID,
			CourseID: m.FormFields[i].CourseID,
			Label:    m.FormFields[i].Label,
			Type:     entities.FormFieldType(m.FormFields[i].Type),
			Required: m.FormFields[i].Required,
		})
	}
	return c
}

func batchToEntity(m *models.Batch) entities.Batch {
	return entities.Batch{
		ID:               m.ID,
		CourseID:         m.CourseID,
		Location:         m.Location,
		CommencementDate: null.TimeFromPtr(m.CommencementDate),
		Discount:         m.Discount,
	}
}

func tagToEntity(m *models.Tag) entities.Tag {
	return entities.Tag{
		ID:   m.ID,
		Name: m.Name,
		Type: entities.TagType(m.Type),
	}
}
