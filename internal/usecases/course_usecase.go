package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/domain/repositories"
)

// CourseUsecase handles catalog business logic
type CourseUsecase struct {
	courseRepo repositories.CourseRepository
}

// NewCourseUsecase creates a new course usecase
func NewCourseUsecase(courseRepo repositories.CourseRepository) *CourseUsecase {
	return &CourseUsecase{courseRepo: courseRepo}
}

// CreateCourse publishes a course under the calling institute
func (u *CourseUsecase) CreateCourse(ctx context.Context, instituteID uuid.UUID, input *entities.CreateCourseInput) (*entities.Course, error) {
	if _, err := u.courseRepo.GetBySlug(ctx, input.Slug); err == nil {
		return nil, domainerrors.Conflict("slug already in use")
	}

	course := &entities.Course{
		ID:            uuid.New(),
		OfferedBy:     instituteID,
		Name:          input.Name,
		Slug:          input.Slug,
		Mode:          input.Mode,
		Description:   input.Description,
		DurationWeeks: input.DurationWeeks,
		FeeAmount:     input.FeeAmount,
	}
	if input.SyllabusURL != "" {
		course.SyllabusURL = null.StringFrom(input.SyllabusURL)
	}
	if input.FeeBreakdownURL != "" {
		course.FeeBreakdownURL = null.StringFrom(input.FeeBreakdownURL)
	}
	for _, id := range input.TagIDs {
		course.Tags = append(course.Tags, entities.Tag{ID: id})
	}
	for _, detail := range input.Eligibility {
		course.Eligibility = append(course.Eligibility, entities.EligibilityCriteria{
			ID:     uuid.New(),
			Detail: detail,
		})
	}
	for _, b := range input.Batches {
		course.Batches = append(course.Batches, entities.Batch{
			ID:               uuid.New(),
			Location:         b.Location,
			CommencementDate: null.TimeFromPtr(b.CommencementDate),
			Discount:         b.Discount,
		})
	}
	for _, f := range input.FormFields {
		course.FormFields = append(course.FormFields, entities.ApplicationFormField{
			ID:       uuid.New(),
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
		})
	}

	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return u.courseRepo.GetByID(ctx, course.ID)
}

// GetCourse gets a course by ID
func (u *CourseUsecase) GetCourse(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	return u.courseRepo.GetByID(ctx, id)
}

// GetCourseBySlug gets a course by its URL slug
func (u *CourseUsecase) GetCourseBySlug(ctx context.Context, slug string) (*entities.Course, error) {
	return u.courseRepo.GetBySlug(ctx, slug)
}

// ListCourses returns a page of the public catalog
func (u *CourseUsecase) ListCourses(ctx context.Context, limit, offset int) ([]*entities.Course, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return u.courseRepo.List(ctx, limit, offset)
}

// ListInstituteCourses returns the calling institute's courses
func (u *CourseUsecase) ListInstituteCourses(ctx context.Context, instituteID uuid.UUID) ([]*entities.Course, error) {
	return u.courseRepo.ListByInstitute(ctx, instituteID)
}

// UpdateCourse updates a course the institute owns
func (u *CourseUsecase) UpdateCourse(ctx context.Context, instituteID, courseID uuid.UUID, input *entities.UpdateCourseInput) (*entities.Course, error) {
	course, err := u.ownedCourse(ctx, instituteID, courseID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		course.Name = input.Name
	}
	if input.Mode != "" {
		course.Mode = input.Mode
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.DurationWeeks > 0 {
		course.DurationWeeks = input.DurationWeeks
	}
	if input.FeeAmount != nil {
		course.FeeAmount = *input.FeeAmount
	}
	if input.SyllabusURL != "" {
		course.SyllabusURL = null.StringFrom(input.SyllabusURL)
	}
	if input.FeeBreakdownURL != "" {
		course.FeeBreakdownURL = null.StringFrom(input.FeeBreakdownURL)
	}

	if err := u.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return u.courseRepo.GetByID(ctx, courseID)
}

// DeleteCourse removes a course the institute owns
func (u *CourseUsecase) DeleteCourse(ctx context.Context, instituteID, courseID uuid.UUID) error {
	if _, err := u.ownedCourse(ctx, instituteID, courseID); err != nil {
		return err
	}
	return u.courseRepo.Delete(ctx, courseID)
}

// AddBatch schedules a new batch under a course the institute owns
func (u *CourseUsecase) AddBatch(ctx context.Context, instituteID, courseID uuid.UUID, input *entities.BatchInput) (*entities.Batch, error) {
	if _, err := u.ownedCourse(ctx, instituteID, courseID); err != nil {
		return nil, err
	}

	batch := &entities.Batch{
		ID:       uuid.New(),
		CourseID: courseID,
		Location: input.Location,
		Discount: input.Discount,
	}
	if input.CommencementDate != nil {
		batch.CommencementDate = null.TimeFrom(input.CommencementDate.Truncate(24 * time.Hour))
	}

	if err := u.courseRepo.AddBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (u *CourseUsecase) ownedCourse(ctx context.Context, instituteID, courseID uuid.UUID) (*entities.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.OfferedBy != instituteID {
		return nil, domainerrors.Forbidden("course belongs to another institute")
	}
	return course, nil
}
