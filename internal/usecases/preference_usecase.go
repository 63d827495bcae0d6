package usecases

import (
	"context"

	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
	"enrols.backend/internal/domain/repositories"
)

// PreferenceUsecase handles student discovery preferences
type PreferenceUsecase struct {
	preferenceRepo repositories.PreferenceRepository
	studentRepo    repositories.StudentRepository
	courseRepo     repositories.CourseRepository
}

// NewPreferenceUsecase creates a new preference usecase
func NewPreferenceUsecase(
	preferenceRepo repositories.PreferenceRepository,
	studentRepo repositories.StudentRepository,
	courseRepo repositories.CourseRepository,
) *PreferenceUsecase {
	return &PreferenceUsecase{
		preferenceRepo: preferenceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// ListTags returns the tag reference data
func (u *PreferenceUsecase) ListTags(ctx context.Context) ([]entities.Tag, error) {
	return u.preferenceRepo.ListTags(ctx)
}

// ListInterests returns the interest reference data
func (u *PreferenceUsecase) ListInterests(ctx context.Context) ([]entities.Interest, error) {
	return u.preferenceRepo.ListInterests(ctx)
}

// ListLocations returns the location reference data
func (u *PreferenceUsecase) ListLocations(ctx context.Context) ([]entities.Location, error) {
	return u.preferenceRepo.ListLocations(ctx)
}

// ListEducationLevels returns the education level reference data
func (u *PreferenceUsecase) ListEducationLevels(ctx context.Context) ([]entities.EducationLevel, error) {
	return u.preferenceRepo.ListEducationLevels(ctx)
}

// SelectTags attaches tags to the student's selection
func (u *PreferenceUsecase) SelectTags(ctx context.Context, studentID uuid.UUID, tagIDs []uuid.UUID) error {
	return u.studentRepo.AddTags(ctx, studentID, tagIDs)
}

// SelectInterests attaches interests to the student
func (u *PreferenceUsecase) SelectInterests(ctx context.Context, studentID uuid.UUID, interestIDs []uuid.UUID) error {
	return u.studentRepo.AddInterests(ctx, studentID, interestIDs)
}

// SelectLocations attaches preferred locations to the student
func (u *PreferenceUsecase) SelectLocations(ctx context.Context, studentID uuid.UUID, locationIDs []uuid.UUID) error {
	return u.studentRepo.AddPreferredLocations(ctx, studentID, locationIDs)
}

// SetEducationLevel records the student's current study level
func (u *PreferenceUsecase) SetEducationLevel(ctx context.Context, studentID, levelID uuid.UUID) error {
	if _, err := u.preferenceRepo.GetEducationLevel(ctx, levelID); err != nil {
		return err
	}
	return u.studentRepo.SetEducationLevel(ctx, studentID, levelID)
}

// AddToWishlist shortlists a course for the student
func (u *PreferenceUsecase) AddToWishlist(ctx context.Context, studentID, courseID uuid.UUID) error {
	if _, err := u.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}
	return u.studentRepo.AddToWishlist(ctx, studentID, courseID)
}

// RemoveFromWishlist drops a course from the student's shortlist
func (u *PreferenceUsecase) RemoveFromWishlist(ctx context.Context, studentID, courseID uuid.UUID) error {
	return u.studentRepo.RemoveFromWishlist(ctx, studentID, courseID)
}
