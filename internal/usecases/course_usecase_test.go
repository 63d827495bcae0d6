package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/usecases"
)

func TestCreateCourse_Success(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)
	instituteID := uuid.New()

	repo.On("GetBySlug", mock.Anything, "jee-crash").Return(nil, domainerrors.ErrNotFound).Once()

	var created *entities.Course
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entities.Course) }).
		Return(nil).Once()
	repo.On("GetByID", mock.Anything, mock.Anything).
		Return(&entities.Course{Slug: "jee-crash", OfferedBy: instituteID}, nil).Once()

	course, err := uc.CreateCourse(context.Background(), instituteID, &entities.CreateCourseInput{
		Name:          "JEE Crash Course",
		Slug:          "jee-crash",
		Mode:          entities.CourseModeOnline,
		DurationWeeks: 12,
		FeeAmount:     25000,
		Eligibility:   []string{"Class 12 pass"},
		Batches:       []entities.BatchInput{{Location: "Kota"}},
		FormFields:    []entities.FormFieldInput{{Label: "Percentage", Type: entities.FormFieldNumber, Required: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "jee-crash", course.Slug)

	require.NotNil(t, created)
	assert.Equal(t, instituteID, created.OfferedBy)
	assert.Len(t, created.Eligibility, 1)
	assert.Len(t, created.Batches, 1)
	assert.Len(t, created.FormFields, 1)
}

func TestCreateCourse_SlugTaken(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	repo.On("GetBySlug", mock.Anything, "taken").Return(&entities.Course{ID: uuid.New()}, nil).Once()

	_, err := uc.CreateCourse(context.Background(), uuid.New(), &entities.CreateCourseInput{
		Name: "X", Slug: "taken", Mode: entities.CourseModeOnline, DurationWeeks: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestUpdateCourse_OwnershipEnforced(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	courseID := uuid.New()
	owner := uuid.New()
	repo.On("GetByID", mock.Anything, courseID).Return(&entities.Course{ID: courseID, OfferedBy: owner}, nil).Once()

	_, err := uc.UpdateCourse(context.Background(), uuid.New(), courseID, &entities.UpdateCourseInput{Name: "New Name"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUpdateCourse_PartialFields(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	courseID := uuid.New()
	owner := uuid.New()
	existing := &entities.Course{ID: courseID, OfferedBy: owner, Name: "Old", Mode: entities.CourseModeOnCampus, DurationWeeks: 8, FeeAmount: 1000}
	repo.On("GetByID", mock.Anything, courseID).Return(existing, nil)

	var updated *entities.Course
	repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*entities.Course) }).
		Return(nil).Once()

	newFee := 2000
	_, err := uc.UpdateCourse(context.Background(), owner, courseID, &entities.UpdateCourseInput{FeeAmount: &newFee})
	require.NoError(t, err)
	assert.Equal(t, 2000, updated.FeeAmount)
	// Untouched fields keep their values.
	assert.Equal(t, "Old", updated.Name)
	assert.Equal(t, 8, updated.DurationWeeks)
}

func TestDeleteCourse_OwnershipEnforced(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	courseID := uuid.New()
	repo.On("GetByID", mock.Anything, courseID).Return(&entities.Course{ID: courseID, OfferedBy: uuid.New()}, nil).Once()

	err := uc.DeleteCourse(context.Background(), uuid.New(), courseID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAddBatch_Success(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	courseID := uuid.New()
	owner := uuid.New()
	repo.On("GetByID", mock.Anything, courseID).Return(&entities.Course{ID: courseID, OfferedBy: owner}, nil).Once()
	repo.On("AddBatch", mock.Anything, mock.Anything).Return(nil).Once()

	batch, err := uc.AddBatch(context.Background(), owner, courseID, &entities.BatchInput{Location: "Delhi", Discount: 0.05})
	require.NoError(t, err)
	assert.Equal(t, courseID, batch.CourseID)
	assert.Equal(t, "Delhi", batch.Location)
}

func TestListCourses_ClampsPagination(t *testing.T) {
	repo := new(MockCourseRepository)
	uc := usecases.NewCourseUsecase(repo)

	repo.On("List", mock.Anything, 20, 0).Return([]*entities.Course{}, int64(0), nil).Once()

	_, _, err := uc.ListCourses(context.Background(), -5, -1)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
