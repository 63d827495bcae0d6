package repositories

import (
	"context"

	"github.com/google/uuid"

	"enrols.backend/internal/domain/entities"
)

// CourseRepository defines course catalog data operations
type CourseRepository interface {
	Create(ctx context.Context, course *entities.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Course, error)
	GetBatch(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Course, int64, error)
	ListByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*entities.Course, error)
	Update(ctx context.Context, course *entities.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddBatch(ctx context.Context, batch *entities.Batch) error
}

// PreferenceRepository defines reference-data lookups for preferences
type PreferenceRepository interface {
	ListTags(ctx context.Context) ([]entities.Tag, error)
	ListInterests(ctx context.Context) ([]entities.Interest, error)
	ListLocations(ctx context.Context) ([]entities.Location, error)
	ListEducationLevels(ctx context.Context) ([]entities.EducationLevel, error)
	GetEducationLevel(ctx context.Context, id uuid.UUID) (*entities.EducationLevel, error)
}

// ApplicationRepository defines application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Application, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entities.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
}
