package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/domain/repositories"
	"enrols.backend/pkg/phone"
)

// ApplicationUsecase handles course application business logic
type ApplicationUsecase struct {
	applicationRepo    repositories.ApplicationRepository
	courseRepo         repositories.CourseRepository
	defaultCallingCode string
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo repositories.ApplicationRepository,
	courseRepo repositories.CourseRepository,
	defaultCallingCode string,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		applicationRepo:    applicationRepo,
		courseRepo:         courseRepo,
		defaultCallingCode: defaultCallingCode,
	}
}

// Apply submits an application to a course batch. Form responses are
// validated against the course's declared fields.
func (u *ApplicationUsecase) Apply(ctx context.Context, studentID uuid.UUID, input *entities.CreateApplicationInput) (*entities.Application, error) {
	course, err := u.courseRepo.GetByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	batch, err := u.courseRepo.GetBatch(ctx, input.BatchID)
	if err != nil {
		return nil, err
	}
	if batch.CourseID != course.ID {
		return nil, domainerrors.BadRequest("batch does not belong to this course")
	}

	normalized, err := phone.Normalize(input.PhoneNumber, u.defaultCallingCode)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid phone number")
	}

	responses, err := buildFormResponses(course.FormFields, input.FormData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	application := &entities.Application{
		ID:            uuid.New(),
		AppliedBy:     studentID,
		CourseID:      course.ID,
		BatchID:       batch.ID,
		FullName:      input.FullName,
		Email:         input.Email,
		PhoneNumber:   normalized,
		DateOfBirth:   input.DateOfBirth,
		Status:        entities.ApplicationUnderReview,
		FormResponses: responses,
		SubmittedOn:   now,
		UpdatedOn:     now,
	}
	if err := u.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// buildFormResponses checks each supplied value against the declared
// field and rejects missing required fields and type mismatches.
func buildFormResponses(fields []entities.ApplicationFormField, data []entities.FormResponseInput) ([]entities.FormResponse, error) {
	byID := make(map[uuid.UUID]entities.ApplicationFormField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	supplied := make(map[uuid.UUID]bool, len(data))
	responses := make([]entities.FormResponse, 0, len(data))
	for _, in := range data {
		field, ok := byID[in.FormFieldID]
		if !ok {
			return nil, domainerrors.BadRequest("unknown form field")
		}
		if supplied[field.ID] {
			return nil, domainerrors.BadRequest("duplicate form field response")
		}
		supplied[field.ID] = true

		resp := entities.FormResponse{ID: uuid.New(), FormFieldID: field.ID}
		switch field.Type {
		case entities.FormFieldText:
			if in.ValueText == "" {
				return nil, domainerrors.BadRequest("text field requires a text value")
			}
			resp.ValueText = null.StringFrom(in.ValueText)
		case entities.FormFieldNumber:
			if in.ValueNumber == nil {
				return nil, domainerrors.BadRequest("number field requires a numeric value")
			}
			resp.ValueNumber = null.Float64From(*in.ValueNumber)
		case entities.FormFieldFile:
			if in.ValueFile == "" {
				return nil, domainerrors.BadRequest("file field requires a file reference")
			}
			resp.ValueFile = null.StringFrom(in.ValueFile)
		}
		responses = append(responses, resp)
	}

	for _, f := range fields {
		if f.Required && !supplied[f.ID] {
			return nil, domainerrors.BadRequest("missing required form field: " + f.Label)
		}
	}
	return responses, nil
}

// GetApplication returns an application visible to the caller: the
// applicant, the institute offering the course, or staff.
func (u *ApplicationUsecase) GetApplication(ctx context.Context, identity *entities.Identity, id uuid.UUID) (*entities.Application, error) {
	application, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if identity.IsSuperuser() || identity.Account.IsStaff {
		return application, nil
	}
	if identity.IsStudent() && application.AppliedBy == identity.Account.ID {
		return application, nil
	}
	if identity.IsInstituteAdmin() {
		course, err := u.courseRepo.GetByID(ctx, application.CourseID)
		if err == nil && course.OfferedBy == identity.Account.ID {
			return application, nil
		}
	}
	return nil, domainerrors.Forbidden("not your application")
}

// ListMine returns the student's own applications
func (u *ApplicationUsecase) ListMine(ctx context.Context, studentID uuid.UUID) ([]*entities.Application, error) {
	return u.applicationRepo.ListByStudent(ctx, studentID)
}

// ListForCourse returns applications to a course the institute owns
func (u *ApplicationUsecase) ListForCourse(ctx context.Context, instituteID, courseID uuid.UUID) ([]*entities.Application, error) {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.OfferedBy != instituteID {
		return nil, domainerrors.Forbidden("course belongs to another institute")
	}
	return u.applicationRepo.ListByCourse(ctx, courseID)
}

// UpdateStatus moves an application through review for a course the
// institute owns
func (u *ApplicationUsecase) UpdateStatus(ctx context.Context, instituteID, applicationID uuid.UUID, status entities.ApplicationStatus) (*entities.Application, error) {
	application, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	course, err := u.courseRepo.GetByID(ctx, application.CourseID)
	if err != nil {
		return nil, err
	}
	if course.OfferedBy != instituteID {
		return nil, domainerrors.Forbidden("course belongs to another institute")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	return u.applicationRepo.GetByID(ctx, applicationID)
}
