package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"enrols.backend/internal/domain/entities"
)

// Mock AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entities.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// Mock StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.StudentProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entities.StudentProfile, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentRepository) GetByEmail(ctx context.Context, email string) (*entities.StudentProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentRepository) SetEmailVerified(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockStudentRepository) SetPhoneNumberVerified(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockStudentRepository) SetEducationLevel(ctx context.Context, accountID, educationLevelID uuid.UUID) error {
	args := m.Called(ctx, accountID, educationLevelID)
	return args.Error(0)
}

func (m *MockStudentRepository) AddTags(ctx context.Context, accountID uuid.UUID, tagIDs []uuid.UUID) error {
	args := m.Called(ctx, accountID, tagIDs)
	return args.Error(0)
}

func (m *MockStudentRepository) AddInterests(ctx context.Context, accountID uuid.UUID, interestIDs []uuid.UUID) error {
	args := m.Called(ctx, accountID, interestIDs)
	return args.Error(0)
}

func (m *MockStudentRepository) AddPreferredLocations(ctx context.Context, accountID uuid.UUID, locationIDs []uuid.UUID) error {
	args := m.Called(ctx, accountID, locationIDs)
	return args.Error(0)
}

func (m *MockStudentRepository) AddToWishlist(ctx context.Context, accountID, courseID uuid.UUID) error {
	args := m.Called(ctx, accountID, courseID)
	return args.Error(0)
}

func (m *MockStudentRepository) RemoveFromWishlist(ctx context.Context, accountID, courseID uuid.UUID) error {
	args := m.Called(ctx, accountID, courseID)
	return args.Error(0)
}

// Mock InstituteRepository
type MockInstituteRepository struct {
	mock.Mock
}

func (m *MockInstituteRepository) Create(ctx context.Context, profile *entities.InstituteProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInstituteRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.InstituteProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InstituteProfile), args.Error(1)
}

func (m *MockInstituteRepository) Update(ctx context.Context, profile *entities.InstituteProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInstituteRepository) List(ctx context.Context) ([]*entities.InstituteProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InstituteProfile), args.Error(1)
}

// Mock OtpRepository
type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) Create(ctx context.Context, record *entities.OtpRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOtpRepository) DeleteExpired(ctx context.Context, limit int) (int64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(int64), args.Error(1)
}

// Mock CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entities.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *MockCourseRepository) GetBySlug(ctx context.Context, slug string) (*entities.Course, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *MockCourseRepository) GetBatch(ctx context.Context, batchID uuid.UUID) (*entities.Batch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Batch), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context, limit, offset int) ([]*entities.Course, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Course), args.Get(1).(int64), args.Error(2)
}

func (m *MockCourseRepository) ListByInstitute(ctx context.Context, instituteID uuid.UUID) ([]*entities.Course, error) {
	args := m.Called(ctx, instituteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *entities.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) AddBatch(ctx context.Context, batch *entities.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// Mock PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) ListTags(ctx context.Context) ([]entities.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Tag), args.Error(1)
}

func (m *MockPreferenceRepository) ListInterests(ctx context.Context) ([]entities.Interest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Interest), args.Error(1)
}

func (m *MockPreferenceRepository) ListLocations(ctx context.Context) ([]entities.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Location), args.Error(1)
}

func (m *MockPreferenceRepository) ListEducationLevels(ctx context.Context) ([]entities.EducationLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.EducationLevel), args.Error(1)
}

func (m *MockPreferenceRepository) GetEducationLevel(ctx context.Context, id uuid.UUID) (*entities.EducationLevel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EducationLevel), args.Error(1)
}

// Mock ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *entities.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Application, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*entities.Application, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordResetEmail(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *MockMailer) SendVerificationEmail(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *MockMailer) SendWelcomeEmail(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

// Mock SmsSender
type MockSmsSender struct {
	mock.Mock
}

func (m *MockSmsSender) SendOtp(phoneNumber, code string) error {
	args := m.Called(phoneNumber, code)
	return args.Error(0)
}
