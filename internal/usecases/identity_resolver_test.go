package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
	"enrols.backend/internal/usecases"
)

func TestResolve_StudentProfile(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	instituteRepo := new(MockInstituteRepository)
	resolver := usecases.NewIdentityResolver(studentRepo, instituteRepo)

	account := &entities.Account{ID: uuid.New(), Kind: entities.AccountKindStudent}
	profile := &entities.StudentProfile{AccountID: account.ID, EmailVerified: true}
	studentRepo.On("GetByAccountID", mock.Anything, account.ID).Return(profile, nil).Once()

	identity, err := resolver.Resolve(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, identity.IsStudent())
	assert.False(t, identity.IsInstituteAdmin())
	assert.True(t, identity.EmailVerified())
	assert.False(t, identity.PhoneVerified())
}

func TestResolve_InstituteProfile(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	instituteRepo := new(MockInstituteRepository)
	resolver := usecases.NewIdentityResolver(studentRepo, instituteRepo)

	account := &entities.Account{ID: uuid.New(), Kind: entities.AccountKindInstituteAdmin}
	instituteRepo.On("GetByAccountID", mock.Anything, account.ID).Return(&entities.InstituteProfile{AccountID: account.ID}, nil).Once()

	identity, err := resolver.Resolve(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, identity.IsInstituteAdmin())
	assert.False(t, identity.IsStudent())
	// Verification flags never apply to institute admins.
	assert.False(t, identity.EmailVerified())
}

func TestResolve_MissingProfileFallsBackToBareAccount(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	instituteRepo := new(MockInstituteRepository)
	resolver := usecases.NewIdentityResolver(studentRepo, instituteRepo)

	account := &entities.Account{ID: uuid.New(), Kind: entities.AccountKindStudent, IsSuperuser: true}
	studentRepo.On("GetByAccountID", mock.Anything, account.ID).Return(nil, domainerrors.ErrNotFound).Once()

	identity, err := resolver.Resolve(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, identity.IsStudent())
	assert.False(t, identity.IsInstituteAdmin())
	assert.True(t, identity.IsSuperuser())
	assert.Equal(t, account, identity.Account)
}

func TestResolve_InfrastructureErrorPropagates(t *testing.T) {
	studentRepo := new(MockStudentRepository)
	instituteRepo := new(MockInstituteRepository)
	resolver := usecases.NewIdentityResolver(studentRepo, instituteRepo)

	account := &entities.Account{ID: uuid.New(), Kind: entities.AccountKindStudent}
	dbErr := errors.New("db down")
	studentRepo.On("GetByAccountID", mock.Anything, account.ID).Return(nil, dbErr).Once()

	_, err := resolver.Resolve(context.Background(), account)
	assert.ErrorIs(t, err, dbErr)
}
