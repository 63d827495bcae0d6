package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"enrols.backend/internal/domain/entities"
	domainerrors "enrols.backend/internal/domain/errors"
)

func TestAccountRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	now := time.Now()
	a := &entities.Account{
		ID:           uuid.New(),
		Email:        "student@enrols.in",
		Kind:         entities.AccountKindStudent,
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, a))

	byID, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.Email, byID.Email)
	require.Equal(t, entities.AccountKindStudent, byID.Kind)

	byEmail, err := repo.GetByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, a.ID, byEmail.ID)

	require.NoError(t, repo.UpdatePasswordHash(ctx, a.ID, "hash2"))
	updated, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "hash2", updated.PasswordHash)
}

func TestAccountRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@enrols.in")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdatePasswordHash(ctx, uuid.New(), "hash")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
