package users_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hessin2010king/backend/internal/storage/storagetest"
	"github.com/hessin2010king/backend/internal/storage/users"
	"github.com/hessin2010king/backend/internal/types"
)

func TestCreateAndLookup(t *testing.T) {
	pg := storagetest.Open(t)
	repo := users.NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	created, err := repo.Create(ctx, &types.User{
		Username:  "reader",
		Password:  "stored-value",
		Role:      types.RoleUser,
		FirstName: "Rea",
		LastName:  "Der",
		Email:     "reader@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	byName, err := repo.GetByUsername(ctx, "reader")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.Id, byName.Id)
	assert.Equal(t, types.RoleUser, byName.Role)

	missing, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetByCredentialsIsExactMatch(t *testing.T) {
	pg := storagetest.Open(t)
	repo := users.NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	_, err := repo.Create(ctx, &types.User{Username: "reader", Password: "stored-value", Role: types.RoleUser})
	require.NoError(t, err)

	match, err := repo.GetByCredentials(ctx, "reader", "stored-value")
	require.NoError(t, err)
	require.NotNil(t, match)

	noMatch, err := repo.GetByCredentials(ctx, "reader", "other")
	require.NoError(t, err)
	assert.Nil(t, noMatch)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	pg := storagetest.Open(t)
	repo := users.NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	_, err := repo.Create(ctx, &types.User{Username: "taken", Password: "a", Role: types.RoleUser})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &types.User{Username: "taken", Password: "b", Role: types.RoleAdmin})
	assert.Error(t, err)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRoleConstraint(t *testing.T) {
	pg := storagetest.Open(t)
	repo := users.NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	_, err := repo.Create(ctx, &types.User{Username: "odd", Password: "a", Role: "superuser"})
	assert.Error(t, err)
}

func TestPermissiveUpdateAndDelete(t *testing.T) {
	pg := storagetest.Open(t)
	repo := users.NewPGXRepository(pg, slog.Default())
	ctx := context.Background()

	// no row with id 1234, both operations still succeed
	_, err := repo.Update(ctx, 1234, &types.User{FirstName: "Ghost"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, 1234))
}
