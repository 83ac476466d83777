package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traindesk/internal/domain/user"
	uservo "traindesk/internal/domain/user/valueobjects"
)

func createTestUser(t *testing.T, repo *UserRepository, name, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(name, email, "hashed-password", uservo.RoleTrainee)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := createTestUser(t, repo, "Ada", "ada@example.com")
	assert.NotZero(t, u.ID())

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email())
	assert.Equal(t, uservo.RoleTrainee, found.Role())

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byEmail.ID())
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	createTestUser(t, repo, "Ada", "dup@example.com")

	second, err := user.NewUser("Grace", "dup@example.com", "hashed-password", uservo.RoleTrainee)
	require.NoError(t, err)
	err = repo.Save(ctx, second)
	assert.Error(t, err)
}

func TestUserRepository_SoftDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := createTestUser(t, repo, "Ada", "gone@example.com")
	require.NoError(t, repo.Delete(ctx, u.ID()))

	t.Run("deleted user still loads for authorization checks", func(t *testing.T) {
		found, err := repo.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.True(t, found.IsDeleted())

		byEmail, err := repo.GetByEmail(ctx, "gone@example.com")
		require.NoError(t, err)
		assert.True(t, byEmail.IsDeleted())
	})

	t.Run("deleted user excluded from listing and count", func(t *testing.T) {
		users, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, users)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestUserRepository_UpdateCredits(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx := context.Background()

	u := createTestUser(t, repo, "Ada", "credits@example.com")
	require.NoError(t, u.AddCredits(10))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, found.TotalCredits())
}
