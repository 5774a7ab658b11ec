package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_Create(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Users()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	fullName := "Test User"
	t.Run("Create user successfully", func(t *testing.T) {
		created, err := repo.Create(ctx, user.User{
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: string(hashedPassword),
			Role:         user.RoleAdmin,
			FullName:     &fullName,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "testuser", created.Username)
		assert.Equal(t, user.RoleAdmin, created.Role)
		assert.False(t, created.CreatedAt.IsZero())
		require.NotNil(t, created.FullName)
		assert.Equal(t, fullName, *created.FullName)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		_, err := repo.Create(ctx, user.User{
			Username:     "testuser",
			Email:        "other@example.com",
			PasswordHash: string(hashedPassword),
			Role:         user.RoleStaff,
		})
		assert.ErrorIs(t, err, user.ErrUsernameExists)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx, user.User{
			Username:     "another",
			Email:        "test@example.com",
			PasswordHash: string(hashedPassword),
			Role:         user.RoleStaff,
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Users()

	created := createTestUser(t, store, "lookup")

	t.Run("By ID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("By username", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "lookup")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("By email", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "lookup@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("Missing user is nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Count", func(t *testing.T) {
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
