package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a clean store, skipping the test when no database is configured.
func newTestStore(t *testing.T) *postgresql.Store {
	t.Helper()
	ctx := context.Background()

	setup, err := NewTestDatabase(ctx)
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)

	return postgresql.NewStore(setup.DB)
}

func createTestUser(t *testing.T, store *postgresql.Store, username string) user.User {
	t.Helper()

	created, err := store.Users().Create(context.Background(), user.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         user.RoleStaff,
	})
	require.NoError(t, err)
	return created
}

func paginationAll() pagination.Params {
	return pagination.New(1, pagination.MaxLimit)
}
