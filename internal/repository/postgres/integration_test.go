//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/postfeed-server/internal/model"
	"github.com/dtroode/postfeed-server/internal/password"
	repo "github.com/dtroode/postfeed-server/internal/repository/postgres"
	"github.com/dtroode/postfeed-server/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "postfeed_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/postfeed_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newRepos(t *testing.T) (*repo.UserRepository, *repo.PostRepository) {
	t.Helper()
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, testutil.MakeNoopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	hasher, err := password.New(password.Argon2id, password.WithArgon2Params(&argon2id.Params{
		Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	}))
	require.NoError(t, err)

	return repo.NewUserRepository(conn, hasher), repo.NewPostRepository(conn)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	ur, pr := newRepos(t)

	t.Run("user_repository", func(t *testing.T) {
		saved, err := ur.Create(ctx, "user@example.com", "Secret123")
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		assert.NotEqual(t, "Secret123", saved.HashedPassword)
		assert.True(t, saved.IsActive)

		byEmail, err := ur.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, saved.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "user@example.com", byID.Email)

		_, err = ur.Create(ctx, "user@example.com", "Other123")
		require.ErrorIs(t, err, model.ErrDuplicateEmail)

		_, err = ur.GetByID(ctx, 999999)
		require.ErrorIs(t, err, model.ErrNotFound)

		verified, err := ur.VerifyCredentials(ctx, "user@example.com", "Secret123")
		require.NoError(t, err)
		require.Equal(t, saved.ID, verified.ID)

		_, err = ur.VerifyCredentials(ctx, "user@example.com", "Wrong123")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
		_, err = ur.VerifyCredentials(ctx, "nobody@example.com", "Secret123")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("post_repository", func(t *testing.T) {
		owner, err := ur.Create(ctx, "owner@example.com", "Secret123")
		require.NoError(t, err)
		other, err := ur.Create(ctx, "other@example.com", "Secret123")
		require.NoError(t, err)

		first, err := pr.Create(ctx, "first", owner.ID)
		require.NoError(t, err)
		second, err := pr.Create(ctx, "second", owner.ID)
		require.NoError(t, err)
		require.Greater(t, second.ID, first.ID)

		got, err := pr.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, got.UserID)

		list, err := pr.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		empty, err := pr.GetByUserID(ctx, other.ID)
		require.NoError(t, err)
		require.Empty(t, empty)

		deleted, err := pr.Delete(ctx, first.ID, other.ID)
		require.NoError(t, err)
		require.False(t, deleted)
		_, err = pr.GetByID(ctx, first.ID)
		require.NoError(t, err)

		deleted, err = pr.Delete(ctx, first.ID, owner.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		_, err = pr.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		deleted, err = pr.Delete(ctx, first.ID, owner.ID)
		require.NoError(t, err)
		require.False(t, deleted)
	})
}

func TestPostRepository_CreateForMissingUser(t *testing.T) {
	_, pr := newRepos(t)

	_, err := pr.Create(context.Background(), "orphan", 424242)
	require.Error(t, err)
}
