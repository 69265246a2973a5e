package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/storyhub/blog-api/internal/db"
	"github.com/storyhub/blog-api/internal/models"
)

func setupSessionPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var database *sqlx.DB
	for i := 0; i < 10; i++ {
		database, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	err = db.Migrate(context.Background(), database)
	assert.NoError(t, err)

	teardown := func() {
		database.Close()
		container.Terminate(context.Background())
	}

	return database, teardown
}

func createSessionTestUser(t *testing.T, database *sqlx.DB, username string) *models.UserDB {
	t.Helper()
	repo := NewUserWriteRepository(database, nil)
	user, err := repo.Save(context.Background(), username, "", "hash")
	assert.NoError(t, err)
	return user
}

func TestSessionWriteRepository_Save(t *testing.T) {
	database, teardown := setupSessionPostgresContainer(t)
	defer teardown()

	user := createSessionTestUser(t, database, "alice")
	repo := NewSessionWriteRepository(database, nil, time.Hour)
	ctx := context.Background()

	session, err := repo.Save(ctx, "token-1", user.ID)
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiryTimestamp.After(time.Now()))

	// Token values are unique.
	dup, err := repo.Save(ctx, "token-1", user.ID)
	assert.Error(t, err)
	assert.Nil(t, dup)
}

func TestSessionReadRepository_GetValidByToken(t *testing.T) {
	database, teardown := setupSessionPostgresContainer(t)
	defer teardown()

	user := createSessionTestUser(t, database, "bob")
	writeRepo := NewSessionWriteRepository(database, nil, time.Hour)
	readRepo := NewSessionReadRepository(database, nil)
	ctx := context.Background()

	_, err := writeRepo.Save(ctx, "bob-token", user.ID)
	assert.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		session, err := readRepo.GetValidByToken(ctx, "bob-token")
		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, user.ID, session.UserID)
	})

	t.Run("Unknown", func(t *testing.T) {
		session, err := readRepo.GetValidByToken(ctx, "unknown")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Expired", func(t *testing.T) {
		_, err := database.Exec(`INSERT INTO sessions (token, user_id, expiry_timestamp) VALUES ($1, $2, NOW() - INTERVAL '1 minute')`, "stale", user.ID)
		assert.NoError(t, err)

		session, err := readRepo.GetValidByToken(ctx, "stale")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionWriteRepository_DeleteByToken(t *testing.T) {
	database, teardown := setupSessionPostgresContainer(t)
	defer teardown()

	user := createSessionTestUser(t, database, "carol")
	repo := NewSessionWriteRepository(database, nil, time.Hour)
	ctx := context.Background()

	_, err := repo.Save(ctx, "carol-token", user.ID)
	assert.NoError(t, err)

	deleted, err := repo.DeleteByToken(ctx, "carol-token")
	assert.NoError(t, err)
	assert.NotNil(t, deleted)
	assert.Equal(t, "carol-token", deleted.Token)

	// Idempotent on repeat.
	again, err := repo.DeleteByToken(ctx, "carol-token")
	assert.NoError(t, err)
	assert.Nil(t, again)
}

func TestSessionWriteRepository_DeleteExpired(t *testing.T) {
	database, teardown := setupSessionPostgresContainer(t)
	defer teardown()

	user := createSessionTestUser(t, database, "dora")
	repo := NewSessionWriteRepository(database, nil, time.Hour)
	ctx := context.Background()

	_, err := repo.Save(ctx, "live-token", user.ID)
	assert.NoError(t, err)

	_, err = database.Exec(`INSERT INTO sessions (token, user_id, expiry_timestamp) VALUES ($1, $2, NOW() - INTERVAL '1 hour')`, "dead-1", user.ID)
	assert.NoError(t, err)
	_, err = database.Exec(`INSERT INTO sessions (token, user_id, expiry_timestamp) VALUES ($1, $2, NOW() - INTERVAL '2 hours')`, "dead-2", user.ID)
	assert.NoError(t, err)

	deleted, err := repo.DeleteExpired(ctx)
	assert.NoError(t, err)
	assert.Len(t, deleted, 2)

	var remaining []string
	assert.NoError(t, database.Select(&remaining, "SELECT token FROM sessions WHERE user_id=$1", user.ID))
	assert.Equal(t, []string{"live-token"}, remaining)

	// Nothing left to sweep.
	deleted, err = repo.DeleteExpired(ctx)
	assert.NoError(t, err)
	assert.Empty(t, deleted)
}
