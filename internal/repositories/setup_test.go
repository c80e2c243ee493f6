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
)

// setupPostgresContainer starts a throwaway postgres and applies the
// schema all repository tests share.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(80)  NOT NULL UNIQUE,
		email         VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_artist     BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS artists (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT       NOT NULL REFERENCES users (id),
		name          VARCHAR(100) NOT NULL,
		bio           TEXT         NOT NULL DEFAULT '',
		specialty     VARCHAR(100) NOT NULL DEFAULT '',
		profile_image VARCHAR(200) NOT NULL DEFAULT '',
		featured      BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS artworks (
		id          BIGSERIAL PRIMARY KEY,
		title       VARCHAR(200)     NOT NULL,
		description TEXT             NOT NULL DEFAULT '',
		category    VARCHAR(50)      NOT NULL DEFAULT 'contemporary',
		price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		image_url   VARCHAR(200)     NOT NULL DEFAULT '',
		user_id     BIGINT           NOT NULL REFERENCES users (id),
		artist_id   BIGINT           REFERENCES artists (id),
		created_at  TIMESTAMPTZ      NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
