package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupNotificationPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS notifications (
		notification_id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		notification_type VARCHAR(10) NOT NULL CHECK (notification_type IN ('warning', 'expired')),
		notification_date DATE NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE
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

func TestNotificationRepositories(t *testing.T) {
	db, teardown := setupNotificationPostgresContainer(t)
	defer teardown()

	writeRepo := NewNotificationWriteRepository(db, nil)
	readRepo := NewNotificationReadRepository(db)
	ctx := context.Background()

	t.Run("Save", func(t *testing.T) {
		notification, err := writeRepo.Save(ctx, 3, 7, models.NotificationWarning, models.NewDate(2026, 8, 30))
		assert.NoError(t, err)
		assert.NotZero(t, notification.NotificationID)
		assert.Equal(t, models.NotificationWarning, notification.NotificationType)
		assert.Equal(t, "2026-08-30", notification.NotificationDate.String())
		assert.False(t, notification.IsRead)
	})

	t.Run("ListScopedToOwner", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, 4, 7, models.NotificationExpired, models.NewDate(2026, 8, 30))
		assert.NoError(t, err)
		_, err = writeRepo.Save(ctx, 5, 8, models.NotificationWarning, models.NewDate(2026, 8, 30))
		assert.NoError(t, err)

		notifications, err := readRepo.List(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, notifications, 2)
		for _, n := range notifications {
			assert.Equal(t, int64(7), n.UserID)
		}
	})
}
