package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestCategoryCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	// Ping to ensure connection
	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewCategoryCacheRepository(rdb, 2*time.Second)

	desc := "Milk, cheese, yogurt"
	categories := []models.CategoryDB{
		{CategoryID: 1, CategoryName: "Dairy", Description: &desc},
		{CategoryID: 2, CategoryName: "Meat"},
	}

	t.Run("Miss before any set", func(t *testing.T) {
		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Set and Get", func(t *testing.T) {
		err := repo.Set(ctx, categories)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, categories, got)
	})

	t.Run("Invalidate drops the list", func(t *testing.T) {
		err := repo.Set(ctx, categories)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached list expires", func(t *testing.T) {
		err := repo.Set(ctx, categories)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
