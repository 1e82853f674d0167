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

func setupCategoryPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		category_name VARCHAR(100) NOT NULL,
		description TEXT
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

func TestCategoryRepositories(t *testing.T) {
	db, teardown := setupCategoryPostgresContainer(t)
	defer teardown()

	writeRepo := NewCategoryWriteRepository(db, nil)
	readRepo := NewCategoryReadRepository(db)
	ctx := context.Background()

	t.Run("SaveWithDescription", func(t *testing.T) {
		desc := "Milk, cheese, yogurt"
		category, err := writeRepo.Save(ctx, "Dairy", &desc)
		assert.NoError(t, err)
		assert.NotZero(t, category.CategoryID)
		assert.Equal(t, "Dairy", category.CategoryName)
		assert.Equal(t, desc, *category.Description)
	})

	t.Run("SaveWithoutDescription", func(t *testing.T) {
		category, err := writeRepo.Save(ctx, "Meat", nil)
		assert.NoError(t, err)
		assert.Nil(t, category.Description)
	})

	t.Run("DuplicateNamesPermitted", func(t *testing.T) {
		first, err := writeRepo.Save(ctx, "Snacks", nil)
		assert.NoError(t, err)
		second, err := writeRepo.Save(ctx, "Snacks", nil)
		assert.NoError(t, err)
		assert.NotEqual(t, first.CategoryID, second.CategoryID)
	})

	t.Run("ListOrderedByID", func(t *testing.T) {
		categories, err := readRepo.List(ctx)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(categories), 4)
		for i := 1; i < len(categories); i++ {
			assert.Less(t, categories[i-1].CategoryID, categories[i].CategoryID)
		}
	})
}
