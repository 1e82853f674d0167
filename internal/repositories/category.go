package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// CategoryReadRepository lists the global category set.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns every category. Categories carry no owner, so the query
// is deliberately unscoped.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, category_name, description
		FROM categories
		ORDER BY category_id
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryWriteRepository creates categories.
type CategoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCategoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a category and returns the stored row. No uniqueness is
// enforced: duplicate names are permitted.
func (r *CategoryWriteRepository) Save(ctx context.Context, categoryName string, description *string) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO categories (category_name, description)
		VALUES ($1, $2)
		RETURNING category_id, category_name, description
	`
	args := []any{categoryName, description}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var category models.CategoryDB
	err := sqlx.GetContext(ctx, executor, &category, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &category, nil
}
