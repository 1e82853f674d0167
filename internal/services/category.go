package services

import (
	"context"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	Save(ctx context.Context, categoryName string, description *string) (*models.CategoryDB, error)
}

// CategoryCache caches the global category list.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.CategoryDB, error)
	Set(ctx context.Context, categories []models.CategoryDB) error
	Invalidate(ctx context.Context) error
}

// CategoryService serves the global category set, fronted by an
// optional cache.
type CategoryService struct {
	reader CategoryReader
	writer CategoryWriter
	cache  CategoryCache
}

// NewCategoryService creates a new CategoryService. cache may be nil
// when no Redis instance is configured.
func NewCategoryService(reader CategoryReader, writer CategoryWriter, cache CategoryCache) *CategoryService {
	return &CategoryService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns every category, preferring the cache. Cache failures
// degrade to the database query and never fail the request.
func (svc *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			logger.Log.Warnw("category cache read failed, falling back to database", "err", err)
		}
	}

	categories, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, categories); err != nil {
			logger.Log.Warnw("category cache write failed", "err", err)
		}
	}

	return categories, nil
}

// Create stores a new category. Duplicates are permitted: categories
// are shared across users and carry no uniqueness rule.
func (svc *CategoryService) Create(ctx context.Context, categoryName string, description *string) (*models.CategoryDB, error) {
	category, err := svc.writer.Save(ctx, categoryName, description)
	if err != nil {
		logger.Log.Errorw("failed to create category", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("category cache invalidation failed", "err", err)
		}
	}

	return category, nil
}
