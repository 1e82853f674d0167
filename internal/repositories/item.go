package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// ItemReadRepository handles owner-scoped item reads.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// List returns all items owned by the given user.
func (r *ItemReadRepository) List(ctx context.Context, userID int64) ([]models.ItemDB, error) {
	const query = `
		SELECT item_id, user_id, category_id, item_name, expiry_date, status, purchase_date, auto_repurchase
		FROM items
		WHERE user_id = $1
		ORDER BY item_id
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the item matching (itemID, userID), or nil when no
// such row exists. Ownership is part of the filter so an existing item
// owned by someone else is indistinguishable from an absent one.
func (r *ItemReadRepository) GetByID(ctx context.Context, itemID, userID int64) (*models.ItemDB, error) {
	const query = `
		SELECT item_id, user_id, category_id, item_name, expiry_date, status, purchase_date, auto_repurchase
		FROM items
		WHERE item_id = $1 AND user_id = $2
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, itemID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemWriteRepository handles item mutations.
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewItemWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

func (r *ItemWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new item and returns the stored row.
func (r *ItemWriteRepository) Save(ctx context.Context, item models.ItemDB) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (user_id, category_id, item_name, expiry_date, status, purchase_date, auto_repurchase)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING item_id, user_id, category_id, item_name, expiry_date, status, purchase_date, auto_repurchase
	`
	args := []any{item.UserID, item.CategoryID, item.ItemName, item.ExpiryDate, item.Status, item.PurchaseDate, item.AutoRepurchase}

	var saved models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update writes all mutable item fields for (item_id, user_id).
// Returns sql.ErrNoRows when no owned row matches.
func (r *ItemWriteRepository) Update(ctx context.Context, item models.ItemDB) error {
	const query = `
		UPDATE items
		SET category_id = $3, item_name = $4, expiry_date = $5, status = $6, purchase_date = $7, auto_repurchase = $8
		WHERE item_id = $1 AND user_id = $2
	`
	args := []any{item.ItemID, item.UserID, item.CategoryID, item.ItemName, item.ExpiryDate, item.Status, item.PurchaseDate, item.AutoRepurchase}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the item matching (itemID, userID).
// Returns sql.ErrNoRows when no owned row matches.
func (r *ItemWriteRepository) Delete(ctx context.Context, itemID, userID int64) error {
	const query = `
		DELETE FROM items
		WHERE item_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, itemID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
