package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// PurchaseListReadRepository handles owner-scoped purchase-list reads.
type PurchaseListReadRepository struct {
	db *sqlx.DB
}

func NewPurchaseListReadRepository(db *sqlx.DB) *PurchaseListReadRepository {
	return &PurchaseListReadRepository{db: db}
}

// List returns all purchase-list entries owned by the given user.
func (r *PurchaseListReadRepository) List(ctx context.Context, userID int64) ([]models.PurchaseListDB, error) {
	const query = `
		SELECT purchase_id, user_id, item_name, category_id, is_purchased, added_at, purchased_at
		FROM purchase_lists
		WHERE user_id = $1
		ORDER BY purchase_id
	`

	var entries []models.PurchaseListDB
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// PurchaseListWriteRepository handles purchase-list mutations.
type PurchaseListWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseListWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseListWriteRepository {
	return &PurchaseListWriteRepository{db: db, txGetter: txGetter}
}

func (r *PurchaseListWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new entry (unpurchased) and returns the stored row.
func (r *PurchaseListWriteRepository) Save(ctx context.Context, userID int64, itemName string, categoryID int64) (*models.PurchaseListDB, error) {
	const query = `
		INSERT INTO purchase_lists (user_id, item_name, category_id, is_purchased, added_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING purchase_id, user_id, item_name, category_id, is_purchased, added_at, purchased_at
	`
	args := []any{userID, itemName, categoryID}

	var entry models.PurchaseListDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &entry, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarkPurchased flips the purchased flag and sets the purchased
// timestamp in one atomic update. The transition is one-way: there is
// no unpurchase. Returns sql.ErrNoRows when no owned row matches.
func (r *PurchaseListWriteRepository) MarkPurchased(ctx context.Context, purchaseID, userID int64) error {
	const query = `
		UPDATE purchase_lists
		SET is_purchased = TRUE, purchased_at = COALESCE(purchased_at, NOW())
		WHERE purchase_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, purchaseID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{purchaseID, userID},
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
