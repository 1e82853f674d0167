package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// NotificationReadRepository handles owner-scoped notification reads.
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// List returns all notifications owned by the given user.
func (r *NotificationReadRepository) List(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	const query = `
		SELECT notification_id, item_id, user_id, notification_type, notification_date, is_read
		FROM notifications
		WHERE user_id = $1
		ORDER BY notification_id
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// NotificationWriteRepository records notification rows.
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a notification record and returns the stored row.
func (r *NotificationWriteRepository) Save(ctx context.Context, itemID, userID int64, notificationType string, notificationDate models.Date) (*models.NotificationDB, error) {
	const query = `
		INSERT INTO notifications (item_id, user_id, notification_type, notification_date, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING notification_id, item_id, user_id, notification_type, notification_date, is_read
	`
	args := []any{itemID, userID, notificationType, notificationDate}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var notification models.NotificationDB
	err := sqlx.GetContext(ctx, executor, &notification, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &notification, nil
}
