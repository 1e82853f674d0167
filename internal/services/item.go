package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrItemNotFound is returned when no item matches the id for the
	// calling user. An item owned by someone else reports the same
	// error so existence never leaks across users.
	ErrItemNotFound = errors.New("item not found")
)

// ItemReader defines owner-scoped read operations for items.
type ItemReader interface {
	List(ctx context.Context, userID int64) ([]models.ItemDB, error)
	GetByID(ctx context.Context, itemID, userID int64) (*models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, item models.ItemDB) (*models.ItemDB, error)
	Update(ctx context.Context, item models.ItemDB) error
	Delete(ctx context.Context, itemID, userID int64) error
}

// NotificationRecorder records a notification row for an item.
type NotificationRecorder interface {
	Save(ctx context.Context, itemID, userID int64, notificationType string, notificationDate models.Date) (*models.NotificationDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ItemService handles item CRUD and expiry-notification recording.
type ItemService struct {
	readRepo    ItemReader
	writeRepo   ItemWriter
	notifRepo   NotificationRecorder
	kafkaWriter KafkaWriter
}

// NewItemService creates a new ItemService. kafkaWriter may be nil when
// no broker is configured.
func NewItemService(readRepo ItemReader, writeRepo ItemWriter, notifRepo NotificationRecorder, kafkaWriter KafkaWriter) *ItemService {
	return &ItemService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		notifRepo:   notifRepo,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the caller's items.
func (svc *ItemService) List(ctx context.Context, userID int64) ([]models.ItemDB, error) {
	items, err := svc.readRepo.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "userID", userID, "err", err)
		return nil, err
	}
	return items, nil
}

// Create stores a new item for the caller. The owner always comes from
// the resolved identity, never from the payload, and a new item always
// starts fresh.
func (svc *ItemService) Create(ctx context.Context, userID, categoryID int64, itemName string, expiryDate models.Date, purchaseDate *models.Date, autoRepurchase bool) (*models.ItemDB, error) {
	item := models.ItemDB{
		UserID:         userID,
		CategoryID:     categoryID,
		ItemName:       itemName,
		ExpiryDate:     expiryDate,
		Status:         models.StatusFresh,
		PurchaseDate:   purchaseDate,
		AutoRepurchase: autoRepurchase,
	}

	saved, err := svc.writeRepo.Save(ctx, item)
	if err != nil {
		logger.Log.Errorw("failed to save item", "userID", userID, "err", err)
		return nil, err
	}
	return saved, nil
}

// Update applies a partial update to the caller's item. Only non-nil
// patch fields are written; everything else keeps its stored value.
// When the status moves to warning or expired, a notification record
// is created and published.
func (svc *ItemService) Update(ctx context.Context, userID, itemID int64, patch models.ItemPatch) (*models.ItemDB, error) {
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return nil, &ValidationError{Field: "status", Message: "status must be one of fresh, warning, expired"}
	}

	item, err := svc.readRepo.GetByID(ctx, itemID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "itemID", itemID, "userID", userID, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	prevStatus := item.Status

	if patch.CategoryID != nil {
		item.CategoryID = *patch.CategoryID
	}
	if patch.ItemName != nil {
		item.ItemName = *patch.ItemName
	}
	if patch.ExpiryDate != nil {
		item.ExpiryDate = *patch.ExpiryDate
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.PurchaseDate != nil {
		item.PurchaseDate = patch.PurchaseDate
	}
	if patch.AutoRepurchase != nil {
		item.AutoRepurchase = *patch.AutoRepurchase
	}

	if err := svc.writeRepo.Update(ctx, *item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		logger.Log.Errorw("failed to update item", "itemID", itemID, "userID", userID, "err", err)
		return nil, err
	}

	if item.Status != prevStatus && (item.Status == models.StatusWarning || item.Status == models.StatusExpired) {
		svc.recordNotification(ctx, item.ItemID, item.UserID, item.Status)
	}

	return item, nil
}

// Delete removes the caller's item.
func (svc *ItemService) Delete(ctx context.Context, userID, itemID int64) error {
	if err := svc.writeRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		logger.Log.Errorw("failed to delete item", "itemID", itemID, "userID", userID, "err", err)
		return err
	}
	return nil
}

// recordNotification stores a notification row and publishes the
// matching event. Both are best-effort: a failure is logged and the
// item update still succeeds.
func (svc *ItemService) recordNotification(ctx context.Context, itemID, userID int64, notificationType string) {
	now := time.Now().UTC()
	today := models.NewDate(now.Year(), now.Month(), now.Day())

	if _, err := svc.notifRepo.Save(ctx, itemID, userID, notificationType, today); err != nil {
		logger.Log.Errorw("failed to record notification", "itemID", itemID, "userID", userID, "type", notificationType, "err", err)
		return
	}

	svc.publishNotification(ctx, models.NotificationEvent{
		EventID:          uuid.New().String(),
		UserID:           userID,
		ItemID:           itemID,
		NotificationType: notificationType,
		Timestamp:        now.Unix(),
	})
}

// publishNotification publishes a notification event to Kafka.
func (svc *ItemService) publishNotification(ctx context.Context, event models.NotificationEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal notification event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish notification event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Notification event published to Kafka", "event_id", event.EventID, "type", event.NotificationType)
	}
}
