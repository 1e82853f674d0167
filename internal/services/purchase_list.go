package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

var (
	// ErrPurchaseNotFound is returned when no purchase-list entry
	// matches the id for the calling user.
	ErrPurchaseNotFound = errors.New("purchase list entry not found")
)

// PurchaseListReader defines owner-scoped read operations for purchase lists.
type PurchaseListReader interface {
	List(ctx context.Context, userID int64) ([]models.PurchaseListDB, error)
}

// PurchaseListWriter defines write operations for purchase lists.
type PurchaseListWriter interface {
	Save(ctx context.Context, userID int64, itemName string, categoryID int64) (*models.PurchaseListDB, error)
	MarkPurchased(ctx context.Context, purchaseID, userID int64) error
}

// PurchaseListService handles the shopping list.
type PurchaseListService struct {
	readRepo  PurchaseListReader
	writeRepo PurchaseListWriter
}

// NewPurchaseListService creates a new PurchaseListService.
func NewPurchaseListService(readRepo PurchaseListReader, writeRepo PurchaseListWriter) *PurchaseListService {
	return &PurchaseListService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
	}
}

// List returns the caller's purchase-list entries.
func (svc *PurchaseListService) List(ctx context.Context, userID int64) ([]models.PurchaseListDB, error) {
	entries, err := svc.readRepo.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list purchase entries", "userID", userID, "err", err)
		return nil, err
	}
	return entries, nil
}

// Create adds an entry to the caller's shopping list. The item name is
// free text and need not match an existing item.
func (svc *PurchaseListService) Create(ctx context.Context, userID int64, itemName string, categoryID int64) (*models.PurchaseListDB, error) {
	entry, err := svc.writeRepo.Save(ctx, userID, itemName, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to save purchase entry", "userID", userID, "err", err)
		return nil, err
	}
	return entry, nil
}

// MarkPurchased completes an entry: the purchased flag and timestamp
// are set together in one atomic update. There is no way back to
// unpurchased.
func (svc *PurchaseListService) MarkPurchased(ctx context.Context, userID, purchaseID int64) error {
	if err := svc.writeRepo.MarkPurchased(ctx, purchaseID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPurchaseNotFound
		}
		logger.Log.Errorw("failed to mark entry purchased", "purchaseID", purchaseID, "userID", userID, "err", err)
		return err
	}
	return nil
}
