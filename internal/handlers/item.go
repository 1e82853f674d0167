package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/middlewares"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/mkobayashi-dev/freshtrack/internal/services"
)

// ItemLister defines the interface that the item list service must implement.
type ItemLister interface {
	List(ctx context.Context, userID int64) ([]models.ItemDB, error)
}

// ItemCreator defines the interface that the item create service must implement.
type ItemCreator interface {
	Create(ctx context.Context, userID, categoryID int64, itemName string, expiryDate models.Date, purchaseDate *models.Date, autoRepurchase bool) (*models.ItemDB, error)
}

// ItemUpdater defines the interface that the item update service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, userID, itemID int64, patch models.ItemPatch) (*models.ItemDB, error)
}

// ItemDeleter defines the interface that the item delete service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, userID, itemID int64) error
}

// CreateItemRequest represents the JSON body for creating an item
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Category reference
	// required: true
	// example: 1
	CategoryID int64 `json:"category_id"`

	// Display name
	// required: true
	// example: Milk
	ItemName string `json:"item_name"`

	// Best-before date
	// required: true
	// example: 2026-09-15
	ExpiryDate models.Date `json:"expiry_date"`

	// Optional purchase date
	// example: 2026-08-30
	PurchaseDate *models.Date `json:"purchase_date"`

	// Re-add to purchase list when expired
	// example: false
	AutoRepurchase bool `json:"auto_repurchase"`
}

// ItemMessageResponse represents a confirmation response for item endpoints
// swagger:model ItemMessageResponse
type ItemMessageResponse struct {
	// Confirmation message
	// example: Item deleted
	Message string `json:"message"`
}

// ItemErrorResponse represents an error response for item endpoints
// swagger:model ItemErrorResponse
type ItemErrorResponse struct {
	// Error message
	// example: Item not found
	Error string `json:"error"`
}

// NewGetItemsHandler returns an HTTP handler listing the caller's items.
// @Summary List items
// @Description Returns the items owned by the authenticated user.
// @Tags items
// @Produce json
// @Success 200 {array} models.ItemDB "Item list"
// @Failure 401 {object} handlers.ItemErrorResponse "Unauthorized"
// @Router /items [get]
// @Security BearerAuth
func NewGetItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			return
		}

		if items == nil {
			items = []models.ItemDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewCreateItemHandler returns an HTTP handler creating an item.
// @Summary Create an item
// @Description Creates an item owned by the authenticated user. The owner cannot be set through the payload; new items always start fresh.
// @Tags items
// @Accept json
// @Produce json
// @Param request body handlers.CreateItemRequest true "Item to create"
// @Success 201 {object} models.ItemDB "Created item"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ItemErrorResponse "Unauthorized"
// @Router /items [post]
// @Security BearerAuth
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Create(r.Context(), userID, req.CategoryID, req.ItemName, req.ExpiryDate, req.PurchaseDate, req.AutoRepurchase)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}
}

// NewUpdateItemHandler returns an HTTP handler applying a partial item update.
// @Summary Update an item
// @Description Applies only the fields present in the payload; absent fields keep their stored values. Items owned by other users report not found.
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path int true "Item ID"
// @Param request body models.ItemPatch true "Fields to update"
// @Success 200 {object} models.ItemDB "Updated item"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid request body or status"
// @Failure 401 {object} handlers.ItemErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /items/{itemID} [put]
// @Security BearerAuth
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Item not found"})
			return
		}

		var patch models.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Update(r.Context(), userID, itemID, patch)
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ItemErrorResponse{Error: validationErr.Message})
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Item not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(item)
	}
}

// NewDeleteItemHandler returns an HTTP handler deleting an item.
// @Summary Delete an item
// @Description Deletes the caller's item. Items owned by other users report not found.
// @Tags items
// @Produce json
// @Param itemID path int true "Item ID"
// @Success 200 {object} handlers.ItemMessageResponse "Item deleted"
// @Failure 401 {object} handlers.ItemErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /items/{itemID} [delete]
// @Security BearerAuth
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Item not found"})
			return
		}

		if err := svc.Delete(r.Context(), userID, itemID); err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Item not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ItemMessageResponse{Message: "Item deleted"})
	}
}
