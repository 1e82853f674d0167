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

// PurchaseLister defines the interface that the purchase-list list service must implement.
type PurchaseLister interface {
	List(ctx context.Context, userID int64) ([]models.PurchaseListDB, error)
}

// PurchaseCreator defines the interface that the purchase-list create service must implement.
type PurchaseCreator interface {
	Create(ctx context.Context, userID int64, itemName string, categoryID int64) (*models.PurchaseListDB, error)
}

// PurchaseCompleter defines the interface that the mark-purchased service must implement.
type PurchaseCompleter interface {
	MarkPurchased(ctx context.Context, userID, purchaseID int64) error
}

// CreatePurchaseRequest represents the JSON body for adding a shopping-list entry
// swagger:model CreatePurchaseRequest
type CreatePurchaseRequest struct {
	// What to buy, free text
	// required: true
	// example: Milk
	ItemName string `json:"item_name"`

	// Category reference
	// required: true
	// example: 1
	CategoryID int64 `json:"category_id"`
}

// PurchaseMessageResponse represents a confirmation response for purchase-list endpoints
// swagger:model PurchaseMessageResponse
type PurchaseMessageResponse struct {
	// Confirmation message
	// example: Purchase completed
	Message string `json:"message"`
}

// PurchaseErrorResponse represents an error response for purchase-list endpoints
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// example: Purchase list not found
	Error string `json:"error"`
}

// NewGetPurchaseListsHandler returns an HTTP handler listing the caller's shopping list.
// @Summary List purchase entries
// @Description Returns the shopping-list entries owned by the authenticated user.
// @Tags purchase-lists
// @Produce json
// @Success 200 {array} models.PurchaseListDB "Purchase list"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Router /purchase-lists [get]
// @Security BearerAuth
func NewGetPurchaseListsHandler(svc PurchaseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		entries, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			return
		}

		if entries == nil {
			entries = []models.PurchaseListDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(entries)
	}
}

// NewCreatePurchaseListHandler returns an HTTP handler adding a shopping-list entry.
// @Summary Add a purchase entry
// @Description Adds an unpurchased entry to the caller's shopping list.
// @Tags purchase-lists
// @Accept json
// @Produce json
// @Param request body handlers.CreatePurchaseRequest true "Entry to add"
// @Success 201 {object} models.PurchaseListDB "Created entry"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Router /purchase-lists [post]
// @Security BearerAuth
func NewCreatePurchaseListHandler(svc PurchaseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req CreatePurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "invalid request body"})
			return
		}

		entry, err := svc.Create(r.Context(), userID, req.ItemName, req.CategoryID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	}
}

// NewCompletePurchaseHandler returns an HTTP handler marking an entry purchased.
// @Summary Mark an entry purchased
// @Description Sets the purchased flag and timestamp together. The transition is one-way; entries owned by other users report not found.
// @Tags purchase-lists
// @Produce json
// @Param purchaseID path int true "Purchase entry ID"
// @Success 200 {object} handlers.PurchaseMessageResponse "Purchase completed"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.PurchaseErrorResponse "Entry not found"
// @Router /purchase-lists/{purchaseID} [put]
// @Security BearerAuth
func NewCompletePurchaseHandler(svc PurchaseCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		purchaseID, err := strconv.ParseInt(chi.URLParam(r, "purchaseID"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Purchase list not found"})
			return
		}

		if err := svc.MarkPurchased(r.Context(), userID, purchaseID); err != nil {
			switch {
			case errors.Is(err, services.ErrPurchaseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Purchase list not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseMessageResponse{Message: "Purchase completed"})
	}
}
