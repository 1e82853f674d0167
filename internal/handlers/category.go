package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// CategoryLister defines the interface that the category list service must implement.
type CategoryLister interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryCreator defines the interface that the category create service must implement.
type CategoryCreator interface {
	Create(ctx context.Context, categoryName string, description *string) (*models.CategoryDB, error)
}

// CreateCategoryRequest represents the JSON body for creating a category
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	// Display name
	// required: true
	// example: Dairy
	CategoryName string `json:"category_name"`

	// Optional free-text description
	// example: Milk, cheese, yogurt
	Description *string `json:"description"`
}

// CategoryErrorResponse represents an error response for category endpoints
// swagger:model CategoryErrorResponse
type CategoryErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewGetCategoriesHandler returns an HTTP handler listing all categories.
// @Summary List categories
// @Description Returns the global category set. Categories are shared by all users.
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "Category list"
// @Failure 401 {object} handlers.CategoryErrorResponse "Unauthorized"
// @Router /categories [get]
// @Security BearerAuth
func NewGetCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			return
		}

		if categories == nil {
			categories = []models.CategoryDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}

// NewCreateCategoryHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Description Creates a category visible to every user. Duplicate names are permitted.
// @Tags categories
// @Accept json
// @Produce json
// @Param request body handlers.CreateCategoryRequest true "Category to create"
// @Success 201 {object} models.CategoryDB "Created category"
// @Failure 400 {object} handlers.CategoryErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.CategoryErrorResponse "Unauthorized"
// @Router /categories [post]
// @Security BearerAuth
func NewCreateCategoryHandler(svc CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "invalid request body"})
			return
		}

		category, err := svc.Create(r.Context(), req.CategoryName, req.Description)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(category)
	}
}
