package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/middlewares"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// NotificationLister defines the interface that the notification service must implement.
type NotificationLister interface {
	List(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationErrorResponse represents an error response for notification endpoints
// swagger:model NotificationErrorResponse
type NotificationErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewGetNotificationsHandler returns an HTTP handler listing the caller's notifications.
// @Summary List notifications
// @Description Returns the notification records owned by the authenticated user.
// @Tags notifications
// @Produce json
// @Success 200 {array} models.NotificationDB "Notification list"
// @Failure 401 {object} handlers.NotificationErrorResponse "Unauthorized"
// @Router /notifications [get]
// @Security BearerAuth
func NewGetNotificationsHandler(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		notifications, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(NotificationErrorResponse{Error: "Internal server error"})
			return
		}

		if notifications == nil {
			notifications = []models.NotificationDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(notifications)
	}
}
