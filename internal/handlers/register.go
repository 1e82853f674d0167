package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/services"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) error
}

// RegisterRequest represents the JSON body for user signup
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password, at least 8 characters with a letter and a digit
	// required: true
	// example: abc12345
	Password string `json:"password"`
}

// RegisterResponse represents a successful signup response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: Account created successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for signup
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: username is already taken
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account. Username and email must be unique; the password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Signup request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failure or username/email conflict"
// @Router /auth/signup [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var validationErr *services.ValidationError
			switch {
			case errors.As(err, &validationErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: validationErr.Message,
				})
			case errors.Is(err, services.ErrUsernameExists),
				errors.Is(err, services.ErrEmailExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Account created successfully",
		})
	}
}
