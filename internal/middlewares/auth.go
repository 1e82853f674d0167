package middlewares

import (
	"context"
	"net/http"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// userIDKey is an unexported type for the resolved user id context key
type userIDKey struct{}

// SetUserIDToContext stores the resolved user id in the context.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext retrieves the resolved user id from the context.
// Returns 0 if the request did not pass through AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey{}).(int64)
	return userID
}

// AuthMiddleware returns a middleware that resolves the caller identity
// from the bearer token and stores the user id in the request context.
// Any failure rejects the request before the handler runs. The subject
// claim is trusted as-is: there is no store lookup, so a deleted user's
// still-valid token is accepted until it expires.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
