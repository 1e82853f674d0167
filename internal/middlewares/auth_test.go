package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockTokener)
		expectedCode int
		wantUserID   int64
		nextCalled   bool
	}{
		{
			name: "valid token resolves user id",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().GetUserID(gomock.Any(), "sometoken").Return(int64(42), nil)
			},
			expectedCode: http.StatusOK,
			wantUserID:   42,
			nextCalled:   true,
		},
		{
			name: "missing token",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("badtoken", nil)
				m.EXPECT().GetUserID(gomock.Any(), "badtoken").
					Return(int64(0), errors.New("malformed token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(next)
			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantUserID, gotUserID)
			}
		})
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, int64(0), GetUserIDFromContext(req.Context()))
}
