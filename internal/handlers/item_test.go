package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/mkobayashi-dev/freshtrack/internal/middlewares"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/mkobayashi-dev/freshtrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target string, body *bytes.Buffer, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockItemLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.ItemDB{
						{ItemID: 1, UserID: 7, CategoryID: 1, ItemName: "Milk", Status: models.StatusFresh},
						{ItemID: 2, UserID: 7, CategoryID: 2, ItemName: "Chicken", Status: models.StatusWarning},
					}, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetItemsHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/items", nil, 7)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []models.ItemDB
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestCreateItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiry := models.NewDate(2026, 9, 15)

	tests := []struct {
		name         string
		reqBody      CreateItemRequest
		mockSetup    func(m *MockItemCreator)
		expectedCode int
		rawBody      bool
	}{
		{
			name: "success",
			reqBody: CreateItemRequest{
				CategoryID: 1,
				ItemName:   "Milk",
				ExpiryDate: expiry,
			},
			mockSetup: func(m *MockItemCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), int64(1), "Milk", expiry, (*models.Date)(nil), false).
					Return(&models.ItemDB{
						ItemID:     1,
						UserID:     7,
						CategoryID: 1,
						ItemName:   "Milk",
						ExpiryDate: expiry,
						Status:     models.StatusFresh,
					}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "internal server error",
			reqBody: CreateItemRequest{
				CategoryID: 1,
				ItemName:   "Milk",
				ExpiryDate: expiry,
			},
			mockSetup: func(m *MockItemCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), int64(1), "Milk", expiry, (*models.Date)(nil), false).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateItemHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{invalid json}")
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := authedRequest(http.MethodPost, "/items", body, 7)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.ItemDB
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, models.StatusFresh, resp.Status)
				assert.Equal(t, int64(7), resp.UserID)
			}
		})
	}
}

func TestUpdateItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newName := "Whole Milk"

	tests := []struct {
		name         string
		itemID       string
		patch        models.ItemPatch
		mockSetup    func(m *MockItemUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "success",
			itemID: "3",
			patch:  models.ItemPatch{ItemName: &newName},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), int64(3), models.ItemPatch{ItemName: &newName}).
					Return(&models.ItemDB{ItemID: 3, UserID: 7, ItemName: newName, Status: models.StatusFresh}, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "not found",
			itemID: "99",
			patch:  models.ItemPatch{ItemName: &newName},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), int64(99), gomock.Any()).
					Return(nil, services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedErr:  "Item not found",
		},
		{
			name:   "invalid status",
			itemID: "3",
			patch:  models.ItemPatch{},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), int64(3), gomock.Any()).
					Return(nil, &services.ValidationError{Field: "status", Message: "status must be one of fresh, warning, expired"})
			},
			expectedCode: 400,
			expectedErr:  "status must be one of fresh, warning, expired",
		},
		{
			name:         "non-numeric id",
			itemID:       "abc",
			expectedCode: 404,
			expectedErr:  "Item not found",
		},
		{
			name:   "internal server error",
			itemID: "3",
			patch:  models.ItemPatch{ItemName: &newName},
			mockSetup: func(m *MockItemUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), int64(3), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateItemHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.patch)
			req := authedRequest(http.MethodPut, "/items/"+tt.itemID, bytes.NewBuffer(bodyBytes), 7)
			req = withURLParam(req, "itemID", tt.itemID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedErr, resp["error"])
			}
		})
	}
}

func TestDeleteItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		itemID       string
		mockSetup    func(m *MockItemDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:   "success",
			itemID: "3",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7), int64(3)).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Item deleted"},
		},
		{
			name:   "not found",
			itemID: "99",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7), int64(99)).
					Return(services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Item not found"},
		},
		{
			name:         "non-numeric id",
			itemID:       "abc",
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Item not found"},
		},
		{
			name:   "internal server error",
			itemID: "3",
			mockSetup: func(m *MockItemDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7), int64(3)).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDeleteItemHandler(mockSvc)

			req := authedRequest(http.MethodDelete, "/items/"+tt.itemID, nil, 7)
			req = withURLParam(req, "itemID", tt.itemID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
