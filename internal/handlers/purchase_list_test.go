package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
	"github.com/mkobayashi-dev/freshtrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetPurchaseListsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockPurchaseLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(m *MockPurchaseLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.PurchaseListDB{
						{PurchaseID: 1, UserID: 7, ItemName: "Milk", CategoryID: 1},
						{PurchaseID: 2, UserID: 7, ItemName: "Eggs", CategoryID: 1, IsPurchased: true},
					}, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty list",
			mockSetup: func(m *MockPurchaseLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockPurchaseLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPurchaseLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetPurchaseListsHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/purchase-lists", nil, 7)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []models.PurchaseListDB
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestCreatePurchaseListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      CreatePurchaseRequest
		mockSetup    func(m *MockPurchaseCreator)
		expectedCode int
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: CreatePurchaseRequest{ItemName: "Milk", CategoryID: 1},
			mockSetup: func(m *MockPurchaseCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), "Milk", int64(1)).
					Return(&models.PurchaseListDB{PurchaseID: 1, UserID: 7, ItemName: "Milk", CategoryID: 1}, nil)
			},
			expectedCode: 201,
		},
		{
			name:    "internal server error",
			reqBody: CreatePurchaseRequest{ItemName: "Milk", CategoryID: 1},
			mockSetup: func(m *MockPurchaseCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), "Milk", int64(1)).
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
			mockSvc := NewMockPurchaseCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreatePurchaseListHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody {
				body = bytes.NewBufferString("{invalid json}")
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := authedRequest(http.MethodPost, "/purchase-lists", body, 7)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp models.PurchaseListDB
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.False(t, resp.IsPurchased)
			}
		})
	}
}

func TestCompletePurchaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		purchaseID   string
		mockSetup    func(m *MockPurchaseCompleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:       "success",
			purchaseID: "5",
			mockSetup: func(m *MockPurchaseCompleter) {
				m.EXPECT().
					MarkPurchased(gomock.Any(), int64(7), int64(5)).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Purchase completed"},
		},
		{
			name:       "not found",
			purchaseID: "99",
			mockSetup: func(m *MockPurchaseCompleter) {
				m.EXPECT().
					MarkPurchased(gomock.Any(), int64(7), int64(99)).
					Return(services.ErrPurchaseNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Purchase list not found"},
		},
		{
			name:         "non-numeric id",
			purchaseID:   "abc",
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Purchase list not found"},
		},
		{
			name:       "internal server error",
			purchaseID: "5",
			mockSetup: func(m *MockPurchaseCompleter) {
				m.EXPECT().
					MarkPurchased(gomock.Any(), int64(7), int64(5)).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPurchaseCompleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCompletePurchaseHandler(mockSvc)

			req := authedRequest(http.MethodPut, "/purchase-lists/"+tt.purchaseID, nil, 7)
			req = withURLParam(req, "purchaseID", tt.purchaseID)

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
