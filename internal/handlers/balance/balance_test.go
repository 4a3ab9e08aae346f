package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/dto"
	balanceservice "github.com/akazarov/serptrack/internal/service/balanceservice"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func requestWithUserID(method, target, body, userID string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", userID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name:   "Successful retrieval",
			userID: "11",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 11).Return(&domain.Balance{
					CurrentBalance: 4.82,
					RechargedTotal: 10,
					SpentTotal:     5.18,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Current: 4.82, Recharged: 10, Spent: 5.18},
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			userID: "11",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 11).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := requestWithUserID(http.MethodGet, "/api/users/"+tt.userID+"/balance", "", tt.userID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRechargeHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful recharge",
			body: `{"amount":10,"description":"stripe payment 8f2c"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 11, 10.0, domain.TransactionRecharge, "stripe payment 8f2c", "").
					Return(&domain.Balance{CurrentBalance: 14.82, RechargedTotal: 20}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Admin adjustment",
			body: `{"amount":1,"type":"admin_adjustment","description":"goodwill"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 11, 1.0, domain.TransactionAdminAdjustment, "goodwill", "").
					Return(&domain.Balance{CurrentBalance: 5.82}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Rejected amount",
			body: `{"amount":-5}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 11, -5.0, domain.TransactionRecharge, "", "").
					Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := requestWithUserID(http.MethodPost, "/api/users/11/balance/recharge", tt.body, "11")
			w := httptest.NewRecorder()
			handler.Recharge(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetHistory(gomock.Any(), 11, 5, 10, "usage").Return(&balanceservice.History{
		Transactions: []domain.BalanceTransaction{
			{ID: 341, Type: domain.TransactionUsage, Amount: -0.02, BalanceBefore: 4.84, BalanceAfter: 4.82},
		},
		Total:   128,
		HasMore: true,
	}, nil)

	r := requestWithUserID(http.MethodGet, "/api/users/11/balance/history?limit=5&offset=10&type=usage", "", "11")
	w := httptest.NewRecorder()
	handler.GetHistory(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.HistoryResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 128, body.Total)
	assert.True(t, body.HasMore)
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, -0.02, body.Transactions[0].Amount)
}

func TestRedeemCouponHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful redemption",
			body: `{"code":"WELCOME5"}`,
			prepareMock: func() {
				service.EXPECT().RedeemCoupon(gomock.Any(), 11, "WELCOME5").
					Return(&domain.Balance{CurrentBalance: 9.82}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown coupon",
			body: `{"code":"NOPE"}`,
			prepareMock: func() {
				service.EXPECT().RedeemCoupon(gomock.Any(), 11, "NOPE").
					Return(nil, balanceservice.ErrCouponNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already redeemed",
			body: `{"code":"WELCOME5"}`,
			prepareMock: func() {
				service.EXPECT().RedeemCoupon(gomock.Any(), 11, "WELCOME5").
					Return(nil, balanceservice.ErrCouponAlreadyRedeemed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Exhausted",
			body: `{"code":"WELCOME5"}`,
			prepareMock: func() {
				service.EXPECT().RedeemCoupon(gomock.Any(), 11, "WELCOME5").
					Return(nil, balanceservice.ErrCouponExhausted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing code",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := requestWithUserID(http.MethodPost, "/api/users/11/coupons/redeem", tt.body, "11")
			w := httptest.NewRecorder()
			handler.RedeemCoupon(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
