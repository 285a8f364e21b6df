package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

func TestCheckoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         any
		originHeader string
		wantOrigin   string
		err          error
		expectedCode int
	}{
		{
			name:         "explicit origin",
			body:         CheckoutRequest{PlanType: "weekly", OriginURL: "https://app.example.com/"},
			wantOrigin:   "https://app.example.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "origin header",
			body:         CheckoutRequest{PlanType: "monthly"},
			originHeader: "https://front.example.com",
			wantOrigin:   "https://front.example.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "request host",
			body:         CheckoutRequest{PlanType: "monthly"},
			wantOrigin:   "http://example.com",
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown plan",
			body:         CheckoutRequest{PlanType: "lifetime", OriginURL: "https://app.example.com"},
			wantOrigin:   "https://app.example.com",
			err:          services.ErrInvalidPlanType,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "provider failure",
			body:         CheckoutRequest{PlanType: "weekly", OriginURL: "https://app.example.com"},
			wantOrigin:   "https://app.example.com",
			err:          errors.New("stripe down"),
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "missing plan",
			body:         CheckoutRequest{},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCheckoutCreator(ctrl)
			if tt.wantOrigin != "" {
				var session *models.CheckoutSession
				if tt.err == nil {
					session = &models.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/pay/cs_test_1"}
				}
				mockSvc.EXPECT().
					Checkout(gomock.Any(), userID, testEmail, tt.body.(CheckoutRequest).PlanType, tt.wantOrigin).
					Return(session, tt.err)
			}

			req := newRequest(t, http.MethodPost, "/api/payments/checkout", tt.body, userID, nil)
			if tt.originHeader != "" {
				req.Header.Set("Origin", tt.originHeader)
			}
			rr := httptest.NewRecorder()
			NewCheckoutHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp CheckoutResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "cs_test_1", resp.SessionID)
				assert.Contains(t, resp.URL, "cs_test_1")
			}
		})
	}
}

func TestPaymentStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		view         *models.PaymentStatusView
		err          error
		expectedCode int
	}{
		{
			name:         "paid",
			view:         &models.PaymentStatusView{Status: "complete", PaymentStatus: "paid", AmountTotal: 19900, Currency: "mxn"},
			expectedCode: http.StatusOK,
		},
		{name: "foreign session", err: services.ErrPaymentNotFound, expectedCode: http.StatusNotFound},
		{name: "provider failure", err: errors.New("stripe down"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPaymentStatusGetter(ctrl)
			mockSvc.EXPECT().Status(gomock.Any(), userID, "cs_test_1").Return(tt.view, tt.err)

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/payments/status/cs_test_1", nil, userID, map[string]string{"session_id": "cs_test_1"})
			NewPaymentStatusHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.view != nil {
				assert.JSONEq(t, `{"status":"complete","payment_status":"paid","amount_total":19900,"currency":"mxn"}`, rr.Body.String())
			}
		})
	}
}

func TestStripeWebhookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := []byte(`{"type":"checkout.session.completed"}`)

	for _, svcErr := range []error{nil, errors.New("bad signature")} {
		mockSvc := NewMockWebhookProcessor(ctrl)
		mockSvc.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(svcErr)

		req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", bytes.NewReader(payload))
		req.Header.Set(StripeSignatureHeader, "t=1,v1=abc")
		rr := httptest.NewRecorder()
		NewStripeWebhookHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"received":true}`, rr.Body.String())
	}
}
