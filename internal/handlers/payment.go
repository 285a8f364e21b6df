package handlers

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/services"
)

// maxWebhookBytes matches the payload ceiling recommended by the provider.
const maxWebhookBytes = 65536

// StripeSignatureHeader carries the webhook signature.
const StripeSignatureHeader = "Stripe-Signature"

// CheckoutCreator opens checkout sessions.
type CheckoutCreator interface {
	Checkout(ctx context.Context, userID uuid.UUID, email, planType, origin string) (*models.CheckoutSession, error)
}

// PaymentStatusGetter polls a checkout session.
type PaymentStatusGetter interface {
	Status(ctx context.Context, userID uuid.UUID, sessionID string) (*models.PaymentStatusView, error)
}

// WebhookProcessor verifies and applies a provider callback.
type WebhookProcessor interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// CheckoutRequest selects the plan to buy.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	// weekly or monthly
	// required: true
	// default: weekly
	PlanType string `json:"plan_type" validate:"required"`

	// Frontend origin used for the return URLs. Defaults to the Origin header.
	// default: https://nutriplan.example.com
	OriginURL string `json:"origin_url"`
}

// CheckoutResponse points the client at the hosted checkout page.
// swagger:model CheckoutResponse
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// WebhookResponse acknowledges a provider callback.
// swagger:model WebhookResponse
type WebhookResponse struct {
	Received bool `json:"received"`
}

// NewCheckoutHandler opens a checkout session for a subscription plan.
// @Summary Start checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.CheckoutRequest true "Plan"
// @Success 200 {object} handlers.CheckoutResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid plan type"
// @Router /payments/checkout [post]
// @Security BearerAuth
func NewCheckoutHandler(svc CheckoutCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		session, err := svc.Checkout(r.Context(), claims.UserID, claims.Email, req.PlanType, requestOrigin(r, req.OriginURL))
		if err != nil {
			if errors.Is(err, services.ErrInvalidPlanType) {
				writeError(w, http.StatusBadRequest, "Invalid plan type")
				return
			}
			logger.Log.Errorw("failed to create checkout session", "userID", claims.UserID, "planType", req.PlanType, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, CheckoutResponse{URL: session.URL, SessionID: session.ID})
	}
}

// NewPaymentStatusHandler reports a checkout and activates the subscription once paid.
// @Summary Checkout status
// @Tags payments
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} models.PaymentStatusView
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/status/{session_id} [get]
// @Security BearerAuth
func NewPaymentStatusHandler(svc PaymentStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		sessionID := chi.URLParam(r, "session_id")

		view, err := svc.Status(r.Context(), claims.UserID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrPaymentNotFound) {
				writeError(w, http.StatusNotFound, "Payment not found")
				return
			}
			logger.Log.Errorw("failed to check payment status", "userID", claims.UserID, "sessionID", sessionID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewStripeWebhookHandler applies provider callbacks. It always acknowledges.
// @Summary Stripe webhook
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} handlers.WebhookResponse
// @Router /webhook/stripe [post]
func NewStripeWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "err", err)
			writeJSON(w, http.StatusOK, WebhookResponse{Received: true})
			return
		}

		if err := svc.HandleWebhook(r.Context(), payload, r.Header.Get(StripeSignatureHeader)); err != nil {
			logger.Log.Errorw("webhook processing failed", "err", err)
		}

		writeJSON(w, http.StatusOK, WebhookResponse{Received: true})
	}
}

// requestOrigin picks the frontend origin for checkout return URLs.
func requestOrigin(r *http.Request, explicit string) string {
	if origin := strings.TrimRight(strings.TrimSpace(explicit), "/"); origin != "" {
		return origin
	}
	if origin := strings.TrimRight(r.Header.Get("Origin"), "/"); origin != "" {
		return origin
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
