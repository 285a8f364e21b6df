package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

// StripeCheckout opens and reads Checkout sessions and verifies webhooks.
type StripeCheckout struct {
	webhookSecret string
}

// NewStripeCheckout sets the API key of the stripe client.
func NewStripeCheckout(secretKey, webhookSecret string) *StripeCheckout {
	stripe.Key = secretKey
	return &StripeCheckout{webhookSecret: webhookSecret}
}

// CreateSession opens a one-off payment for the plan.
func (f *StripeCheckout) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(req.Plan.Currency)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.Plan.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(req.Plan.Price * 100))),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(req.Email),
		Metadata: map[string]string{
			"user_id":   req.UserID.String(),
			"plan_type": req.Plan.Type,
			"email":     req.Email,
		},
	}
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		logger.Log.Errorw("failed to create checkout session", "user_id", req.UserID, "plan", req.Plan.Type, "error", err)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return toCheckoutSession(sess), nil
}

// GetSession retrieves the provider state of a session.
func (f *StripeCheckout) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := checkoutsession.Get(sessionID, params)
	if err != nil {
		logger.Log.Errorw("failed to get checkout session", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return toCheckoutSession(sess), nil
}

// ParseEvent verifies the signature header and decodes the event. Session is
// set only for checkout session events.
func (f *StripeCheckout) ParseEvent(payload []byte, signature string) (*models.CheckoutEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, f.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("verify webhook: %w", err)
	}

	out := &models.CheckoutEvent{Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") {
		return out, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	out.Session = toCheckoutSession(&sess)
	return out, nil
}

func toCheckoutSession(s *stripe.CheckoutSession) *models.CheckoutSession {
	return &models.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
}
