package services

//go:generate mockgen -source=payment.go -destination=payment_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/metrics"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/segmentio/kafka-go"
)

// Provider event types that confirm a payment.
const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	SubscriptionActivatedEvent = "subscription.activated"
	checkoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"
	paymentSuccessPathTemplate = "%s/payment-success?session_id=%s"
	paymentCancelPathTemplate  = "%s/precios"
)

var (
	ErrInvalidPlanType = errors.New("invalid plan type")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUnknownPlanPaid = errors.New("paid transaction references an unknown plan")
)

// CheckoutProvider opens and inspects hosted checkout sessions.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	ParseEvent(payload []byte, signature string) (*models.CheckoutEvent, error)
}

// PaymentWriter records transactions and applies the paid transition.
type PaymentWriter interface {
	Save(ctx context.Context, tx *models.PaymentTransaction) error
	MarkPaid(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
}

// PaymentReader looks transactions up by checkout session.
type PaymentReader interface {
	GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
}

// SubscriptionWriter sets or clears a user's subscription.
type SubscriptionWriter interface {
	UpdateSubscription(ctx context.Context, userID uuid.UUID, planType *string, expires *time.Time) error
}

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PaymentMetrics counts confirmed payments by source.
type PaymentMetrics interface {
	PaymentConfirmed(source string)
}

// PaymentService runs checkouts and turns confirmed payments into subscriptions.
type PaymentService struct {
	provider      CheckoutProvider
	writer        PaymentWriter
	reader        PaymentReader
	subscriptions SubscriptionWriter
	tx            TxRunner
	plans         map[string]models.PricingPlan
	kafkaWriter   KafkaWriter
	metrics       PaymentMetrics
}

// PaymentServiceOpt configures optional collaborators of a PaymentService.
type PaymentServiceOpt func(*PaymentService)

// WithKafkaWriter publishes an event for every activated subscription.
func WithKafkaWriter(w KafkaWriter) PaymentServiceOpt {
	return func(s *PaymentService) {
		s.kafkaWriter = w
	}
}

// WithPaymentMetrics records every confirmed payment.
func WithPaymentMetrics(m PaymentMetrics) PaymentServiceOpt {
	return func(s *PaymentService) {
		s.metrics = m
	}
}

// NewPaymentService creates a new PaymentService using the given pricing table.
func NewPaymentService(
	provider CheckoutProvider,
	writer PaymentWriter,
	reader PaymentReader,
	subscriptions SubscriptionWriter,
	tx TxRunner,
	plans map[string]models.PricingPlan,
	opts ...PaymentServiceOpt,
) *PaymentService {
	s := &PaymentService{
		provider:      provider,
		writer:        writer,
		reader:        reader,
		subscriptions: subscriptions,
		tx:            tx,
		plans:         plans,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout opens a hosted checkout for the plan and records it as pending.
// origin is the frontend base URL the provider redirects back to.
func (s *PaymentService) Checkout(ctx context.Context, userID uuid.UUID, email, planType, origin string) (*models.CheckoutSession, error) {
	plan, ok := s.plans[planType]
	if !ok {
		return nil, ErrInvalidPlanType
	}
	origin = strings.TrimRight(origin, "/")

	session, err := s.provider.CreateSession(ctx, models.CheckoutRequest{
		UserID:     userID,
		Email:      email,
		Plan:       plan,
		SuccessURL: fmt.Sprintf(paymentSuccessPathTemplate, origin, checkoutSessionPlaceholder),
		CancelURL:  fmt.Sprintf(paymentCancelPathTemplate, origin),
	})
	if err != nil {
		logger.Log.Errorw("failed to create checkout session", "user_id", userID, "plan_type", planType, "err", err)
		return nil, err
	}

	txn := &models.PaymentTransaction{
		ID:            uuid.New(),
		SessionID:     session.ID,
		UserID:        userID,
		Amount:        plan.Price,
		Currency:      plan.Currency,
		PlanType:      plan.Type,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save payment transaction", "session_id", session.ID, "err", err)
		return nil, err
	}

	logger.Log.Infow("checkout created", "user_id", userID, "session_id", session.ID, "plan_type", plan.Type)
	return session, nil
}

// Status reports a checkout owned by the user and activates the
// subscription when the provider says it is paid.
func (s *PaymentService) Status(ctx context.Context, userID uuid.UUID, sessionID string) (*models.PaymentStatusView, error) {
	txn, err := s.reader.GetBySessionID(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to get payment transaction", "session_id", sessionID, "err", err)
		return nil, err
	}
	if txn == nil || txn.UserID != userID {
		return nil, ErrPaymentNotFound
	}

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to retrieve checkout session", "session_id", sessionID, "err", err)
		return nil, err
	}

	if session.PaymentStatus == models.PaymentPaid {
		if _, err := s.ConfirmPaid(ctx, sessionID, metrics.SourceStatus); err != nil {
			return nil, err
		}
	}

	return &models.PaymentStatusView{
		Status:        session.Status,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
	}, nil
}

// HandleWebhook verifies a provider callback and applies the paid transition
// for completed checkouts. Unrelated events are ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseEvent(payload, signature)
	if err != nil {
		logger.Log.Warnw("rejected webhook", "err", err)
		return err
	}

	switch event.Type {
	case EventCheckoutCompleted, EventAsyncPaymentSucceeded:
	default:
		logger.Log.Debugw("ignored webhook event", "type", event.Type)
		return nil
	}
	if event.Session == nil || event.Session.PaymentStatus != models.PaymentPaid {
		logger.Log.Infow("checkout event without payment", "type", event.Type)
		return nil
	}

	known, err := s.ensureTransaction(ctx, event.Session)
	if err != nil || !known {
		return err
	}

	_, err = s.ConfirmPaid(ctx, event.Session.ID, metrics.SourceWebhook)
	return err
}

// ensureTransaction makes sure a paid session has a stored transaction. A
// session with no row is recorded from its metadata (user_id, plan_type) so
// the paid transition can still apply. It reports false when neither exists.
func (s *PaymentService) ensureTransaction(ctx context.Context, sess *models.CheckoutSession) (bool, error) {
	txn, err := s.reader.GetBySessionID(ctx, sess.ID)
	if err != nil {
		logger.Log.Errorw("failed to get payment transaction", "session_id", sess.ID, "err", err)
		return false, err
	}
	if txn != nil {
		return true, nil
	}

	userID, err := uuid.Parse(sess.Metadata["user_id"])
	if err != nil {
		logger.Log.Warnw("paid session without transaction or user metadata", "session_id", sess.ID)
		return false, nil
	}
	plan, ok := s.plans[sess.Metadata["plan_type"]]
	if !ok {
		logger.Log.Warnw("paid session without transaction or known plan", "session_id", sess.ID, "plan_type", sess.Metadata["plan_type"])
		return false, nil
	}

	amount := plan.Price
	if sess.AmountTotal > 0 {
		amount = float64(sess.AmountTotal) / 100
	}
	currency := plan.Currency
	if sess.Currency != "" {
		currency = sess.Currency
	}

	txn = &models.PaymentTransaction{
		ID:            uuid.New(),
		SessionID:     sess.ID,
		UserID:        userID,
		Amount:        amount,
		Currency:      currency,
		PlanType:      plan.Type,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.writer.Save(ctx, txn); err != nil {
		// A concurrent delivery may have stored the row first.
		logger.Log.Warnw("failed to record transaction from metadata", "session_id", sess.ID, "err", err)
		return true, nil
	}
	logger.Log.Warnw("recorded missing transaction from session metadata", "session_id", sess.ID, "user_id", userID, "plan_type", plan.Type)
	return true, nil
}

// ConfirmPaid applies the paid transition for a session exactly once. It
// reports whether this call performed it; repeated calls are no-ops.
func (s *PaymentService) ConfirmPaid(ctx context.Context, sessionID, source string) (bool, error) {
	var (
		txn     *models.PaymentTransaction
		expires time.Time
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.writer.MarkPaid(ctx, sessionID)
		if err != nil {
			return err
		}
		if txn == nil {
			return nil
		}

		plan, ok := s.plans[txn.PlanType]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlanPaid, txn.PlanType)
		}
		expires = time.Now().UTC().Add(plan.Duration)
		planType := plan.Type
		return s.subscriptions.UpdateSubscription(ctx, txn.UserID, &planType, &expires)
	})
	if err != nil {
		logger.Log.Errorw("failed to confirm payment", "session_id", sessionID, "source", source, "err", err)
		return false, err
	}
	if txn == nil {
		logger.Log.Debugw("payment already confirmed or unknown", "session_id", sessionID, "source", source)
		return false, nil
	}

	logger.Log.Infow("subscription activated", "user_id", txn.UserID, "plan_type", txn.PlanType, "expires", expires, "source", source)
	if s.metrics != nil {
		s.metrics.PaymentConfirmed(source)
	}
	s.publishActivation(ctx, txn, expires, source)
	return true, nil
}

// publishActivation publishes a subscription event to Kafka.
func (s *PaymentService) publishActivation(ctx context.Context, txn *models.PaymentTransaction, expires time.Time, source string) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "session_id", txn.SessionID)
		return
	}

	event := models.SubscriptionEvent{
		EventID:   uuid.NewString(),
		Type:      SubscriptionActivatedEvent,
		UserID:    txn.UserID.String(),
		PlanType:  txn.PlanType,
		SessionID: txn.SessionID,
		Amount:    txn.Amount,
		Currency:  txn.Currency,
		ExpiresAt: expires,
		Source:    source,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal subscription event", "session_id", txn.SessionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish subscription event", "session_id", txn.SessionID, "error", err)
		return
	}
	logger.Log.Infow("Subscription event published", "event_id", event.EventID, "user_id", event.UserID)
}
