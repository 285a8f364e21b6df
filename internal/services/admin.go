package services

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
)

// Admin listing page bounds.
const (
	DefaultAdminPageSize = 50
	MaxAdminPageSize     = 100
)

var ErrInvalidDays = errors.New("days must be between 0 and 3650")

// MaxOverrideDays caps an admin override at ten years.
const MaxOverrideDays = 3650

// AdminReader runs the cross-user admin queries.
type AdminReader interface {
	Counters(ctx context.Context, now time.Time) (*models.AdminCounters, error)
	ListUsers(ctx context.Context, f models.UserFilter) ([]models.AdminUser, int, error)
	ListPayments(ctx context.Context, f models.PaymentFilter) ([]models.AdminPayment, int, error)
}

// AdminStatsCache caches the dashboard aggregate.
type AdminStatsCache interface {
	Get(ctx context.Context) (*models.AdminStats, error)
	Set(ctx context.Context, stats *models.AdminStats) error
	Invalidate(ctx context.Context) error
}

// MealPlanSummaryReader lists plans without their payload.
type MealPlanSummaryReader interface {
	ListSummariesByUser(ctx context.Context, userID uuid.UUID) ([]models.MealPlanSummary, error)
}

// PaymentHistoryReader lists every transaction of a user.
type PaymentHistoryReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PaymentTransaction, error)
}

// AdminService serves the admin dashboard. Callers are expected to be
// checked with IsAdmin first.
type AdminService struct {
	admins         map[string]struct{}
	reader         AdminReader
	cache          AdminStatsCache
	users          UserReader
	subscriptions  SubscriptionWriter
	questionnaires QuestionnaireReader
	plans          MealPlanSummaryReader
	weights        WeightReader
	payments       PaymentHistoryReader
	pricing        map[string]models.PricingPlan
}

// NewAdminService creates a new AdminService. cache may be nil.
func NewAdminService(
	adminEmails []string,
	reader AdminReader,
	cache AdminStatsCache,
	users UserReader,
	subscriptions SubscriptionWriter,
	questionnaires QuestionnaireReader,
	plans MealPlanSummaryReader,
	weights WeightReader,
	payments PaymentHistoryReader,
	pricing map[string]models.PricingPlan,
) *AdminService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[normalizeEmail(e)] = struct{}{}
	}
	return &AdminService{
		admins:         admins,
		reader:         reader,
		cache:          cache,
		users:          users,
		subscriptions:  subscriptions,
		questionnaires: questionnaires,
		plans:          plans,
		weights:        weights,
		payments:       payments,
		pricing:        pricing,
	}
}

// IsAdmin reports whether email is on the allowlist.
func (s *AdminService) IsAdmin(email string) bool {
	_, ok := s.admins[normalizeEmail(email)]
	return ok
}

// Stats returns the dashboard aggregate, served from cache when fresh.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.Log.Warnw("failed to read admin stats cache", "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	c, err := s.reader.Counters(ctx, time.Now())
	if err != nil {
		logger.Log.Errorw("failed to count admin stats", "err", err)
		return nil, err
	}

	stats := &models.AdminStats{
		TotalUsers:          c.TotalUsers,
		ActiveSubscriptions: c.ActiveSubscriptions,
		TotalPlansGenerated: c.TotalPlansGenerated,
		TotalRevenue:        nutrition.Round2(c.TotalRevenue),
		UsersBySubscription: c.UsersBySubscription,
		PlansByType:         c.PlansByType,
		RecentSignups:       c.RecentSignups,
	}
	if stats.UsersBySubscription == nil {
		stats.UsersBySubscription = map[string]int{}
	}
	if stats.PlansByType == nil {
		stats.PlansByType = map[string]int{}
	}
	if c.TotalUsers > 0 {
		stats.QuestionnaireCompletionRate = nutrition.Round1(float64(c.UsersWithQuestionnaire) / float64(c.TotalUsers) * 100)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			logger.Log.Warnw("failed to cache admin stats", "err", err)
		}
	}
	return stats, nil
}

// Users lists users matching the filter together with the total match count.
func (s *AdminService) Users(ctx context.Context, f models.UserFilter) ([]models.AdminUser, int, error) {
	f.Limit, f.Skip = pageBounds(f.Limit, f.Skip)
	f.Search = strings.TrimSpace(f.Search)

	users, total, err := s.reader.ListUsers(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, 0, err
	}
	if users == nil {
		users = []models.AdminUser{}
	}
	return users, total, nil
}

// Payments lists transactions matching the filter together with the total match count.
func (s *AdminService) Payments(ctx context.Context, f models.PaymentFilter) ([]models.AdminPayment, int, error) {
	f.Limit, f.Skip = pageBounds(f.Limit, f.Skip)
	f.Status = strings.TrimSpace(f.Status)

	payments, total, err := s.reader.ListPayments(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list payments", "err", err)
		return nil, 0, err
	}
	if payments == nil {
		payments = []models.AdminPayment{}
	}
	return payments, total, nil
}

// UserDetail gathers everything stored about one user.
func (s *AdminService) UserDetail(ctx context.Context, userID uuid.UUID) (*models.AdminUserDetail, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &models.AdminUserDetail{
		User:      user.Summary(time.Now()),
		CreatedAt: user.CreatedAt,
	}
	if detail.Questionnaire, err = s.questionnaires.GetLatest(ctx, userID); err != nil {
		logger.Log.Errorw("failed to get questionnaire", "user_id", userID, "err", err)
		return nil, err
	}
	if detail.Plans, err = s.plans.ListSummariesByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to list plans", "user_id", userID, "err", err)
		return nil, err
	}
	if detail.Progress, err = s.weights.ListByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to list weight records", "user_id", userID, "err", err)
		return nil, err
	}
	if detail.Payments, err = s.payments.ListByUser(ctx, userID); err != nil {
		logger.Log.Errorw("failed to list payments", "user_id", userID, "err", err)
		return nil, err
	}

	if detail.Plans == nil {
		detail.Plans = []models.MealPlanSummary{}
	}
	if detail.Progress == nil {
		detail.Progress = []models.WeightRecord{}
	}
	if detail.Payments == nil {
		detail.Payments = []models.PaymentTransaction{}
	}
	return detail, nil
}

// SetSubscription overrides a user's subscription. An empty plan type clears
// it; otherwise the expiry is days from now, or the plan duration when days is 0.
func (s *AdminService) SetSubscription(ctx context.Context, userID uuid.UUID, planType string, days int) (*models.UserSummary, error) {
	if days < 0 || days > MaxOverrideDays {
		return nil, ErrInvalidDays
	}

	var (
		typ     *string
		expires *time.Time
	)
	if planType = strings.TrimSpace(planType); planType != "" {
		plan, ok := s.pricing[planType]
		if !ok {
			return nil, ErrInvalidPlanType
		}
		d := plan.Duration
		if days > 0 {
			d = time.Duration(days) * 24 * time.Hour
		}
		exp := time.Now().UTC().Add(d)
		typ, expires = &plan.Type, &exp
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.subscriptions.UpdateSubscription(ctx, userID, typ, expires); err != nil {
		logger.Log.Errorw("failed to update subscription", "user_id", userID, "err", err)
		return nil, err
	}
	logger.Log.Infow("subscription overridden", "user_id", userID, "plan_type", planType, "expires", expires)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate admin stats cache", "err", err)
		}
	}

	user.SubscriptionType, user.SubscriptionExpires = typ, expires
	summary := user.Summary(time.Now())
	return &summary, nil
}

func pageBounds(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = DefaultAdminPageSize
	}
	if limit > MaxAdminPageSize {
		limit = MaxAdminPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
