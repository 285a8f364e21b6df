package services

//go:generate mockgen -source=plan.go -destination=plan_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/mealplan"
	"github.com/sbilibin2017/gw-nutriplan/internal/metrics"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/sbilibin2017/gw-nutriplan/internal/pdf"
)

// PlanListLimit caps how many plans a listing returns.
const PlanListLimit = 100

var (
	ErrQuestionnaireRequired = errors.New("questionnaire required")
	ErrTrialAlreadyUsed      = errors.New("trial plan already generated")
	ErrSubscriptionRequired  = errors.New("active subscription required")
	ErrNotFound              = errors.New("not found")
)

// MealPlanWriter persists generated plans.
type MealPlanWriter interface {
	Save(ctx context.Context, plan *models.MealPlan) error
}

// MealPlanReader reads a user's plans.
type MealPlanReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.MealPlan, error)
	GetByID(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error)
	HasTrial(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PlanDrafter asks a language model for a plan document.
type PlanDrafter interface {
	Draft(ctx context.Context, prompt string) (string, error)
}

// PlanMetrics counts generated plans by source.
type PlanMetrics interface {
	PlanGenerated(planType, source string)
}

// PDFArchive caches rendered documents.
type PDFArchive interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key, contentType string, data []byte) error
}

// PlanService generates, lists and exports meal plans.
type PlanService struct {
	users          UserReader
	questionnaires QuestionnaireReader
	writer         MealPlanWriter
	reader         MealPlanReader
	drafter        PlanDrafter
	calc           *nutrition.Calculator
	mealsPerDay    int
	metrics        PlanMetrics
	archive        PDFArchive
}

// PlanServiceOpt configures optional collaborators of a PlanService.
type PlanServiceOpt func(*PlanService)

// WithPlanMetrics records every generated plan.
func WithPlanMetrics(m PlanMetrics) PlanServiceOpt {
	return func(s *PlanService) {
		s.metrics = m
	}
}

// WithPDFArchive caches rendered PDFs.
func WithPDFArchive(a PDFArchive) PlanServiceOpt {
	return func(s *PlanService) {
		s.archive = a
	}
}

// NewPlanService creates a new PlanService. mealsPerDay applies to full plans only.
func NewPlanService(
	users UserReader,
	questionnaires QuestionnaireReader,
	writer MealPlanWriter,
	reader MealPlanReader,
	drafter PlanDrafter,
	calc *nutrition.Calculator,
	mealsPerDay int,
	opts ...PlanServiceOpt,
) *PlanService {
	s := &PlanService{
		users:          users,
		questionnaires: questionnaires,
		writer:         writer,
		reader:         reader,
		drafter:        drafter,
		calc:           calc,
		mealsPerDay:    mealsPerDay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateTrial creates the single free one-day plan of a user.
func (s *PlanService) GenerateTrial(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	q, err := s.questionnaire(ctx, userID)
	if err != nil {
		return nil, err
	}

	used, err := s.reader.HasTrial(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check trial", "user_id", userID, "err", err)
		return nil, err
	}
	if used {
		return nil, ErrTrialAlreadyUsed
	}

	plan, err := s.generate(ctx, userID, mealplan.Trial, models.PlanTypeTrial, q.Data)
	if errors.Is(err, models.ErrDuplicate) {
		return nil, ErrTrialAlreadyUsed
	}
	return plan, err
}

// GenerateFull creates a weekly plan for a subscriber. The plan type is the
// user's subscription type.
func (s *PlanService) GenerateFull(ctx context.Context, userID uuid.UUID) (*models.MealPlan, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.SubscriptionActive(time.Now()) {
		return nil, ErrSubscriptionRequired
	}

	q, err := s.questionnaire(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, userID, mealplan.Full, *user.SubscriptionType, q.Data)
}

// List returns the newest plans of a user.
func (s *PlanService) List(ctx context.Context, userID uuid.UUID) ([]models.MealPlan, error) {
	plans, err := s.reader.ListByUser(ctx, userID, PlanListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list plans", "user_id", userID, "err", err)
		return nil, err
	}
	if plans == nil {
		plans = []models.MealPlan{}
	}
	return plans, nil
}

// Get returns one plan owned by the user.
func (s *PlanService) Get(ctx context.Context, userID, planID uuid.UUID) (*models.MealPlan, error) {
	plan, err := s.reader.GetByID(ctx, userID, planID)
	if err != nil {
		logger.Log.Errorw("failed to get plan", "user_id", userID, "plan_id", planID, "err", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	return plan, nil
}

// ExportPDF renders a plan owned by the user and returns the document and
// its download file name. Rendered documents are reused when an archive is set.
func (s *PlanService) ExportPDF(ctx context.Context, userID, planID uuid.UUID) ([]byte, string, error) {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return nil, "", err
	}
	filename := pdf.Filename(plan)
	key := fmt.Sprintf("plans/%s/%s.pdf", userID, planID)

	if s.archive != nil {
		data, ok, err := s.archive.Get(ctx, key)
		if err != nil {
			logger.Log.Warnw("failed to read pdf archive", "key", key, "err", err)
		} else if ok {
			return data, filename, nil
		}
	}

	owner := ""
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, "", err
	}
	if user != nil {
		owner = user.Name
	}

	data, err := pdf.Render(plan, owner)
	if err != nil {
		logger.Log.Errorw("failed to render pdf", "plan_id", planID, "err", err)
		return nil, "", err
	}

	if s.archive != nil {
		if err := s.archive.Put(ctx, key, "application/pdf", data); err != nil {
			logger.Log.Warnw("failed to archive pdf", "key", key, "err", err)
		}
	}
	return data, filename, nil
}

func (s *PlanService) questionnaire(ctx context.Context, userID uuid.UUID) (*models.QuestionnaireResponse, error) {
	q, err := s.questionnaires.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get questionnaire", "user_id", userID, "err", err)
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionnaireRequired
	}
	return q, nil
}

func (s *PlanService) generate(ctx context.Context, userID uuid.UUID, variant mealplan.Variant, planType string, q models.QuestionnaireData) (*models.MealPlan, error) {
	targets := s.calc.Calculate(nutrition.ProfileFromQuestionnaire(q))

	req, err := mealplan.NewRequest(variant, q, targets, s.mealsPerDay)
	if err != nil {
		logger.Log.Errorw("failed to build plan request", "user_id", userID, "err", err)
		return nil, err
	}

	data, source := s.draft(ctx, req)
	recommendations := data.Recommendations
	if len(recommendations) == 0 {
		recommendations = append([]string(nil), mealplan.DefaultRecommendations...)
	}

	plan := &models.MealPlan{
		ID:              uuid.New(),
		UserID:          userID,
		PlanType:        planType,
		SchemaVersion:   models.PlanSchemaVersion,
		PlanData:        data,
		Recommendations: recommendations,
		CaloriesTarget:  targets.Calories,
		Macros:          targets.Macros,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.writer.Save(ctx, plan); err != nil {
		if !errors.Is(err, models.ErrDuplicate) {
			logger.Log.Errorw("failed to save plan", "user_id", userID, "err", err)
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PlanGenerated(planType, source)
	}
	logger.Log.Infow("plan generated", "user_id", userID, "plan_id", plan.ID, "plan_type", planType, "source", source)
	return plan, nil
}

// draft asks the model for a plan and falls back to the synthesized one on
// any failure. The fallback has the same shape as a drafted plan.
func (s *PlanService) draft(ctx context.Context, req mealplan.Request) (models.PlanData, string) {
	if s.drafter == nil {
		return mealplan.Fallback(req), metrics.SourceFallback
	}

	prompt, err := mealplan.BuildPrompt(req)
	if err != nil {
		logger.Log.Errorw("failed to build prompt", "err", err)
		return mealplan.Fallback(req), metrics.SourceFallback
	}

	raw, err := s.drafter.Draft(ctx, prompt)
	if err != nil {
		logger.Log.Warnw("plan draft failed, using fallback", "variant", req.Variant, "err", err)
		return mealplan.Fallback(req), metrics.SourceFallback
	}

	data, err := mealplan.ParseFor(req, raw)
	if err != nil {
		logger.Log.Warnw("plan draft unusable, using fallback", "variant", req.Variant, "err", err)
		return mealplan.Fallback(req), metrics.SourceFallback
	}
	return *data, metrics.SourceAI
}
