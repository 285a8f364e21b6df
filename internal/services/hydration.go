package services

//go:generate mockgen -source=hydration.go -destination=hydration_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
)

// Hydration limits.
const (
	MaxGlassesPerDay   = 30
	DefaultHistoryDays = 7
	MaxHistoryDays     = 90
)

var ErrInvalidGlasses = errors.New("glasses must be between 0 and 30")

// HydrationStore keeps one glass count per user and day.
type HydrationStore interface {
	Upsert(ctx context.Context, rec *models.HydrationRecord) error
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*models.HydrationRecord, error)
	ListSince(ctx context.Context, userID uuid.UUID, since string, limit int) ([]models.HydrationRecord, error)
}

// HydrationService computes water targets and records daily intake.
type HydrationService struct {
	store          HydrationStore
	questionnaires QuestionnaireReader
	calc           *nutrition.Calculator
}

// NewHydrationService creates a new HydrationService.
func NewHydrationService(store HydrationStore, questionnaires QuestionnaireReader, calc *nutrition.Calculator) *HydrationService {
	return &HydrationService{store: store, questionnaires: questionnaires, calc: calc}
}

// Goal returns the daily water target. Users without a questionnaire get the defaults.
func (s *HydrationService) Goal(ctx context.Context, userID uuid.UUID) (*models.HydrationGoal, error) {
	resp, err := s.questionnaires.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get questionnaire", "user_id", userID, "err", err)
		return nil, err
	}
	if resp == nil {
		return &models.HydrationGoal{
			DailyGlasses: nutrition.DefaultGlasses,
			DailyML:      nutrition.DefaultWaterML,
			WeightKg:     nutrition.DefaultWeightKg,
			Goal:         nutrition.DefaultGoal,
		}, nil
	}

	water := s.calc.Hydration(resp.Data.WeightKg, resp.Data.MainGoal)
	return &models.HydrationGoal{
		DailyGlasses: water.Glasses,
		DailyML:      water.ML,
		WeightKg:     resp.Data.WeightKg,
		Goal:         resp.Data.MainGoal,
	}, nil
}

// Log sets the glass count of a day. An empty date means today (UTC).
func (s *HydrationService) Log(ctx context.Context, userID uuid.UUID, glasses int, date string) (*models.HydrationRecord, error) {
	if glasses < 0 || glasses > MaxGlassesPerDay {
		return nil, ErrInvalidGlasses
	}
	day, err := dayOrToday(date)
	if err != nil {
		return nil, err
	}

	rec := &models.HydrationRecord{
		UserID:    userID,
		Date:      day,
		Glasses:   glasses,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		logger.Log.Errorw("failed to log hydration", "user_id", userID, "date", day, "err", err)
		return nil, err
	}
	return rec, nil
}

// Today returns today's record, or a zero count when nothing was logged.
func (s *HydrationService) Today(ctx context.Context, userID uuid.UUID) (*models.HydrationRecord, error) {
	day := time.Now().UTC().Format(DateLayout)
	rec, err := s.store.GetByDate(ctx, userID, day)
	if err != nil {
		logger.Log.Errorw("failed to get hydration", "user_id", userID, "date", day, "err", err)
		return nil, err
	}
	if rec == nil {
		return &models.HydrationRecord{UserID: userID, Date: day}, nil
	}
	return rec, nil
}

// History returns the records of the last days days, newest first.
// days is clamped to 1..90.
func (s *HydrationService) History(ctx context.Context, userID uuid.UUID, days int) ([]models.HydrationRecord, error) {
	days = ClampHistoryDays(days)
	since := time.Now().UTC().AddDate(0, 0, -(days - 1)).Format(DateLayout)

	records, err := s.store.ListSince(ctx, userID, since, days)
	if err != nil {
		logger.Log.Errorw("failed to list hydration", "user_id", userID, "err", err)
		return nil, err
	}
	if records == nil {
		records = []models.HydrationRecord{}
	}
	return records, nil
}

// ClampHistoryDays maps a requested window onto 1..90.
func ClampHistoryDays(days int) int {
	switch {
	case days < 1:
		return 1
	case days > MaxHistoryDays:
		return MaxHistoryDays
	default:
		return days
	}
}
