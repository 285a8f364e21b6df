package services

//go:generate mockgen -source=progress.go -destination=progress_mock.go -package=services

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

// DateLayout is the calendar day format used by weight and hydration records.
const DateLayout = "2006-01-02"

// Accepted weight range in kg.
const (
	MinWeightKg = 20.0
	MaxWeightKg = 400.0
)

var (
	ErrInvalidWeight   = errors.New("weight must be between 20 and 400 kg")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidGoal     = errors.New("target weight must be positive")
	ErrInvalidGoalType = errors.New("goal type must be bajar, aumentar or mantener")
)

// WeightWriter stores and removes weight records.
type WeightWriter interface {
	Save(ctx context.Context, rec *models.WeightRecord) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// WeightReader lists weight records oldest first.
type WeightReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WeightRecord, error)
}

// GoalStore reads and replaces custom goals.
type GoalStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.CustomGoal, error)
	Upsert(ctx context.Context, goal *models.CustomGoal) error
}

// ProgressService tracks weight records and goals.
type ProgressService struct {
	writer         WeightWriter
	reader         WeightReader
	goals          GoalStore
	questionnaires QuestionnaireReader
	calc           *nutrition.Calculator
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	writer WeightWriter,
	reader WeightReader,
	goals GoalStore,
	questionnaires QuestionnaireReader,
	calc *nutrition.Calculator,
) *ProgressService {
	return &ProgressService{
		writer:         writer,
		reader:         reader,
		goals:          goals,
		questionnaires: questionnaires,
		calc:           calc,
	}
}

// AddWeight stores a weight sample. An empty date means today (UTC).
func (s *ProgressService) AddWeight(ctx context.Context, userID uuid.UUID, weight float64, date, notes string) (*models.WeightRecord, error) {
	if weight < MinWeightKg || weight > MaxWeightKg {
		return nil, ErrInvalidWeight
	}
	day, err := dayOrToday(date)
	if err != nil {
		return nil, err
	}

	rec := &models.WeightRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Weight:    weight,
		Date:      day,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writer.Save(ctx, rec); err != nil {
		logger.Log.Errorw("failed to save weight record", "user_id", userID, "err", err)
		return nil, err
	}
	return rec, nil
}

// ListWeights returns the user's records ordered by date ascending.
func (s *ProgressService) ListWeights(ctx context.Context, userID uuid.UUID) ([]models.WeightRecord, error) {
	records, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list weight records", "user_id", userID, "err", err)
		return nil, err
	}
	if records == nil {
		records = []models.WeightRecord{}
	}
	return records, nil
}

// DeleteWeight removes one of the user's records.
func (s *ProgressService) DeleteWeight(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := s.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete weight record", "user_id", userID, "id", id, "err", err)
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Goal returns the effective goal: the custom one if set, otherwise the one
// derived from the questionnaire.
func (s *ProgressService) Goal(ctx context.Context, userID uuid.UUID) (*models.GoalView, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := snap.projection
	return &models.GoalView{
		TargetWeight:   nutrition.Round1(p.TargetWeight),
		GoalType:       p.GoalType,
		IsCustom:       p.IsCustom,
		CurrentWeight:  snap.current,
		WeeklyRate:     p.WeeklyRate,
		EstimatedWeeks: p.EstimatedWeeks,
	}, nil
}

// SetGoal stores a custom goal and returns the resulting effective goal.
func (s *ProgressService) SetGoal(ctx context.Context, userID uuid.UUID, targetWeight float64, goalType string) (*models.GoalView, error) {
	if targetWeight <= 0 {
		return nil, ErrInvalidGoal
	}
	switch goalType {
	case models.GoalLose, models.GoalGain, models.GoalMaintain:
	default:
		return nil, ErrInvalidGoalType
	}

	goal := &models.CustomGoal{
		UserID:       userID,
		TargetWeight: targetWeight,
		GoalType:     goalType,
		IsCustom:     true,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.goals.Upsert(ctx, goal); err != nil {
		logger.Log.Errorw("failed to save goal", "user_id", userID, "err", err)
		return nil, err
	}
	return s.Goal(ctx, userID)
}

// Stats aggregates the weight history against the effective goal.
// Every field stays zero when there is nothing to derive it from.
func (s *ProgressService) Stats(ctx context.Context, userID uuid.UUID) (*models.ProgressStats, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.ProgressStats{
		InitialWeight:  snap.initial,
		CurrentWeight:  snap.current,
		TargetWeight:   nutrition.Round1(snap.projection.TargetWeight),
		WeightChange:   nutrition.Round2(snap.current - snap.initial),
		TotalRecords:   snap.records,
		GoalType:       snap.projection.GoalType,
		IsCustomGoal:   snap.projection.IsCustom,
		WeeklyRate:     snap.projection.WeeklyRate,
		EstimatedWeeks: snap.projection.EstimatedWeeks,
	}
	if snap.questionnaire != nil {
		stats.Goal = snap.questionnaire.MainGoal
		bmi := nutrition.BMI(snap.current, snap.questionnaire.HeightCm)
		stats.BMI = nutrition.Round1(bmi)
		stats.BMICategory = nutrition.BMICategory(bmi)
	}
	return stats, nil
}

type progressSnapshot struct {
	questionnaire *models.QuestionnaireData
	records       int
	initial       float64
	current       float64
	projection    nutrition.Projection
}

func (s *ProgressService) snapshot(ctx context.Context, userID uuid.UUID) (*progressSnapshot, error) {
	resp, err := s.questionnaires.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get questionnaire", "user_id", userID, "err", err)
		return nil, err
	}
	records, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list weight records", "user_id", userID, "err", err)
		return nil, err
	}
	custom, err := s.goals.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get goal", "user_id", userID, "err", err)
		return nil, err
	}

	snap := &progressSnapshot{records: len(records)}
	in := nutrition.ProjectionInput{Custom: custom}
	if resp != nil {
		snap.questionnaire = &resp.Data
		snap.initial = resp.Data.WeightKg
		snap.current = resp.Data.WeightKg
		in.HeightCm = resp.Data.HeightCm
		in.Goal = resp.Data.MainGoal
		in.ExerciseDays = resp.Data.ExerciseDays
	}
	if len(records) > 0 {
		snap.initial = records[0].Weight
		snap.current = records[len(records)-1].Weight
	}
	in.CurrentWeight = snap.current

	snap.projection = s.calc.Project(in)
	return snap, nil
}

// dayOrToday validates a YYYY-MM-DD date, defaulting to today in UTC.
func dayOrToday(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().UTC().Format(DateLayout), nil
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}
