package services

//go:generate mockgen -source=questionnaire.go -destination=questionnaire_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

// QuestionnaireWriter stores questionnaire submissions.
type QuestionnaireWriter interface {
	Save(ctx context.Context, resp *models.QuestionnaireResponse) error
}

// QuestionnaireReader returns the most recent submission of a user.
type QuestionnaireReader interface {
	GetLatest(ctx context.Context, userID uuid.UUID) (*models.QuestionnaireResponse, error)
}

// QuestionnaireService stores submissions. Each submit is a new row and the
// latest one wins on read.
type QuestionnaireService struct {
	writer QuestionnaireWriter
	reader QuestionnaireReader
}

// NewQuestionnaireService creates a new QuestionnaireService.
func NewQuestionnaireService(writer QuestionnaireWriter, reader QuestionnaireReader) *QuestionnaireService {
	return &QuestionnaireService{writer: writer, reader: reader}
}

// Submit stores a new questionnaire for the user and returns its id.
func (s *QuestionnaireService) Submit(ctx context.Context, userID uuid.UUID, data models.QuestionnaireData) (uuid.UUID, error) {
	data.Normalize()
	resp := &models.QuestionnaireResponse{
		ID:        uuid.New(),
		UserID:    userID,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, resp); err != nil {
		logger.Log.Errorw("failed to save questionnaire", "user_id", userID, "err", err)
		return uuid.Nil, err
	}

	logger.Log.Infow("questionnaire saved", "user_id", userID, "id", resp.ID)
	return resp.ID, nil
}

// Latest returns the newest questionnaire of the user, or nil when there is none.
func (s *QuestionnaireService) Latest(ctx context.Context, userID uuid.UUID) (*models.QuestionnaireResponse, error) {
	resp, err := s.reader.GetLatest(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get questionnaire", "user_id", userID, "err", err)
		return nil, err
	}
	return resp, nil
}
