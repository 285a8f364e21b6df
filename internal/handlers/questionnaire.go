package handlers

//go:generate mockgen -source=questionnaire.go -destination=questionnaire_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-nutriplan/internal/logger"
	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

// QuestionnaireSubmitter stores a questionnaire.
type QuestionnaireSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, data models.QuestionnaireData) (uuid.UUID, error)
}

// QuestionnaireGetter loads the latest questionnaire.
type QuestionnaireGetter interface {
	Latest(ctx context.Context, userID uuid.UUID) (*models.QuestionnaireResponse, error)
}

// QuestionnaireSavedResponse acknowledges a submission.
// swagger:model QuestionnaireSavedResponse
type QuestionnaireSavedResponse struct {
	ID uuid.UUID `json:"id"`
	// default: Cuestionario guardado correctamente
	Message string `json:"message"`
}

// NewSubmitQuestionnaireHandler stores a new questionnaire for the caller.
// @Summary Submit questionnaire
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param request body models.QuestionnaireData true "Questionnaire"
// @Success 200 {object} handlers.QuestionnaireSavedResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid questionnaire"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /questionnaire [post]
// @Security BearerAuth
func NewSubmitQuestionnaireHandler(svc QuestionnaireSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var data models.QuestionnaireData
		if err := decodeJSON(w, r, &data); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		id, err := svc.Submit(r.Context(), claims.UserID, data)
		if err != nil {
			logger.Log.Errorw("failed to save questionnaire", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, QuestionnaireSavedResponse{ID: id, Message: "Cuestionario guardado correctamente"})
	}
}

// NewGetQuestionnaireHandler returns the caller's latest questionnaire or null.
// @Summary Latest questionnaire
// @Tags questionnaire
// @Produce json
// @Success 200 {object} models.QuestionnaireResponse
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /questionnaire [get]
// @Security BearerAuth
func NewGetQuestionnaireHandler(svc QuestionnaireGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		resp, err := svc.Latest(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to load questionnaire", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
