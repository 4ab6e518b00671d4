package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// ReplaceQuestions handles POST /quiz: delete-then-insert of the article's
// question set.
func (h *Handler) ReplaceQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		ArticleID uuid.UUID       `json:"articleId"`
		Questions []QuestionInput `json:"questions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.ArticleID == uuid.Nil || payload.Questions == nil {
		config.Error(w, http.StatusBadRequest, "articleId and questions array are required")
		return
	}
	for _, q := range payload.Questions {
		if q.Question == "" || len(q.Options) == 0 || q.Correct < 0 || q.Correct >= len(q.Options) {
			config.Error(w, http.StatusBadRequest, "articleId and questions array are required")
			return
		}
	}

	quizzes, err := h.service.ReplaceQuestions(r.Context(), claims.SubjectID, payload.ArticleID, payload.Questions)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			config.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrArticleNotFound):
			config.Error(w, http.StatusNotFound, "Article not found")
		default:
			log.WithError(err).Error("Failed to replace question set")
			config.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{"quizzes": quizzes})
}

// SubmitAttempt handles PUT /quiz: append an attempt and update the cached best
// score for its anchor quiz row.
func (h *Handler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		QuizID         uuid.UUID `json:"quizId"`
		Score          *int      `json:"score"`
		TotalQuestions int       `json:"totalQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.QuizID == uuid.Nil || payload.Score == nil || payload.TotalQuestions == 0 {
		config.Error(w, http.StatusBadRequest, "quizId, score, and totalQuestions are required")
		return
	}

	attempt, err := h.service.RecordAttempt(r.Context(), claims.SubjectID, payload.QuizID, *payload.Score)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			config.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "Quiz not found")
		default:
			log.WithError(err).Error("Failed to record quiz attempt")
			config.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"attempt": attempt,
		"message": "Quiz attempt saved successfully",
	})
}

// ListAttempts handles GET /quiz?articleId=.
func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	articleIDStr := r.URL.Query().Get("articleId")
	if articleIDStr == "" {
		config.Error(w, http.StatusBadRequest, "articleId is required")
		return
	}
	articleID, err := uuid.Parse(articleIDStr)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "articleId is required")
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), claims.SubjectID, articleID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.WithError(err).Error("Failed to list quiz attempts")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}
