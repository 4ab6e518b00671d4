package aigen

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		config.Error(w, http.StatusBadRequest, "title and content are required")
		return
	}

	summary, err := h.service.Summarize(r.Context(), req.Title, req.Content)
	if err != nil {
		log.WithError(err).Error("Failed to generate summary")
		config.Error(w, http.StatusInternalServerError, "failed to generate summary")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		config.Error(w, http.StatusBadRequest, "content is required")
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req.Content)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, "failed to generate questions")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{"questions": questions})
}
