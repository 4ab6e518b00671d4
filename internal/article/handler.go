package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/auth"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

type Handler struct {
	service ArticleService
}

func NewHandler(s ArticleService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	articles, err := h.service.List(r.Context(), claims.SubjectID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.WithError(err).Error("Failed to list articles")
		config.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var dto CreateArticleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.service.Create(r.Context(), claims, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			config.Error(w, http.StatusBadRequest, "Title, content, and summary are required")
		case errors.Is(err, ErrUserNotFound):
			config.Error(w, http.StatusNotFound, "User not found")
		default:
			log.WithError(err).Error("Failed to create article")
			config.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{"article": a})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.withOwnedArticle(w, r, func(claims *auth.Claims, id uuid.UUID) {
		a, err := h.service.Get(r.Context(), claims.SubjectID, id)
		if err != nil {
			h.writeError(w, r, err, "Failed to get article")
			return
		}
		config.JSON(w, http.StatusOK, map[string]interface{}{"article": a})
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	h.withOwnedArticle(w, r, func(claims *auth.Claims, id uuid.UUID) {
		var dto UpdateArticleDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			config.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}

		a, err := h.service.Update(r.Context(), claims.SubjectID, id, dto)
		if err != nil {
			h.writeError(w, r, err, "Failed to update article")
			return
		}
		config.JSON(w, http.StatusOK, map[string]interface{}{"article": a})
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.withOwnedArticle(w, r, func(claims *auth.Claims, id uuid.UUID) {
		if err := h.service.Delete(r.Context(), claims.SubjectID, id); err != nil {
			h.writeError(w, r, err, "Failed to delete article")
			return
		}
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Article deleted successfully",
		})
	})
}

func (h *Handler) withOwnedArticle(w http.ResponseWriter, r *http.Request, fn func(*auth.Claims, uuid.UUID)) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// An unparseable id can never match an owned article.
		config.Error(w, http.StatusNotFound, "Article not found")
		return
	}

	fn(claims, id)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		config.Error(w, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrArticleNotFound):
		config.Error(w, http.StatusNotFound, "Article not found")
	default:
		config.WithContext(r.Context()).WithError(err).Error(msg)
		config.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
