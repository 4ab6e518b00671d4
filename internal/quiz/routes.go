package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.ReplaceQuestions)
	r.Put("/", h.SubmitAttempt)
	r.Get("/", h.ListAttempts)
	return r
}
