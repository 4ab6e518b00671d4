package aigen

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/summary", h.Summarize)
	r.Post("/questions", h.GenerateQuestions)
	return r
}
