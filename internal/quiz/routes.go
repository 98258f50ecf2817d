package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate_quiz", h.GenerateQuiz)
	r.Post("/strategies/{strategy}/generate_quiz", h.GenerateQuizWithStrategy)
	return r
}
