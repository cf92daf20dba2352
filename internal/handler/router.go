package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BuzzLyutic/todo-list/pkg/respond"
)

func NewRouter(h *TaskHandler) http.Handler {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", h.View)
		r.Get("/stats", h.Stats)

		r.Route("/composer", func(r chi.Router) {
			r.Put("/draft", h.SetDraft)
			r.Post("/commit", h.Commit)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/{id}/edit", h.BeginEdit)
			r.Post("/{id}/toggle", h.Toggle)
			r.Delete("/{id}", h.Delete)
		})
	})

	return r
}
