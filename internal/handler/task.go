package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/model"
	"github.com/BuzzLyutic/todo-list/internal/repo"
	"github.com/BuzzLyutic/todo-list/internal/service"
	"github.com/BuzzLyutic/todo-list/internal/worker"
	"github.com/BuzzLyutic/todo-list/pkg/respond"
)

// StatusClientClosedRequest is nginx's non-standard code for a client that
// went away before the gesture was applied.
const StatusClientClosedRequest = 499

type TaskHandler struct {
	dispatcher *worker.Dispatcher
	logger     *zap.Logger
}

func NewTaskHandler(d *worker.Dispatcher, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		dispatcher: d,
		logger:     logger,
	}
}

type draftRequest struct {
	Text *string `json:"text"`
}

type editResult struct {
	view service.View
	err  error
}

type commitResponse struct {
	Committed bool         `json:"committed"`
	View      service.View `json:"view"`
}

func (h *TaskHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := worker.Read(r.Context(), h.dispatcher, (*service.TaskService).View)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, view)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := worker.Read(r.Context(), h.dispatcher, (*service.TaskService).Tasks)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := worker.Read(r.Context(), h.dispatcher, func(s *service.TaskService) model.Stats {
		return s.Stats()
	})
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, stats)
}

func (h *TaskHandler) SetDraft(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}
	if req.Text == nil {
		respond.Error(w, r, http.StatusBadRequest, "text is required")
		return
	}

	view, err := worker.Read(r.Context(), h.dispatcher, func(s *service.TaskService) service.View {
		s.SetDraft(*req.Text)
		return s.View()
	})
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, view)
}

func (h *TaskHandler) Commit(w http.ResponseWriter, r *http.Request) {
	resp, err := worker.Read(r.Context(), h.dispatcher, func(s *service.TaskService) commitResponse {
		ok := s.Commit()
		return commitResponse{Committed: ok, View: s.View()}
	})
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, resp)
}

func (h *TaskHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := worker.Read(r.Context(), h.dispatcher, func(s *service.TaskService) editResult {
		err := s.BeginEdit(id)
		return editResult{view: s.View(), err: err}
	})
	if err == nil {
		err = res.err
	}
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, res.view)
}

// Toggle and Delete answer 204 even for unknown ids: a stale id is a no-op.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.dispatcher.Submit(r.Context(), func(s *service.TaskService) {
		s.ToggleCompleted(id)
	}); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.NoContent(w, r)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.dispatcher.Submit(r.Context(), func(s *service.TaskService) {
		s.DeleteTask(id)
	}); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.NoContent(w, r)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, worker.ErrStopped):
		respond.Error(w, r, http.StatusServiceUnavailable, "shutting down")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Debug("request abandoned", zap.String("path", r.URL.Path), zap.Error(err))
		respond.Error(w, r, StatusClientClosedRequest, "request canceled")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
