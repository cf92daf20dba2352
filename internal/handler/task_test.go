package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BuzzLyutic/todo-list/internal/composer"
	"github.com/BuzzLyutic/todo-list/internal/model"
	"github.com/BuzzLyutic/todo-list/internal/repo"
	"github.com/BuzzLyutic/todo-list/internal/service"
	"github.com/BuzzLyutic/todo-list/internal/worker"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	taskService := service.NewTaskService(repo.NewTaskRepo(repo.NewSequence()), logger)
	dispatcher := worker.NewDispatcher(taskService, logger, 8)
	dispatcher.Start(context.Background())
	t.Cleanup(dispatcher.Stop)

	return NewRouter(NewTaskHandler(dispatcher, logger))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type viewBody struct {
	Tasks       []model.Task `json:"tasks"`
	Stats       model.Stats  `json:"stats"`
	Draft       string       `json:"draft"`
	Mode        string       `json:"mode"`
	ButtonLabel string       `json:"button_label"`
	EditingID   string       `json:"editing_id"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) viewBody {
	t.Helper()
	var v viewBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func createTask(t *testing.T, h http.Handler, text string) model.Task {
	t.Helper()
	w := do(t, h, http.MethodPut, "/api/composer/draft", map[string]string{"text": text})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/api/composer/commit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Committed bool     `json:"committed"`
		View      viewBody `json:"view"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.True(t, resp.Committed)
	return resp.View.Tasks[len(resp.View.Tasks)-1]
}

func TestHealth(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestTaskHandler_SetDraft(t *testing.T) {
	h := setupRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"invalid json", "{", http.StatusBadRequest},
		{"missing text", `{"other":"x"}`, http.StatusBadRequest},
		{"empty text is allowed", `{"text":""}`, http.StatusOK},
		{"text", `{"text":"Buy milk"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/composer/draft", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	v := decodeView(t, do(t, h, http.MethodGet, "/api/view", nil))
	assert.Equal(t, "Buy milk", v.Draft)
	assert.Equal(t, "composing", v.Mode)
	assert.Equal(t, "+", v.ButtonLabel)
}

func TestTaskHandler_CommitEmpty(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodPost, "/api/composer/commit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Committed bool     `json:"committed"`
		View      viewBody `json:"view"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Committed)
	assert.Empty(t, resp.View.Tasks)
	assert.Equal(t, "composing", resp.View.Mode)
}

func TestTaskHandler_BeginEdit(t *testing.T) {
	h := setupRouter(t)
	a := createTask(t, h, "A")

	t.Run("existing task", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/tasks/"+a.ID+"/edit", nil)
		require.Equal(t, http.StatusOK, w.Code)

		v := decodeView(t, w)
		assert.Equal(t, "editing", v.Mode)
		assert.Equal(t, "Update", v.ButtonLabel)
		assert.Equal(t, a.ID, v.EditingID)
		assert.Equal(t, "A", v.Draft)
	})

	t.Run("missing task", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/tasks/99999/edit", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		v := decodeView(t, do(t, h, http.MethodGet, "/api/view", nil))
		assert.Equal(t, a.ID, v.EditingID, "a failed edit leaves the composer alone")
	})
}

func TestTaskHandler_ToggleAndDelete(t *testing.T) {
	h := setupRouter(t)
	a := createTask(t, h, "A")
	b := createTask(t, h, "B")

	w := do(t, h, http.MethodPost, "/api/tasks/"+a.ID+"/toggle", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var stats model.Stats
	require.NoError(t, json.NewDecoder(do(t, h, http.MethodGet, "/api/stats", nil).Body).Decode(&stats))
	assert.Equal(t, model.Stats{Completed: 1, Incomplete: 1, Total: 2}, stats)

	w = do(t, h, http.MethodDelete, "/api/tasks/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	t.Run("stale id is a no-op", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/tasks/"+a.ID, nil).Code)
		assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/tasks/"+a.ID+"/toggle", nil).Code)
	})

	var tasks []model.Task
	require.NoError(t, json.NewDecoder(do(t, h, http.MethodGet, "/api/tasks", nil).Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)
	assert.False(t, tasks[0].Completed)
}

func TestTaskHandler_StoppedDispatcher(t *testing.T) {
	logger := zap.NewNop()
	taskService := service.NewTaskService(repo.NewTaskRepo(nil), logger)
	dispatcher := worker.NewDispatcher(taskService, logger, 0)
	dispatcher.Start(context.Background())
	dispatcher.Stop()

	h := NewRouter(NewTaskHandler(dispatcher, logger))

	w := do(t, h, http.MethodGet, "/api/view", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTaskHandler_CanceledRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	taskService := service.NewTaskService(repo.NewTaskRepo(nil), zap.NewNop())
	// never started: gestures stay queued until the request context ends
	dispatcher := worker.NewDispatcher(taskService, logger, 0)

	h := NewRouter(NewTaskHandler(dispatcher, logger))

	for _, path := range []string{"/api/view", "/api/tasks/1/edit", "/api/tasks/1/toggle"} {
		t.Run(path, func(t *testing.T) {
			method := http.MethodPost
			if path == "/api/view" {
				method = http.MethodGet
			}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			req := httptest.NewRequest(method, path, nil).WithContext(ctx)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, StatusClientClosedRequest, w.Code)
			assert.JSONEq(t, `{"error":"request canceled"}`, w.Body.String())
		})
	}

	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len(), "abandoned requests are not internal errors")
	assert.Equal(t, 3, logs.FilterMessage("request abandoned").Len())
}

func TestE2E_FullWorkflow(t *testing.T) {
	h := setupRouter(t)

	// 1. Create two tasks
	a := createTask(t, h, "Buy milk")
	createTask(t, h, "Walk the dog")

	// 2. Edit the first one
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/tasks/"+a.ID+"/edit", nil).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/api/composer/draft", map[string]string{"text": "Buy oat milk"}).Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/composer/commit", nil).Code)

	// 3. Complete it
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPost, "/api/tasks/"+a.ID+"/toggle", nil).Code)

	v := decodeView(t, do(t, h, http.MethodGet, "/api/view", nil))
	require.Len(t, v.Tasks, 2)
	assert.Equal(t, "Buy oat milk", v.Tasks[0].Text)
	assert.True(t, v.Tasks[0].Completed)
	assert.Equal(t, "Walk the dog", v.Tasks[1].Text)
	assert.Equal(t, model.Stats{Completed: 1, Incomplete: 1, Total: 2}, v.Stats)
	assert.Equal(t, composer.ModeComposing.String(), v.Mode)
	assert.Equal(t, "", v.Draft)
}
