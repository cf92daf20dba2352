package service

import (
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/composer"
	"github.com/BuzzLyutic/todo-list/internal/model"
	"github.com/BuzzLyutic/todo-list/internal/repo"
)

// View is everything a renderer needs for one frame.
type View struct {
	Tasks       []model.Task  `json:"tasks"`
	Stats       model.Stats   `json:"stats"`
	Draft       string        `json:"draft"`
	Mode        composer.Mode `json:"mode"`
	ButtonLabel string        `json:"button_label"`
	EditingID   string        `json:"editing_id,omitempty"`
}

// TaskService binds one store to one composer. It is not safe for
// concurrent use; callers serialize gestures.
type TaskService struct {
	repo     repo.TaskRepository
	composer *composer.Composer
	logger   *zap.Logger
}

func NewTaskService(r repo.TaskRepository, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		repo:     r,
		composer: composer.New(r),
		logger:   logger,
	}
}

func (s *TaskService) SetDraft(text string) {
	s.composer.SetDraft(text)
}

// Commit creates or updates a task from the draft depending on the mode.
// It reports false when the draft was empty and nothing happened.
func (s *TaskService) Commit() bool {
	mode := s.composer.Mode()
	target, _ := s.composer.TargetID()

	if !s.composer.Commit() {
		s.logger.Debug("empty draft, commit ignored", zap.Stringer("mode", mode))
		return false
	}

	if mode == composer.ModeEditing {
		s.logger.Debug("task text updated", zap.String("id", target))
	} else {
		s.logger.Debug("task created", zap.Int("total", s.repo.Total()))
	}
	return true
}

// BeginEdit loads the task's current text into the composer. A stale id
// leaves the composer untouched and returns repo.ErrorNotFound.
func (s *TaskService) BeginEdit(id string) error {
	t, err := s.repo.Get(id)
	if err != nil {
		s.logger.Debug("edit on missing task", zap.String("id", id))
		return err
	}
	s.composer.BeginEdit(t.ID, t.Text)
	return nil
}

// BeginEditWithText enters edit mode with text supplied by the caller,
// which has already looked the task up.
func (s *TaskService) BeginEditWithText(id, currentText string) {
	s.composer.BeginEdit(id, currentText)
}

func (s *TaskService) ToggleCompleted(id string) bool {
	ok := s.repo.ToggleCompleted(id)
	if !ok {
		s.logger.Debug("toggle on missing task", zap.String("id", id))
	}
	return ok
}

func (s *TaskService) DeleteTask(id string) bool {
	ok := s.repo.Delete(id)
	if !ok {
		s.logger.Debug("delete on missing task", zap.String("id", id))
	}
	return ok
}

func (s *TaskService) Tasks() []model.Task {
	return s.repo.List()
}

func (s *TaskService) Stats() model.Stats {
	return s.repo.Stats()
}

func (s *TaskService) Draft() string {
	return s.composer.Draft()
}

func (s *TaskService) Mode() composer.Mode {
	return s.composer.Mode()
}

func (s *TaskService) View() View {
	v := View{
		Tasks:       s.repo.List(),
		Stats:       s.repo.Stats(),
		Draft:       s.composer.Draft(),
		Mode:        s.composer.Mode(),
		ButtonLabel: s.composer.ButtonLabel(),
	}
	if id, ok := s.composer.TargetID(); ok {
		v.EditingID = id
	}
	return v
}
