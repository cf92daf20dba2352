package repo

import (
	"errors"

	"github.com/BuzzLyutic/todo-list/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

type TaskRepo struct { // Репозиторий, единственный владелец списка задач
	tasks []model.Task
	ids   IDGenerator
}

func NewTaskRepo(ids IDGenerator) *TaskRepo { // Конструктор
	if ids == nil {
		ids = NewSequence()
	}
	return &TaskRepo{
		ids: ids,
	}
}

func (r *TaskRepo) Create(text string) model.Task {
	t := model.Task{
		ID:   r.ids.Next(),
		Text: text,
	}
	r.tasks = append(r.tasks, t)
	return t
}

func (r *TaskRepo) Get(id string) (model.Task, error) {
	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, ErrorNotFound
	}
	return r.tasks[i], nil
}

// List returns a copy so callers never alias the store's slice.
func (r *TaskRepo) List() []model.Task {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *TaskRepo) UpdateText(id, text string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tasks[i].Text = text
	return true
}

func (r *TaskRepo) ToggleCompleted(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tasks[i].Completed = !r.tasks[i].Completed
	return true
}

func (r *TaskRepo) Delete(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true
}

func (r *TaskRepo) CompletedCount() int {
	n := 0
	for _, t := range r.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (r *TaskRepo) IncompleteCount() int {
	return r.Total() - r.CompletedCount()
}

func (r *TaskRepo) Total() int {
	return len(r.tasks)
}

func (r *TaskRepo) Stats() model.Stats {
	completed := r.CompletedCount()
	return model.Stats{
		Completed:  completed,
		Incomplete: len(r.tasks) - completed,
		Total:      len(r.tasks),
	}
}

func (r *TaskRepo) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
