package repo

import "github.com/BuzzLyutic/todo-list/internal/model"

// TaskRepository определяет интерфейс для работы с задачами.
// Mutations report whether they hit a task; a miss is never an error.
type TaskRepository interface {
	Create(text string) model.Task
	Get(id string) (model.Task, error)
	List() []model.Task
	UpdateText(id, text string) bool
	ToggleCompleted(id string) bool
	Delete(id string) bool
	CompletedCount() int
	IncompleteCount() int
	Total() int
	Stats() model.Stats
}
