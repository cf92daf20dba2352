// Package tui renders the task list in a terminal and turns key presses
// into task service gestures.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/service"
)

const help = "enter: add/update • ↑/↓: select • ctrl+t: toggle • ctrl+e: edit • ctrl+d: delete • esc: quit"

// Model owns no task state of its own; the service is the source of truth
// and the text input mirrors the composer draft.
type Model struct {
	svc    *service.TaskService
	logger *zap.Logger
	input  textinput.Model
	cursor int
}

func New(svc *service.TaskService, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new task"
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	return Model{
		svc:    svc,
		logger: logger,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.svc.SetDraft(m.input.Value())
			m.svc.Commit()
			m.syncInput()
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.svc.Tasks())-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+t":
			if id, ok := m.selected(); ok {
				m.svc.ToggleCompleted(id)
			}
			return m, nil
		case "ctrl+e":
			if id, ok := m.selected(); ok {
				if err := m.svc.BeginEdit(id); err != nil {
					m.logger.Debug("edit failed", zap.String("id", id), zap.Error(err))
				}
				m.syncInput()
			}
			return m, nil
		case "ctrl+d":
			if id, ok := m.selected(); ok {
				m.svc.DeleteTask(id)
				m.clampCursor()
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.svc.SetDraft(v)
	}
	return m, cmd
}

func (m Model) View() string {
	view := m.svc.View()
	var b strings.Builder

	b.WriteString(headingStyle.Render("To-Do List"))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(
		fmt.Sprintf("Completed: %d   Not Completed: %d", view.Stats.Completed, view.Stats.Incomplete),
	))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(m.input.View()),
		" ",
		buttonStyle.Render(view.ButtonLabel),
	))
	b.WriteString("\n")

	for i, t := range view.Tasks {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		style := taskStyle
		if t.Completed {
			style = completedStyle
		}
		b.WriteString(marker + style.Render(t.Text) + "\n")
	}

	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) selected() (string, bool) {
	tasks := m.svc.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return "", false
	}
	return tasks[m.cursor].ID, true
}

func (m *Model) syncInput() {
	m.input.SetValue(m.svc.Draft())
	m.input.CursorEnd()
}

func (m *Model) clampCursor() {
	n := len(m.svc.Tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
