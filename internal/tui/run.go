package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/service"
)

// Run blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, svc *service.TaskService, logger *zap.Logger) error {
	p := tea.NewProgram(New(svc, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
