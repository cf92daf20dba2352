package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/todo-list/internal/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the task list in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			return tui.Run(ctx, newService(cfg, logger), logger)
		},
	}
}
