package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/handler"
	"github.com/BuzzLyutic/todo-list/internal/worker"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the task list over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			dispatcher := worker.NewDispatcher(newService(cfg, logger), logger, cfg.QueueSize)
			// runs until after srv.Shutdown so in-flight gestures complete
			dispatcher.Start(context.Background())
			defer dispatcher.Stop()

			srv := http.Server{ // Создаем сервер
				Addr:         ":" + cfg.Port,
				Handler:      handler.NewRouter(handler.NewTaskHandler(dispatcher, logger)),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { // Запуск сервера и обработка ошибок
				logger.Info("Server started", zap.String("addr", srv.Addr), zap.String("ids", cfg.IDStrategy))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			// Graceful shutdown
			select {
			case err := <-errc:
				if err != nil {
					logger.Error("Server failed", zap.Error(err))
					return err
				}
			case <-ctx.Done():
			}

			logger.Info("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Shutdown error", zap.Error(err))
				return err
			}
			logger.Info("Server stopped successfully")
			return nil
		},
	}
}
