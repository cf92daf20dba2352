package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/config"
	"github.com/BuzzLyutic/todo-list/internal/logging"
	"github.com/BuzzLyutic/todo-list/internal/repo"
	"github.com/BuzzLyutic/todo-list/internal/service"
)

type options struct {
	configPath string
	port       string
	logLevel   string
	ids        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "todo",
		Short:        "Single-user in-memory task list",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.port, "port", "", "HTTP port (overrides PORT)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.ids, "ids", "", "task id strategy: sequence or uuid")

	root.AddCommand(newServeCmd(opts), newTUICmd(opts))
	return root
}

// load resolves config as env < file < flags.
func (o *options) load() (config.Config, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.port != "" {
		cfg.Port = o.port
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.ids != "" {
		cfg.IDStrategy = o.ids
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newService(cfg config.Config, logger *zap.Logger) *service.TaskService {
	var ids repo.IDGenerator = repo.NewSequence()
	if cfg.IDStrategy == config.IDsUUID {
		ids = repo.UUIDs()
	}
	return service.NewTaskService(repo.NewTaskRepo(ids), logger)
}

func setup(o *options) (config.Config, *zap.Logger, error) {
	cfg, err := o.load()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logger, nil
}
