package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/todo-json/internal/config"
	"github.com/tiwariParth/todo-json/internal/storage"
	"github.com/tiwariParth/todo-json/internal/storage/file"
	"github.com/tiwariParth/todo-json/internal/storage/memory"
	"github.com/tiwariParth/todo-json/internal/task"
)

// Options tune how an App is assembled.
type Options struct {
	// DryRun reads the list from disk but keeps every change in memory.
	DryRun bool
}

// TodoApp bundles the pieces one invocation works with.
type TodoApp struct {
	Config  *config.Config
	Logger  *log.Logger
	Manager *task.Manager
}

// NewTodoApp wires a Manager for cfg.ListName. The list is not loaded.
func NewTodoApp(cfg *config.Config, logger *log.Logger, opts Options) (*TodoApp, error) {
	fileStore, err := file.NewFileStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	var store storage.Storage = fileStore
	if opts.DryRun {
		logger.Info("dry run: changes will not be written", "file", cfg.ListName)
		store = memory.NewOverlay(fileStore)
	}

	return &TodoApp{
		Config: cfg,
		Logger: logger,
		Manager: task.NewManager(store, cfg.ListName,
			task.WithLogger(logger),
			task.WithColor(cfg.Color),
		),
	}, nil
}
