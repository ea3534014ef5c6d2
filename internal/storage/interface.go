package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/todo-json/internal/models"
)

// Errors returned by storage implementations. Callers classify them with
// errors.Is; the wrapped error carries the path and the underlying cause.
var (
	ErrCorrupt     = errors.New("list file is corrupted")
	ErrLoad        = errors.New("failed to load list")
	ErrWriteDenied = errors.New("no permission to write list")
	ErrSave        = errors.New("failed to save list")
)

// Storage loads and saves a whole TODO list identified by path.
// A path that has never been saved loads as an empty list.
type Storage interface {
	Load(ctx context.Context, path string) ([]models.Item, error)
	Save(ctx context.Context, path string, items []models.Item) error
}
