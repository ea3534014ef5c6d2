package task

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/todo-json/internal/models"
	"github.com/tiwariParth/todo-json/internal/storage"
)

// Errors returned by Manager operations for bad input and unknown IDs.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
)

// Manager owns one TODO list bound to one file path. It is not safe for
// concurrent use; the process is expected to be the only writer.
type Manager struct {
	path  string
	items []models.Item
	store storage.Storage
	log   *log.Logger
	color bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithColor enables or disables colored status output in Display.
func WithColor(enabled bool) Option {
	return func(m *Manager) {
		m.color = enabled
	}
}

// NewManager binds a manager to path. The list starts empty until Load.
func NewManager(store storage.Storage, path string, opts ...Option) *Manager {
	m := &Manager{
		path:  path,
		items: []models.Item{},
		store: store,
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns the file the manager is bound to.
func (m *Manager) Path() string {
	return m.path
}

// Items returns a copy of the current list.
func (m *Manager) Items() []models.Item {
	out := make([]models.Item, len(m.items))
	copy(out, m.items)
	return out
}

// Load replaces the in-memory list with the contents of the bound file.
// On failure the list is left empty.
func (m *Manager) Load(ctx context.Context) error {
	items, err := m.store.Load(ctx, m.path)
	if err != nil {
		m.items = []models.Item{}
		return err
	}

	m.items = items
	m.log.Debug("loaded list", "path", m.path, "items", len(items))
	for i, item := range items {
		if item.ID != i+1 {
			m.log.Warn("item IDs are not contiguous", "path", m.path, "position", i+1, "id", item.ID)
			break
		}
	}
	return nil
}

// Save writes the full list to the bound file.
func (m *Manager) Save(ctx context.Context) error {
	return m.commit(ctx, m.items)
}

// commit saves items and only then makes them the current list, so a failed
// save leaves the previous list in place.
func (m *Manager) commit(ctx context.Context, items []models.Item) error {
	if err := m.store.Save(ctx, m.path, items); err != nil {
		return err
	}
	m.items = items
	m.log.Debug("saved list", "path", m.path, "items", len(items))
	return nil
}

// Add appends a new incomplete item and saves the list.
func (m *Manager) Add(ctx context.Context, category, description string) (models.Item, error) {
	if category == "" || description == "" {
		return models.Item{}, fmt.Errorf("%w: you need both a category and description to add an item", ErrValidation)
	}

	item := models.NewItem(len(m.items)+1, category, description)
	if err := m.commit(ctx, append(m.Items(), item)); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// UpdateFields holds the fields to overwrite in Update. Empty fields are
// left unchanged.
type UpdateFields struct {
	Category    string
	Description string
	Status      string
}

// Update overwrites the provided fields of the item with the given ID and
// saves the list.
func (m *Manager) Update(ctx context.Context, id int, fields UpdateFields) (models.Item, error) {
	var status models.Status
	if fields.Status != "" {
		s, err := models.ParseStatus(fields.Status)
		if err != nil {
			return models.Item{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		status = s
	}

	i := m.indexOf(id)
	if i < 0 {
		return models.Item{}, fmt.Errorf("TODO item with ID %d %w", id, ErrNotFound)
	}

	next := m.Items()
	item := &next[i]
	if fields.Category != "" {
		item.Category = fields.Category
	}
	if fields.Description != "" {
		item.Description = fields.Description
	}
	if status != "" {
		item.Status = status
	}

	if err := m.commit(ctx, next); err != nil {
		return models.Item{}, err
	}
	return *item, nil
}

// Delete removes the item with the given ID, renumbers the remaining items
// by position and saves the list. IDs held by callers before the call are
// no longer valid afterwards.
func (m *Manager) Delete(ctx context.Context, id int) (models.Item, error) {
	i := m.indexOf(id)
	if i < 0 {
		return models.Item{}, fmt.Errorf("TODO item with ID %d %w", id, ErrNotFound)
	}

	removed := m.items[i]
	next := make([]models.Item, 0, len(m.items)-1)
	next = append(next, m.items[:i]...)
	next = append(next, m.items[i+1:]...)
	for j := range next {
		next[j].ID = j + 1
	}

	if err := m.commit(ctx, next); err != nil {
		return models.Item{}, err
	}
	return removed, nil
}

// ChangeList rebinds the manager to path and loads it, discarding the
// current list.
func (m *Manager) ChangeList(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: you need to provide a filename to switch to a new list", ErrValidation)
	}

	m.path = path
	return m.Load(ctx)
}

func (m *Manager) indexOf(id int) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}
