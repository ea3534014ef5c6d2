package task

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tiwariParth/todo-json/internal/models"
)

// EmptyNotice is printed by Display when the list has no items.
const EmptyNotice = "Your TODO list is empty!"

var statusColors = map[models.Status]color.Attribute{
	models.Incomplete: color.FgRed,
	models.InProgress: color.FgYellow,
	models.Complete:   color.FgGreen,
}

// Display writes one line per item to w, or EmptyNotice if there are none.
func (m *Manager) Display(w io.Writer) error {
	if len(m.items) == 0 {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}

	for _, item := range m.items {
		_, err := fmt.Fprintf(w, "ID: %d, Category: %s, Description: %s, Status: %s\n",
			item.ID, item.Category, item.Description, m.statusLabel(item.Status))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) statusLabel(s models.Status) string {
	attr, ok := statusColors[s]
	if !m.color || !ok {
		return s.String()
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s.String())
}
