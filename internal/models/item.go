package models

import (
	"errors"
	"fmt"
	"strings"
)

// Status represents the progress state of a TODO item
type Status string

const (
	Incomplete Status = "incomplete"
	InProgress Status = "in progress"
	Complete   Status = "complete"
)

// Statuses lists every valid status in the order they are offered to users.
var Statuses = []Status{Incomplete, InProgress, Complete}

// ErrMissingField is returned when a record lacks one of its required keys.
var ErrMissingField = errors.New("missing required field")

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// StatusNames returns the valid statuses as plain strings.
func StatusNames() []string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return names
}

// ParseStatus converts user input into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q, must be one of: %s", s, strings.Join(StatusNames(), ", "))
	}
	return status, nil
}

// Item is a single entry in a TODO list. IDs are positional: the item at
// index i of its list always has ID i+1.
type Item struct {
	ID          int
	Category    string
	Description string
	Status      Status
}

// NewItem creates an item with the default status.
func NewItem(id int, category, description string) Item {
	return Item{
		ID:          id,
		Category:    category,
		Description: description,
		Status:      Incomplete,
	}
}

// Record is the serialized form of an Item. Fields are pointers so that an
// absent key can be told apart from a zero value.
type Record struct {
	ID          *int    `json:"id"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// FieldError reports a problem with one field of a record.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// ToRecord converts the item into its on-disk representation.
func (i Item) ToRecord() Record {
	id := i.ID
	category := i.Category
	description := i.Description
	status := string(i.Status)
	return Record{
		ID:          &id,
		Category:    &category,
		Description: &description,
		Status:      &status,
	}
}

// FromRecord builds an item from a record. Every key must be present.
func FromRecord(r Record) (Item, error) {
	switch {
	case r.ID == nil:
		return Item{}, &FieldError{Field: "id", Err: ErrMissingField}
	case r.Category == nil:
		return Item{}, &FieldError{Field: "category", Err: ErrMissingField}
	case r.Description == nil:
		return Item{}, &FieldError{Field: "description", Err: ErrMissingField}
	case r.Status == nil:
		return Item{}, &FieldError{Field: "status", Err: ErrMissingField}
	}

	return Item{
		ID:          *r.ID,
		Category:    *r.Category,
		Description: *r.Description,
		Status:      Status(*r.Status),
	}, nil
}
