package file

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tiwariParth/todo-json/internal/models"
	"github.com/tiwariParth/todo-json/internal/storage"
)

//go:embed todo.schema.json
var schemaSource string

const schemaURL = "todo.schema.json"

// FileStore implements storage.Storage on top of whole-file JSON documents.
// Every Load reads the full file and every Save rewrites it; no handle is
// kept open between calls.
type FileStore struct {
	schema *jsonschema.Schema
	perm   os.FileMode
}

// NewFileStore creates a FileStore with the embedded list schema compiled.
func NewFileStore() (*FileStore, error) {
	schema, err := jsonschema.CompileString(schemaURL, schemaSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile list schema: %w", err)
	}

	return &FileStore{
		schema: schema,
		perm:   0644,
	}, nil
}

// Load reads the list stored at path. A missing file is an empty list.
func (f *FileStore) Load(ctx context.Context, path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Item{}, nil
		}
		return nil, fmt.Errorf("%w: %w", storage.ErrLoad, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrCorrupt, path, err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrLoad, path, err)
	}

	items := make([]models.Item, 0, len(records))
	for i, rec := range records {
		item, err := models.FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: record %d: %w", storage.ErrLoad, path, i, err)
		}
		items = append(items, item)
	}

	if err := f.validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrLoad, path, err)
	}

	return items, nil
}

// Save overwrites the file at path with items, pretty-printed.
func (f *FileStore) Save(ctx context.Context, path string, items []models.Item) error {
	records := make([]models.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item.ToRecord())
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSave, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, f.perm); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", storage.ErrWriteDenied, path)
		}
		return fmt.Errorf("%w: %w", storage.ErrSave, err)
	}

	return nil
}

func (f *FileStore) validate(doc any) error {
	err := f.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		if path := jsonPointerToPath(err.InstanceLocation); path != "" {
			*msgs = append(*msgs, path+": "+err.Message)
		} else {
			*msgs = append(*msgs, err.Message)
		}
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

// jsonPointerToPath turns "/1/status" into "[1].status".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
