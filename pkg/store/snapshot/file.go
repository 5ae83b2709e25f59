package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// FileLoader reads a database export: a JSON object whose top-level keys are collection names.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(ctx context.Context) (store.Snapshot, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return store.Snapshot{}, &LoadError{Err: fmt.Errorf("read %s: %w", l.path, err)}
	}
	return DecodeExport(ctx, data)
}

// DecodeExport splits an export document into collections. Only a document that is not a
// JSON object fails as a whole; a malformed collection degrades on its own.
func DecodeExport(ctx context.Context, data []byte) (store.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return store.Snapshot{}, &LoadError{Err: fmt.Errorf("decode export: %w", err)}
	}

	return readCollections(ctx, func(_ context.Context, name string) (store.Collection, error) {
		raw, ok := doc[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, nil
		}
		var c store.Collection
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		if c == nil {
			c = store.Collection{}
		}
		return c, nil
	}), nil
}
