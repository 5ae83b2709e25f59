package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores one rendered artifact and returns where it ended up.
type Sink interface {
	Write(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// FileSink writes artifacts into a local directory, creating it on first use.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Write(_ context.Context, name, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	p := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	return p, nil
}
