package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportDoc = `{
	"users": {"u2": {"name": "Ravi"}, "u1": {"name": "Asha"}},
	"commissions": {"-Nb2": {"amount": 100}, "-Na1": {"amount": 50}},
	"trainings": 42,
	"products": [null, {"amount": 10}]
}`

func writeExport(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(writeExport(t, exportDoc))

	snap, err := loader.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, snap.Users, 2)
	assert.Equal(t, "u2", snap.Users[0].ID)
	assert.Equal(t, "-Nb2", snap.Commissions[0].ID, "document order, not sorted order")
	assert.Empty(t, snap.Trainings)
	require.Len(t, snap.SalesDetails, 1)
	assert.Equal(t, "1", snap.SalesDetails[0].ID)
	require.Len(t, snap.Diagnostics, 1)
	assert.Contains(t, snap.Diagnostics[0], "trainings")
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "missing.json"))

	_, err := loader.Load(context.Background())

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestFileLoader_NotAnObject(t *testing.T) {
	loader := NewFileLoader(writeExport(t, `[1,2,3]`))

	snap, err := LoadOrEmpty(context.Background(), loader, false)

	require.NoError(t, err)
	assert.Empty(t, snap.Users)
	assert.Len(t, snap.Diagnostics, 1)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	loader, err := Open(ctx, domain.SourceProfile{Name: "local", Type: domain.SourceTypeFile, Path: "export.json"})
	require.NoError(t, err)
	assert.IsType(t, &FileLoader{}, loader)

	_, err = Open(ctx, domain.SourceProfile{Name: "local", Type: domain.SourceTypeFile})
	assert.Error(t, err)

	_, err = Open(ctx, domain.SourceProfile{Name: "remote", Type: domain.SourceTypeFirebase})
	assert.Error(t, err)

	_, err = Open(ctx, domain.SourceProfile{Name: "other", Type: "mongo"})
	assert.EqualError(t, err, `profile other: unsupported source type "mongo"`)
}
