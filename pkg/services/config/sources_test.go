package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, content string) Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".atlascfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)
	return registry
}

func TestRegistry_GetProfiles(t *testing.T) {
	// Given
	registry := newTestRegistry(t, `
[default]
path = ./export.json

[prod]
type = Firebase
database_url = https://atlas.firebaseio.com
credentials = /etc/atlas/sa.json
root = tenants/acme

[empty]

[archive]
type = duckdb
path = atlas.db
`)

	// When
	profiles, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, []domain.SourceProfile{
		{Name: "default", Type: domain.SourceTypeFile, Path: "./export.json"},
		{
			Name:        "prod",
			Type:        domain.SourceTypeFirebase,
			DatabaseURL: "https://atlas.firebaseio.com",
			Credentials: "/etc/atlas/sa.json",
			Root:        "tenants/acme",
		},
		{Name: "archive", Type: domain.SourceTypeDuckDB, Path: "atlas.db"},
	}, profiles)
}

func TestRegistry_GetProfile(t *testing.T) {
	registry := newTestRegistry(t, `
[default]
type = file
path = a.json

[broken]
type = firebase

[weird]
type = mongo
path = x
`)
	ctx := context.Background()

	profile, err := registry.GetProfile(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "a.json", profile.Path)

	_, err = registry.GetProfile(ctx, "missing")
	assert.EqualError(t, err, "profile missing not found")

	_, err = registry.GetProfile(ctx, "broken")
	assert.EqualError(t, err, "profile broken: database_url is required for firebase sources")

	_, err = registry.GetProfile(ctx, "weird")
	assert.EqualError(t, err, `profile weird: unsupported source type "mongo"`)

	_, err = registry.GetProfiles(ctx)
	assert.Error(t, err)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "none"))
	assert.Error(t, err)
}
