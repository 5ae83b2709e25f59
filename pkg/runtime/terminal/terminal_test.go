package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `{
	"users": {"u1": {"name": "Asha", "role": "agency"}},
	"commissions": {"c1": {"amount": 1000, "commissions": {"u1": {"amount": 200, "rate": 20}}}},
	"trainings": {"t1": {"title": "Closing", "trainerName": "Ravi", "fees": 100, "joinedCount": 3, "status": "active"}},
	"salesDetails": {"s1": {"amount": 2500, "sellerId": "u1", "productId": "p1", "date": "2024-03-02"}}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cli := NewCLI(Options{Output: &out, LogOutput: &logs})
	cli.SetArgs(args)
	err := cli.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_ReportGenerate(t *testing.T) {
	// Given
	dir := t.TempDir()
	snapshotPath := writeFile(t, dir, "export.json", export)
	outDir := filepath.Join(dir, "reports")

	// When
	out, err := run(t, "report", "generate", "--snapshot", snapshotPath, "--out", outDir, "--format", "json,csv")

	// Then
	require.NoError(t, err)
	assert.Contains(t, out, "json  written ")
	assert.Contains(t, out, "csv   written ")

	jsonFiles, _ := filepath.Glob(filepath.Join(outDir, "financial-report-*.json"))
	csvFiles, _ := filepath.Glob(filepath.Join(outDir, "financial-report-*.csv"))
	htmlFiles, _ := filepath.Glob(filepath.Join(outDir, "financial-report-*.html"))
	assert.Len(t, jsonFiles, 1)
	assert.Len(t, csvFiles, 1)
	assert.Empty(t, htmlFiles)

	data, err := os.ReadFile(jsonFiles[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalSales": 2500`)
}

func TestCLI_ReportGenerate_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	snapshotPath := writeFile(t, dir, "export.json", export)

	_, err := run(t, "report", "generate", "--snapshot", snapshotPath, "--out", dir, "--format", "pdf")

	assert.EqualError(t, err, `unsupported format "pdf"`)
}

func TestCLI_ReportSummary(t *testing.T) {
	dir := t.TempDir()
	snapshotPath := writeFile(t, dir, "export.json", export)

	out, err := run(t, "report", "summary", "--snapshot", snapshotPath)

	require.NoError(t, err)
	assert.Contains(t, out, "=== Executive Summary ===")
	assert.Contains(t, out, "2500.00")
}

func TestCLI_ReportSummary_StrictFailsOnMissingSource(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "report", "summary", "--snapshot", filepath.Join(dir, "missing.json"), "--strict")

	assert.ErrorContains(t, err, "load snapshot")
}

func TestCLI_SourcesList(t *testing.T) {
	dir := t.TempDir()
	profilesFile := writeFile(t, dir, ".atlascfg", `
[default]
type = file
path = export.json

[prod]
type = firebase
database_url = https://atlas.firebaseio.com
root = tenants/acme
`)

	out, err := run(t, "sources", "list", "--profiles-file", profilesFile)

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `default\s+file\s+export\.json`, out)
	assert.Regexp(t, `prod\s+firebase\s+https://atlas\.firebaseio\.com/tenants/acme`, out)
}

func TestCLI_SnapshotImportThenReportFromDuckDB(t *testing.T) {
	// Given
	dir := t.TempDir()
	snapshotPath := writeFile(t, dir, "export.json", export)
	dbPath := filepath.Join(dir, "atlas.db")
	profilesFile := writeFile(t, dir, ".atlascfg", "[archive]\ntype = duckdb\npath = "+dbPath+"\n")

	// When
	out, err := run(t, "snapshot", "import", "--snapshot", snapshotPath, "--db", dbPath)

	// Then
	require.NoError(t, err)
	assert.Regexp(t, `salesDetails\s+1`, out)

	out, err = run(t, "report", "summary", "--profiles-file", profilesFile, "--profile", "archive")
	require.NoError(t, err)
	assert.Contains(t, out, "2500.00")
}

func TestCLI_InvalidConfig(t *testing.T) {
	t.Setenv("ATLAS_SERVER_PORT", "0")

	_, err := run(t, "sources", "list")

	assert.ErrorContains(t, err, "Server.Port")
}

func TestCLI_SnapshotImport_KeepsStoredRecordsWhenACollectionIsUnreadable(t *testing.T) {
	// Given
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "atlas.db")
	good := writeFile(t, dir, "export.json", export)
	broken := writeFile(t, dir, "broken.json", `{
	"users": "oops",
	"salesDetails": {"s9": {"amount": 10, "sellerId": "u1"}}
}`)

	_, err := run(t, "snapshot", "import", "--snapshot", good, "--db", dbPath)
	require.NoError(t, err)

	// When
	_, err = run(t, "snapshot", "import", "--snapshot", broken, "--db", dbPath)

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to import")
	assert.Contains(t, err.Error(), "users")

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	require.NoError(t, err)
	defer db.Close()

	var users, sales int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snapshot_records WHERE collection = 'users'`).Scan(&users))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM snapshot_records WHERE collection = 'salesDetails'`).Scan(&sales))
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, sales)
}
