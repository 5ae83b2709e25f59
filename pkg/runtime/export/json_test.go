package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExporter_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Render(&buf, sampleReport()))
	out := buf.String()

	t.Run("two-space indentation", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "{\n  \"metadata\": {\n    \"reportId\": \"r-42\""))
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Contains(t, out, `"generatedAt": "2024-03-31T13:00:05Z"`)
		assert.Contains(t, out, `"subtitle": "Commissions, Training, Sales & Cost Analysis"`)
		assert.NotContains(t, out, `"dataWarnings"`)
	})

	t.Run("mappings keep insertion order", func(t *testing.T) {
		assert.Less(t, strings.Index(out, `"u2": {`), strings.Index(out, `"u1": {`))
		admin := strings.Index(out, `"admin": {`)
		user := strings.Index(out, `"user": {`)
		require.NotEqual(t, -1, admin)
		assert.Less(t, admin, user)
	})

	t.Run("valid document", func(t *testing.T) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Len(t, doc, 6)
	})
}
