package export

import (
	"encoding/json"
	"io"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

type JSONExporter struct{}

func (JSONExporter) Format() Format      { return FormatJSON }
func (JSONExporter) ContentType() string { return "application/json" }
func (JSONExporter) Extension() string   { return "json" }

// Render writes the report with two-space indentation.
func (JSONExporter) Render(w io.Writer, report domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}
