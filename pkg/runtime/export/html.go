package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

type HTMLExporter struct {
	tmpl *template.Template
}

// NewHTMLExporter panics if the embedded template does not parse.
func NewHTMLExporter() *HTMLExporter {
	funcMap := template.FuncMap{
		"money": formatMoney,
		"pct":   formatPercent,
		"rate":  formatRate,
		"int":   formatInt,
		"title": titleCase,
	}
	tmpl := template.Must(template.New("report.html.tmpl").Funcs(funcMap).ParseFS(templateFS, "templates/report.html.tmpl"))
	return &HTMLExporter{tmpl: tmpl}
}

func (*HTMLExporter) Format() Format      { return FormatHTML }
func (*HTMLExporter) ContentType() string { return "text/html; charset=utf-8" }
func (*HTMLExporter) Extension() string   { return "html" }

func (e *HTMLExporter) Render(w io.Writer, report domain.Report) error {
	if err := e.tmpl.Execute(w, report); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}
