package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/sink"
	"github.com/rs/zerolog"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

const baseNamePrefix = "financial-report-"

// Exporter renders a report into one output format. Exporters only format; they never
// recompute figures.
type Exporter interface {
	Format() Format
	ContentType() string
	Extension() string
	Render(w io.Writer, report domain.Report) error
}

type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ExportResult is the outcome for one format. Err is an *ExportError when set.
type ExportResult struct {
	Format   Format
	Location string
	Err      error
}

// Registry keeps exporters in registration order.
type Registry interface {
	Register(exporter Exporter) error
	Get(format Format) (Exporter, error)
	Formats() []Format
	// ExportAll renders and stores every requested format, or every registered one when
	// none is given. A failing format never stops the others.
	ExportAll(ctx context.Context, report domain.Report, out sink.Sink, baseName string, formats ...Format) []ExportResult
}

type registry struct {
	mu        sync.RWMutex
	formats   []Format
	exporters map[Format]Exporter
}

func NewRegistry(exporters ...Exporter) (Registry, error) {
	r := &registry{exporters: make(map[Format]Exporter)}
	for _, e := range exporters {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry holds the JSON, CSV and HTML exporters.
func DefaultRegistry() Registry {
	return &registry{
		formats: []Format{FormatJSON, FormatCSV, FormatHTML},
		exporters: map[Format]Exporter{
			FormatJSON: JSONExporter{},
			FormatCSV:  CSVExporter{},
			FormatHTML: NewHTMLExporter(),
		},
	}
}

func (r *registry) Register(exporter Exporter) error {
	if exporter == nil {
		return fmt.Errorf("exporter cannot be nil")
	}
	format := exporter.Format()
	if format == "" {
		return fmt.Errorf("exporter format cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exporters[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}
	r.exporters[format] = exporter
	r.formats = append(r.formats, format)
	return nil
}

func (r *registry) Get(format Format) (Exporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exporters[format]
	if !ok {
		return nil, fmt.Errorf("format %q is not registered", format)
	}
	return e, nil
}

func (r *registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, len(r.formats))
	copy(out, r.formats)
	return out
}

func (r *registry) ExportAll(
	ctx context.Context,
	report domain.Report,
	out sink.Sink,
	baseName string,
	formats ...Format,
) []ExportResult {
	logger := zerolog.Ctx(ctx)
	if len(formats) == 0 {
		formats = r.Formats()
	}

	results := make([]ExportResult, 0, len(formats))
	for _, format := range formats {
		location, err := r.export(ctx, report, out, baseName, format)
		if err != nil {
			err = &ExportError{Format: format, Err: err}
			logger.Error().Err(err).Str("format", string(format)).Msg("export failed")
		} else {
			logger.Info().Str("format", string(format)).Str("location", location).Msg("report exported")
		}
		results = append(results, ExportResult{Format: format, Location: location, Err: err})
	}
	return results
}

func (r *registry) export(ctx context.Context, report domain.Report, out sink.Sink, baseName string, format Format) (string, error) {
	exporter, err := r.Get(format)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := exporter.Render(&buf, report); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	name := baseName + "." + exporter.Extension()
	location, err := out.Write(ctx, name, exporter.ContentType(), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return location, nil
}

// BaseName is the file name stem for a report generated at t.
func BaseName(t time.Time) string {
	return baseNamePrefix + t.UTC().Format("20060102-150405")
}

// ParseFormats reads a comma separated list such as "json,csv". "all" or an empty value
// selects every default format. Duplicates are dropped.
func ParseFormats(value string) ([]Format, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return []Format{FormatJSON, FormatCSV, FormatHTML}, nil
	}

	var formats []Format
	seen := make(map[Format]bool)
	for _, part := range strings.Split(value, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(part)))
		switch f {
		case FormatJSON, FormatCSV, FormatHTML:
		default:
			return nil, fmt.Errorf("unsupported format %q", part)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}
