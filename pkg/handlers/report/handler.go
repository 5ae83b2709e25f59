package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/metrics"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/export"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Generator interface {
	Generate(ctx context.Context) (domain.Report, error)
}

type Handler struct {
	generator Generator
	exporters export.Registry
	metrics   metrics.Recorder
}

func NewHandler(generator Generator, exporters export.Registry, recorder metrics.Recorder) *Handler {
	if exporters == nil {
		exporters = export.DefaultRegistry()
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		generator: generator,
		exporters: exporters,
		metrics:   recorder,
	}
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	var response api.Formats
	for _, f := range h.exporters.Formats() {
		response.Formats = append(response.Formats, string(f))
	}
	writeJSON(r.Context(), w, http.StatusOK, response)
}

// GetReport serves the report as JSON.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, export.FormatJSON)
}

// GetReportAs serves the report in the format named by the {format} path parameter.
func (h *Handler) GetReportAs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, export.Format(chi.URLParam(r, "format")))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.generator.Generate(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to generate report")
		writeJSON(ctx, w, http.StatusServiceUnavailable, api.Error{Error: err.Error()})
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.ReportSummary{
		ReportID:        report.Metadata.ReportID,
		GeneratedAt:     report.Metadata.GeneratedAt,
		Currency:        report.Metadata.Currency,
		TotalRevenue:    report.ExecutiveSummary.TotalRevenue,
		TotalCosts:      report.ExecutiveSummary.TotalCosts,
		NetProfit:       report.ExecutiveSummary.NetProfit,
		ProfitMargin:    report.ExecutiveSummary.ProfitMargin,
		Recommendations: len(report.Recommendations),
		DataWarnings:    report.Metadata.DataWarnings,
	})
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, format export.Format) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	exporter, err := h.exporters.Get(format)
	if err != nil {
		writeJSON(ctx, w, http.StatusNotFound, api.Error{Error: err.Error()})
		return
	}

	report, err := h.generator.Generate(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to generate report")
		writeJSON(ctx, w, http.StatusServiceUnavailable, api.Error{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	err = exporter.Render(&buf, report)
	h.metrics.ExportCompleted(string(format), err)
	if err != nil {
		logger.Error().Err(err).Str("format", string(format)).Msg("failed to render report")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: "failed to render report"})
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	if format != export.FormatJSON {
		filename := export.BaseName(report.Metadata.GeneratedAt) + "." + exporter.Extension()
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
