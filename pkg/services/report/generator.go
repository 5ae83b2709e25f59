package report

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/metrics"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/export"
	"github.com/de-tools/sales-atlas/pkg/services/analytics"
	"github.com/de-tools/sales-atlas/pkg/store/sink"
	"github.com/de-tools/sales-atlas/pkg/store/snapshot"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Generator interface {
	// Generate loads one snapshot and builds the report from it.
	Generate(ctx context.Context) (domain.Report, error)
	// Publish writes the report in each format to out. Failures are reported per format.
	Publish(ctx context.Context, report domain.Report, out sink.Sink, formats ...export.Format) []export.ExportResult
}

type Dependencies struct {
	Loader    snapshot.Loader
	Exporters export.Registry
	Metrics   metrics.Recorder
	Clock     func() time.Time
	NewID     func() string
}

type Settings struct {
	Currency        string
	Strict          bool
	Recommendations analytics.RecommendationSettings
}

type DefaultGenerator struct {
	deps     Dependencies
	settings Settings
}

func NewGenerator(deps Dependencies, settings Settings) *DefaultGenerator {
	if deps.Exporters == nil {
		deps.Exporters = export.DefaultRegistry()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	return &DefaultGenerator{deps: deps, settings: settings}
}

func (g *DefaultGenerator) Generate(ctx context.Context) (domain.Report, error) {
	logger := zerolog.Ctx(ctx)
	started := g.deps.Clock()

	raw, err := snapshot.LoadOrEmpty(ctx, g.deps.Loader, g.settings.Strict)
	if err != nil {
		g.deps.Metrics.ReportFailed()
		return domain.Report{}, fmt.Errorf("failed to generate report: %w", err)
	}

	snap := adapters.MapStoreSnapshotToDomain(ctx, raw)
	report := analytics.BuildReport(snap, analytics.ReportOptions{
		ReportID:        g.deps.NewID(),
		GeneratedAt:     started.UTC(),
		Currency:        g.settings.Currency,
		Recommendations: g.settings.Recommendations,
	})

	elapsed := g.deps.Clock().Sub(started)
	g.deps.Metrics.ReportGenerated(elapsed, len(report.Metadata.DataWarnings))

	summary := report.ExecutiveSummary
	logger.Info().
		Str("report_id", report.Metadata.ReportID).
		Float64("total_revenue", summary.TotalRevenue).
		Float64("total_costs", summary.TotalCosts).
		Float64("net_profit", summary.NetProfit).
		Int("warnings", len(report.Metadata.DataWarnings)).
		Dur("elapsed", elapsed).
		Msg("report generated")

	return report, nil
}

func (g *DefaultGenerator) Publish(
	ctx context.Context,
	report domain.Report,
	out sink.Sink,
	formats ...export.Format,
) []export.ExportResult {
	baseName := export.BaseName(report.Metadata.GeneratedAt)
	results := g.deps.Exporters.ExportAll(ctx, report, out, baseName, formats...)
	for _, r := range results {
		g.deps.Metrics.ExportCompleted(string(r.Format), r.Err)
	}
	return results
}
