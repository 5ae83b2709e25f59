package analytics

import (
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const (
	ReportTitle     = "Financial Analytics Report"
	ReportSubtitle  = "Commissions, Training, Sales & Cost Analysis"
	ReportVersion   = "2.0.0"
	DefaultCurrency = "INR"
)

type ReportOptions struct {
	ReportID        string
	GeneratedAt     time.Time
	Currency        string
	Recommendations RecommendationSettings
}

// BuildReport runs every analysis stage over one snapshot and assembles the report.
// It performs no I/O and does not modify the snapshot.
func BuildReport(snap domain.Snapshot, opts ReportOptions) domain.Report {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.Recommendations == (RecommendationSettings{}) {
		opts.Recommendations = DefaultRecommendationSettings()
		opts.Recommendations.Currency = opts.Currency
	}
	if opts.Recommendations.Currency == "" {
		opts.Recommendations.Currency = opts.Currency
	}

	commissions := ExtractCommissionData(snap.Commissions, snap.Users)
	training := ExtractTrainingData(snap.Trainings)
	sales := ExtractSalesData(snap.Sales)
	costs := CalculateCostAnalysis(training, snap.Users)

	ratios := CalculateFinancialRatios(RatioInputs{
		Commissions:   commissions,
		Training:      training,
		Sales:         sales,
		Costs:         costs,
		EmployeeCount: snap.Users.Len(),
	})

	return domain.Report{
		Metadata: domain.ReportMetadata{
			ReportID:     opts.ReportID,
			Title:        ReportTitle,
			Subtitle:     ReportSubtitle,
			GeneratedAt:  opts.GeneratedAt.UTC(),
			Version:      ReportVersion,
			Currency:     opts.Currency,
			DataWarnings: snap.Diagnostics,
		},
		ExecutiveSummary: domain.ExecutiveSummary{
			TotalRevenue:     ratios.Revenue.Total,
			TotalCosts:       ratios.Costs.Total,
			NetProfit:        ratios.Profitability.NetProfit,
			ProfitMargin:     ratios.Profitability.ProfitMargin,
			TotalCommissions: commissions.TotalCommissions,
			TotalSales:       sales.TotalSales,
			TrainingRevenue:  training.ActualCollections,
			TotalEmployees:   snap.Users.Len(),
			TotalPrograms:    training.TotalPrograms,
			TotalSalesOrders: sales.TotalOrders,
		},
		DetailedAnalysis: domain.DetailedAnalysis{
			Commissions: commissions,
			Training:    training,
			Sales:       sales,
			Costs:       costs,
		},
		FinancialRatios: ratios,
		Recommendations: GenerateRecommendations(ratios, opts.Recommendations),
		ComplianceNotes: ComplianceNotes(),
	}
}
