package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

var csvHeader = []string{"Section", "Category", "Metric", "Value", "Unit"}

const (
	sectionExecutive   = "Executive Summary"
	sectionCommissions = "User Commissions"
	sectionTraining    = "Training Overview"
	sectionCosts       = "Cost Analysis"

	unitPercent = "%"
)

type CSVExporter struct{}

func (CSVExporter) Format() Format      { return FormatCSV }
func (CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }
func (CSVExporter) Extension() string   { return "csv" }

func (CSVExporter) Render(w io.Writer, report domain.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(Rows(report)); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// Rows returns the data rows without the header: six executive rows, three rows per
// commission user in summary order, six training rows and four cost rows.
func Rows(report domain.Report) [][]string {
	currency := report.Metadata.Currency
	es := report.ExecutiveSummary
	commissions := report.DetailedAnalysis.Commissions
	training := report.DetailedAnalysis.Training
	costs := report.DetailedAnalysis.Costs

	money := func(section, category, metric string, v float64) []string {
		return []string{section, category, metric, fmt.Sprintf("%.2f", v), currency}
	}
	count := func(section, category, metric string, v int, unit string) []string {
		return []string{section, category, metric, fmt.Sprintf("%d", v), unit}
	}
	percent := func(section, category, metric string, v float64) []string {
		return []string{section, category, metric, fmt.Sprintf("%.2f", v), unitPercent}
	}

	rows := make([][]string, 0, 16+3*commissions.UserSummary.Len())
	rows = append(rows,
		money(sectionExecutive, "Revenue", "Total Revenue", es.TotalRevenue),
		money(sectionExecutive, "Costs", "Total Costs", es.TotalCosts),
		money(sectionExecutive, "Profitability", "Net Profit", es.NetProfit),
		percent(sectionExecutive, "Profitability", "Profit Margin", es.ProfitMargin),
		money(sectionExecutive, "Commissions", "Total Commissions", es.TotalCommissions),
		money(sectionExecutive, "Sales", "Total Sales", es.TotalSales),
	)

	for _, u := range commissions.UserSummary.Values() {
		rows = append(rows,
			money(sectionCommissions, u.Name, "Total Earned", u.TotalEarned),
			count(sectionCommissions, u.Name, "Order Count", u.OrderCount, "orders"),
			percent(sectionCommissions, u.Name, "Commission Rate", u.CommissionRate),
		)
	}

	rows = append(rows,
		count(sectionTraining, "Programs", "Total Programs", training.TotalPrograms, "programs"),
		count(sectionTraining, "Programs", "Active Programs", training.ActivePrograms, "programs"),
		count(sectionTraining, "Programs", "Completed Programs", training.CompletedPrograms, "programs"),
		count(sectionTraining, "Programs", "Pending Programs", training.PendingPrograms, "programs"),
		count(sectionTraining, "Participants", "Total Participants", training.TotalParticipants, "participants"),
		money(sectionTraining, "Revenue", "Actual Collections", training.ActualCollections),
	)

	rows = append(rows,
		money(sectionCosts, "Employees", "Annual Employee Costs", costs.EmployeeCosts.AnnualTotal),
		money(sectionCosts, "Trainers", "Annual Trainer Costs", costs.TrainerCosts.AnnualTotal),
		money(sectionCosts, "Operations", "Operational Costs", costs.OperationalCosts.Total),
		money(sectionCosts, "Total", "Grand Total", costs.TotalCosts.GrandTotal),
	)

	return rows
}
