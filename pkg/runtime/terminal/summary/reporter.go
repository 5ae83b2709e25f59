package summary

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        30,
		ValueWidth:       20,
		UnitWidth:        12,
		DescriptionWidth: 48,
	}
}

// Reporter prints a report as fixed-width tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type row struct {
	Name        string
	Value       string
	Unit        string
	Description string
}

type section struct {
	Title string
	Rows  []row
}

type view struct {
	Metadata        domain.ReportMetadata
	Sections        []section
	Recommendations []domain.Recommendation
}

const summaryTemplate = `
{{.Metadata.Title}}
{{.Metadata.Subtitle}}
Report: {{.Metadata.ReportID}}  Generated: {{.Metadata.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}  Version: {{.Metadata.Version}}
{{range .Metadata.DataWarnings}}WARNING: {{.}}
{{end}}
{{range .Sections}}
=== {{.Title}} ===
{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Rows}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}
=== Recommendations ===
{{range .Recommendations}}[{{.Priority}}] {{.Category}}: {{.Issue}}
    {{.Suggestion}}
    Impact: {{.Impact}}
{{else}}No issues detected.
{{end}}`

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, value, unit, desc string) string {
			return fmt.Sprintf("| %-*s | %*s | %-*s | %-*s |",
				c.config.NameWidth, truncate(name, c.config.NameWidth),
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.DescriptionWidth, truncate(desc, c.config.DescriptionWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	t, err := template.New("summary").Funcs(funcMap).Parse(summaryTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, newView(report))
}

func newView(report *domain.Report) view {
	cur := report.Metadata.Currency
	es := report.ExecutiveSummary
	ratios := report.FinancialRatios

	sections := []section{
		{
			Title: "Executive Summary",
			Rows: []row{
				{"Total Revenue", money(es.TotalRevenue), cur, "Sales plus training collections"},
				{"Total Costs", money(es.TotalCosts), cur, "Operating costs plus commissions"},
				{"Net Profit", money(es.NetProfit), cur, "Revenue minus costs"},
				{"Profit Margin", money(es.ProfitMargin), "%", "Net profit over revenue"},
				{"Total Commissions", money(es.TotalCommissions), cur, "Commissioned order value"},
				{"Total Sales", money(es.TotalSales), cur, fmt.Sprintf("%d orders", es.TotalSalesOrders)},
				{"Training Revenue", money(es.TrainingRevenue), cur, fmt.Sprintf("%d programs", es.TotalPrograms)},
				{"Employees", fmt.Sprintf("%d", es.TotalEmployees), "people", "Registered users"},
			},
		},
		{
			Title: "Efficiency",
			Rows: []row{
				{"Commission to Revenue", money(ratios.Efficiency.CommissionToRevenueRatio), "%", ""},
				{"Training Collection Rate", money(ratios.Efficiency.TrainingCollectionRate), "%", "Collected over potential"},
				{"Cost Recovery", money(ratios.Efficiency.CostRecoveryRatio), "%", "Revenue over costs"},
				{"Revenue per Employee", money(ratios.Efficiency.RevenuePerEmployee), cur, ""},
				{"Average Order Value", money(ratios.Efficiency.AverageOrderValue), cur, ""},
				{"Break-even Revenue", money(ratios.Profitability.BreakEvenRevenue), cur, ""},
				{"Revenue Deficit", money(ratios.Profitability.RevenueDeficit), cur, ""},
			},
		},
	}

	if len(report.DetailedAnalysis.Sales.TopSellers) > 0 {
		s := section{Title: "Top Sellers"}
		for _, seller := range report.DetailedAnalysis.Sales.TopSellers {
			s.Rows = append(s.Rows, row{
				Name:        seller.SellerID,
				Value:       money(seller.TotalSales),
				Unit:        cur,
				Description: fmt.Sprintf("%d orders", seller.OrderCount),
			})
		}
		sections = append(sections, s)
	}

	return view{
		Metadata:        report.Metadata,
		Sections:        sections,
		Recommendations: report.Recommendations,
	}
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "~"
}
