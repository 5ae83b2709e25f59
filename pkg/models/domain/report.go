package domain

import "time"

type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
)

type Recommendation struct {
	Priority   Priority `json:"priority"`
	Category   string   `json:"category"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Impact     string   `json:"impact"`
}

// Report is the complete output of one generation run
type Report struct {
	Metadata         ReportMetadata   `json:"metadata"`
	ExecutiveSummary ExecutiveSummary `json:"executiveSummary"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
	FinancialRatios  FinancialRatios  `json:"financialRatios"`
	Recommendations  []Recommendation `json:"recommendations"`
	ComplianceNotes  ComplianceNotes  `json:"complianceNotes"`
}

type ReportMetadata struct {
	ReportID     string    `json:"reportId"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Version      string    `json:"version"`
	Currency     string    `json:"currency"`
	DataWarnings []string  `json:"dataWarnings,omitempty"`
}

type ExecutiveSummary struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCosts       float64 `json:"totalCosts"`
	NetProfit        float64 `json:"netProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	TotalCommissions float64 `json:"totalCommissions"`
	TotalSales       float64 `json:"totalSales"`
	TrainingRevenue  float64 `json:"trainingRevenue"`
	TotalEmployees   int     `json:"totalEmployees"`
	TotalPrograms    int     `json:"totalPrograms"`
	TotalSalesOrders int     `json:"totalSalesOrders"`
}

type DetailedAnalysis struct {
	Commissions CommissionAnalysis `json:"commissions"`
	Training    TrainingAnalysis   `json:"training"`
	Sales       SalesAnalysis      `json:"sales"`
	Costs       CostAnalysis       `json:"costs"`
}

type ComplianceNotes struct {
	TaxCompliance []string `json:"taxCompliance"`
	AuditTrail    []string `json:"auditTrail"`
	DataPrivacy   []string `json:"dataPrivacy"`
}
