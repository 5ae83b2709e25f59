package api

import "time"

type Error struct {
	Error string `json:"error"`
}

type Formats struct {
	Formats []string `json:"formats"`
}

// ReportSummary is the lightweight view served by the summary endpoint.
type ReportSummary struct {
	ReportID        string    `json:"reportId"`
	GeneratedAt     time.Time `json:"generatedAt"`
	Currency        string    `json:"currency"`
	TotalRevenue    float64   `json:"totalRevenue"`
	TotalCosts      float64   `json:"totalCosts"`
	NetProfit       float64   `json:"netProfit"`
	ProfitMargin    float64   `json:"profitMargin"`
	Recommendations int       `json:"recommendations"`
	DataWarnings    []string  `json:"dataWarnings,omitempty"`
}
