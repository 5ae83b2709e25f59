package analytics

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	MonthsPerYear = 12

	// PercentPlaces applies to every percentage except the training collection rate.
	PercentPlaces        int32 = 2
	CollectionRatePlaces int32 = 4
	TopListSize                = 5

	InfrastructureCost = 200000
	MarketingCost      = 150000
	UtilitiesCost      = 120000
	MiscellaneousCost  = 100000
)

// RoleSalary is the average monthly salary per head for a role.
type RoleSalary struct {
	Role          string
	MonthlySalary float64
}

// RoleSalaries is ordered; "user" also absorbs every unrecognized role.
var RoleSalaries = []RoleSalary{
	{Role: "admin", MonthlySalary: 60000},
	{Role: "subadmin", MonthlySalary: 45000},
	{Role: "agency", MonthlySalary: 35000},
	{Role: "user", MonthlySalary: 25000},
}

const fallbackRole = "user"

// SalaryTier maps a minimum program count to an estimated annual trainer salary.
type SalaryTier struct {
	MinPrograms  int
	AnnualSalary float64
}

// TrainerSalaryTiers is evaluated top to bottom; the first satisfied tier wins.
var TrainerSalaryTiers = []SalaryTier{
	{MinPrograms: 5, AnnualSalary: 600000},
	{MinPrograms: 3, AnnualSalary: 450000},
	{MinPrograms: 0, AnnualSalary: 300000},
}

func NewOperationalCosts() domain.OperationalCosts {
	c := domain.OperationalCosts{
		Infrastructure: InfrastructureCost,
		Marketing:      MarketingCost,
		Utilities:      UtilitiesCost,
		Miscellaneous:  MiscellaneousCost,
	}
	c.Total = c.Infrastructure + c.Marketing + c.Utilities + c.Miscellaneous
	return c
}

// SafeDivide returns numerator/denominator, or 0 when the denominator is 0.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// SafePercent is SafeDivide scaled to a percentage.
func SafePercent(numerator, denominator float64) float64 {
	return SafeDivide(numerator, denominator) * 100
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
