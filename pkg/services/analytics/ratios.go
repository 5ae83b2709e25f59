package analytics

import (
	"math"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// RatioInputs feeds CalculateFinancialRatios. Percentages are scaled by 100; revenue per
// employee and average order value are plain quotients and are not.
type RatioInputs struct {
	Commissions   domain.CommissionAnalysis
	Training      domain.TrainingAnalysis
	Sales         domain.SalesAnalysis
	Costs         domain.CostAnalysis
	EmployeeCount int
}

// CalculateFinancialRatios derives revenue, cost, profitability and efficiency KPIs.
// Commissions are layered on top of the cost model grand total, which never includes them.
func CalculateFinancialRatios(in RatioInputs) domain.FinancialRatios {
	salesRevenue := in.Sales.TotalSales
	trainingRevenue := in.Training.ActualCollections
	totalRevenue := salesRevenue + trainingRevenue

	totalCosts := in.Costs.TotalCosts.GrandTotal + in.Commissions.TotalCommissions
	netProfit := totalRevenue - totalCosts

	return domain.FinancialRatios{
		Revenue: domain.RevenueRatios{
			Total:              totalRevenue,
			FromSales:          salesRevenue,
			FromTraining:       trainingRevenue,
			SalesPercentage:    Round(SafePercent(salesRevenue, totalRevenue), PercentPlaces),
			TrainingPercentage: Round(SafePercent(trainingRevenue, totalRevenue), PercentPlaces),
		},
		Costs: domain.CostRatios{
			Total:       totalCosts,
			Employees:   in.Costs.EmployeeCosts.AnnualTotal,
			Trainers:    in.Costs.TrainerCosts.AnnualTotal,
			Commissions: in.Commissions.TotalCommissions,
			Operational: in.Costs.OperationalCosts.Total,
		},
		Profitability: domain.ProfitabilityRatios{
			NetProfit:        netProfit,
			ProfitMargin:     Round(SafePercent(netProfit, totalRevenue), PercentPlaces),
			BreakEvenRevenue: totalCosts,
			RevenueDeficit:   math.Max(0, totalCosts-totalRevenue),
		},
		Efficiency: domain.EfficiencyRatios{
			CommissionToRevenueRatio: Round(SafePercent(in.Commissions.TotalCommissions, totalRevenue), PercentPlaces),
			TrainingCollectionRate: Round(
				SafePercent(in.Training.ActualCollections, in.Training.TotalRevenuePotential),
				CollectionRatePlaces,
			),
			CostRecoveryRatio:  Round(SafePercent(totalRevenue, totalCosts), PercentPlaces),
			RevenuePerEmployee: Round(SafeDivide(totalRevenue, float64(in.EmployeeCount)), PercentPlaces),
			AverageOrderValue:  Round(SafeDivide(salesRevenue, float64(in.Sales.TotalOrders)), PercentPlaces),
		},
	}
}
