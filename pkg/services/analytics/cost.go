package analytics

import (
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// CalculateCostAnalysis annualizes employee salaries from the role table, adds the
// estimated trainer salaries and the fixed operational costs.
func CalculateCostAnalysis(training domain.TrainingAnalysis, users domain.Keyed[domain.User]) domain.CostAnalysis {
	var out domain.CostAnalysis

	employees := &out.EmployeeCosts
	for _, rs := range RoleSalaries {
		employees.ByRole.GetOrCreate(rs.Role, func() domain.RoleHeadcount {
			return domain.RoleHeadcount{Role: rs.Role, AvgSalary: rs.MonthlySalary}
		})
	}

	for _, u := range users.Values() {
		role := NormalizeRole(u.Role)
		h := employees.ByRole.GetOrCreate(role, func() domain.RoleHeadcount {
			return domain.RoleHeadcount{Role: role}
		})
		h.Count++
		employees.TotalEmployees++
	}

	employees.ByRole.Each(func(_ string, h *domain.RoleHeadcount) {
		h.MonthlyCost = float64(h.Count) * h.AvgSalary
		h.AnnualCost = h.MonthlyCost * MonthsPerYear
		employees.MonthlyTotal += h.MonthlyCost
	})
	employees.AnnualTotal = employees.MonthlyTotal * MonthsPerYear

	out.TrainerCosts.Trainers = make([]domain.TrainerCost, 0, training.TrainerSummary.Len())
	for _, t := range training.TrainerSummary.Values() {
		out.TrainerCosts.Trainers = append(out.TrainerCosts.Trainers, domain.TrainerCost{
			TrainerName:  t.TrainerName,
			ProgramCount: t.ProgramCount,
			AnnualSalary: t.EstimatedAnnualSalary,
		})
		out.TrainerCosts.AnnualTotal += t.EstimatedAnnualSalary
	}
	out.TrainerCosts.TotalTrainers = len(out.TrainerCosts.Trainers)

	out.OperationalCosts = NewOperationalCosts()
	out.TotalCosts.GrandTotal = employees.AnnualTotal + out.TrainerCosts.AnnualTotal + out.OperationalCosts.Total

	return out
}

// NormalizeRole matches the salary table case-insensitively and folds unknown roles into "user".
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	for _, rs := range RoleSalaries {
		if rs.Role == r {
			return r
		}
	}
	return fallbackRole
}
