package analytics

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// ExtractCommissionData folds the commission ledger into global totals and per-user
// summaries. Records are visited in source order, and so are the shares inside each record.
func ExtractCommissionData(
	commissions []domain.CommissionRecord,
	users domain.Keyed[domain.User],
) domain.CommissionAnalysis {
	out := domain.CommissionAnalysis{
		CommissionBreakdown: []domain.CommissionBreakdownRow{},
	}

	for _, record := range commissions {
		out.TotalCommissions += record.BaseOrderAmount
		out.TotalOrders++

		for _, share := range record.Shares {
			summary := out.UserSummary.GetOrCreate(share.UserID, func() domain.UserCommissionSummary {
				return newUserCommissionSummary(share, users)
			})

			summary.TotalEarned += share.Amount
			summary.OrderCount++
			summary.CommissionRate = share.Rate
			summary.Orders = append(summary.Orders, domain.OrderDetail{
				OrderID:     record.OrderID,
				Amount:      share.Amount,
				ProductName: record.ProductName,
				Date:        record.Date,
			})

			out.TotalDistributed += share.Amount
			out.CommissionBreakdown = append(out.CommissionBreakdown, domain.CommissionBreakdownRow{
				OrderID:     record.OrderID,
				UserID:      share.UserID,
				UserName:    summary.Name,
				Role:        share.Role,
				Amount:      share.Amount,
				Rate:        share.Rate,
				ProductName: record.ProductName,
				Date:        record.Date,
			})
		}
	}

	out.AverageCommissionPerOrder = SafeDivide(out.TotalCommissions, float64(out.TotalOrders))
	return out
}

func newUserCommissionSummary(share domain.CommissionShare, users domain.Keyed[domain.User]) domain.UserCommissionSummary {
	name := domain.FallbackUserName(share.UserID)
	if u, ok := users.Get(share.UserID); ok && u.Name != "" {
		name = u.Name
	}
	return domain.UserCommissionSummary{
		UserID:         share.UserID,
		Name:           name,
		Role:           share.Role,
		CommissionRate: share.Rate,
		Orders:         []domain.OrderDetail{},
	}
}
