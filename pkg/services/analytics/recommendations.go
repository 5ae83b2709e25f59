package analytics

import (
	"fmt"
	"math"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// RecommendationSettings contains the thresholds of the recommendation rules
type RecommendationSettings struct {
	// Currency is interpolated into monetary issue texts (default: INR)
	Currency string
	// MinNetProfit flags a loss below this value (default: 0)
	MinNetProfit float64
	// MinTrainingCollectionRate is the collection-rate percentage floor (default: 10)
	MinTrainingCollectionRate float64
	// MaxCommissionToRevenueRatio is the commission share of revenue ceiling in percent (default: 25)
	MaxCommissionToRevenueRatio float64
	// MinRevenuePerEmployee is the productivity floor (default: 100000)
	MinRevenuePerEmployee float64
}

func DefaultRecommendationSettings() RecommendationSettings {
	return RecommendationSettings{
		Currency:                    DefaultCurrency,
		MinNetProfit:                0,
		MinTrainingCollectionRate:   10,
		MaxCommissionToRevenueRatio: 25,
		MinRevenuePerEmployee:       100000,
	}
}

type recommendationRule struct {
	applies func(r domain.FinancialRatios, s RecommendationSettings) bool
	build   func(r domain.FinancialRatios, s RecommendationSettings) domain.Recommendation
}

// recommendationRules is evaluated top to bottom and its order is the output order.
var recommendationRules = []recommendationRule{
	{
		applies: func(r domain.FinancialRatios, s RecommendationSettings) bool {
			return r.Profitability.NetProfit < s.MinNetProfit
		},
		build: func(r domain.FinancialRatios, s RecommendationSettings) domain.Recommendation {
			return domain.Recommendation{
				Priority:   domain.PriorityCritical,
				Category:   "Profitability",
				Issue:      fmt.Sprintf("Operating at a net loss of %s %.2f", s.Currency, math.Abs(r.Profitability.NetProfit)),
				Suggestion: "Reduce operational overhead and prioritise high-margin revenue streams",
				Impact:     "High",
			}
		},
	},
	{
		applies: func(r domain.FinancialRatios, s RecommendationSettings) bool {
			return r.Efficiency.TrainingCollectionRate < s.MinTrainingCollectionRate
		},
		build: func(r domain.FinancialRatios, _ RecommendationSettings) domain.Recommendation {
			return domain.Recommendation{
				Priority:   domain.PriorityHigh,
				Category:   "Training Revenue",
				Issue:      fmt.Sprintf("Training collection rate is only %.4f%%", r.Efficiency.TrainingCollectionRate),
				Suggestion: "Follow up on outstanding training fees and tighten enrolment payment terms",
				Impact:     "Medium",
			}
		},
	},
	{
		applies: func(r domain.FinancialRatios, s RecommendationSettings) bool {
			return r.Efficiency.CommissionToRevenueRatio > s.MaxCommissionToRevenueRatio
		},
		build: func(r domain.FinancialRatios, _ RecommendationSettings) domain.Recommendation {
			return domain.Recommendation{
				Priority:   domain.PriorityMedium,
				Category:   "Commission Structure",
				Issue:      fmt.Sprintf("Commissions consume %.2f%% of revenue", r.Efficiency.CommissionToRevenueRatio),
				Suggestion: "Review commission rates and tie payouts to collected revenue",
				Impact:     "Medium",
			}
		},
	},
	{
		applies: func(r domain.FinancialRatios, s RecommendationSettings) bool {
			return r.Efficiency.RevenuePerEmployee < s.MinRevenuePerEmployee
		},
		build: func(r domain.FinancialRatios, s RecommendationSettings) domain.Recommendation {
			return domain.Recommendation{
				Priority:   domain.PriorityMedium,
				Category:   "Employee Productivity",
				Issue:      fmt.Sprintf("Revenue per employee is %s %.2f", s.Currency, r.Efficiency.RevenuePerEmployee),
				Suggestion: "Invest in sales enablement or rebalance headcount against revenue",
				Impact:     "Low",
			}
		},
	},
}

// GenerateRecommendations returns one entry per matching rule, in rule order.
func GenerateRecommendations(ratios domain.FinancialRatios, settings RecommendationSettings) []domain.Recommendation {
	if settings.Currency == "" {
		settings.Currency = DefaultCurrency
	}

	out := []domain.Recommendation{}
	for _, rule := range recommendationRules {
		if rule.applies(ratios, settings) {
			out = append(out, rule.build(ratios, settings))
		}
	}
	return out
}
