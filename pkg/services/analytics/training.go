package analytics

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// ExtractTrainingData aggregates training programs into status counts, revenue totals,
// per-program rows and per-trainer summaries.
func ExtractTrainingData(trainings []domain.TrainingProgram) domain.TrainingAnalysis {
	out := domain.TrainingAnalysis{
		ProgramDetails: make([]domain.ProgramDetail, 0, len(trainings)),
	}

	for _, p := range trainings {
		out.TotalPrograms++
		switch p.Status {
		case domain.TrainingStatusCompleted:
			out.CompletedPrograms++
		case domain.TrainingStatusActive:
			out.ActivePrograms++
		default:
			out.PendingPrograms++
		}

		revenue := p.Fees * float64(p.JoinedCount)
		out.TotalRevenuePotential += p.Fees
		out.ActualCollections += revenue
		out.TotalParticipants += p.JoinedCount

		out.ProgramDetails = append(out.ProgramDetails, domain.ProgramDetail{
			ID:             p.ID,
			Title:          p.Title,
			TrainerName:    p.TrainerName,
			Fees:           p.Fees,
			JoinedCount:    p.JoinedCount,
			Revenue:        revenue,
			Duration:       p.Duration,
			Status:         p.Status,
			CollectionRate: programCollectionRate(p.Fees, revenue),
			Description:    p.Description,
		})

		trainer := out.TrainerSummary.GetOrCreate(p.TrainerName, func() domain.TrainerSummary {
			return domain.TrainerSummary{TrainerName: p.TrainerName}
		})
		trainer.ProgramCount++
		trainer.TotalRevenue += revenue
		trainer.TotalParticipants += p.JoinedCount
	}

	// Salaries depend on the final program count, so they are assigned after the fold.
	out.TrainerSummary.Each(func(_ string, t *domain.TrainerSummary) {
		t.EstimatedAnnualSalary = EstimateTrainerSalary(t.ProgramCount)
	})

	return out
}

// EstimateTrainerSalary looks the program count up in TrainerSalaryTiers.
func EstimateTrainerSalary(programCount int) float64 {
	for _, tier := range TrainerSalaryTiers {
		if programCount >= tier.MinPrograms {
			return tier.AnnualSalary
		}
	}
	return 0
}

// programCollectionRate keeps the historical per-program formula, which reduces to
// joinedCount*100 and is not a share of potential revenue.
func programCollectionRate(fees, revenue float64) float64 {
	if fees <= 0 {
		return 0
	}
	return Round(revenue/fees*100, PercentPlaces)
}
