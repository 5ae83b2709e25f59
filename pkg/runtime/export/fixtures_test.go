package export

import (
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/analytics"
)

var fixedTime = time.Date(2024, 3, 31, 13, 0, 5, 0, time.UTC)

func sampleReport() domain.Report {
	var users domain.Keyed[domain.User]
	for _, u := range []domain.User{
		{ID: "u2", Name: "Ravi, Sr.", Role: "admin"},
		{ID: "u1", Name: "Asha", Role: "agency"},
	} {
		users.GetOrCreate(u.ID, func() domain.User { return u })
	}

	snap := domain.Snapshot{
		Users: users,
		Commissions: []domain.CommissionRecord{{
			ID: "c1", BaseOrderAmount: 1000, OrderID: "c1", ProductName: "Gold", Date: "2024-03-01",
			Shares: []domain.CommissionShare{
				{UserID: "u2", Amount: 150, Rate: 15, Role: "Agency"},
				{UserID: "u1", Amount: 200, Rate: 20, Role: "Agency"},
			},
		}},
		Trainings: []domain.TrainingProgram{{
			ID: "t1", Title: "Closing <Deals>", TrainerName: "Meena", Fees: 2000, JoinedCount: 1,
			Status: domain.TrainingStatusCompleted,
		}},
		Sales: []domain.SalesTransaction{{
			ID: "s1", Amount: 1234567.891, SellerID: "u1", ProductID: "p1", ProductName: "Gold", Date: "2024-03-02",
		}},
	}

	return analytics.BuildReport(snap, analytics.ReportOptions{ReportID: "r-42", GeneratedAt: fixedTime})
}
