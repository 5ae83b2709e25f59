package analytics

import (
	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

func usersOf(users ...domain.User) domain.Keyed[domain.User] {
	var k domain.Keyed[domain.User]
	for _, u := range users {
		*k.GetOrCreate(u.ID, func() domain.User { return u }) = u
	}
	return k
}

func commission(id string, amount float64, shares ...domain.CommissionShare) domain.CommissionRecord {
	return domain.CommissionRecord{
		ID:              id,
		BaseOrderAmount: amount,
		OrderID:         "order-" + id,
		ProductName:     "Starter Kit",
		Date:            "2024-03-10",
		Shares:          shares,
	}
}

func share(userID string, amount float64) domain.CommissionShare {
	return domain.CommissionShare{UserID: userID, Amount: amount, Rate: 20, Role: "Agency"}
}

func program(trainer string, fees float64, joined int, status domain.TrainingStatus) domain.TrainingProgram {
	return domain.TrainingProgram{
		ID:          trainer + "-program",
		TrainerName: trainer,
		Fees:        fees,
		JoinedCount: joined,
		Status:      status,
	}
}

func sale(id string, amount float64, seller, product, date string) domain.SalesTransaction {
	return domain.SalesTransaction{
		ID:          id,
		Amount:      amount,
		SellerID:    seller,
		ProductID:   product,
		ProductName: "Product " + product,
		Date:        date,
	}
}
