package store

// Numeric and identifier fields are typed as any: the admin app writes them both
// as JSON numbers and as strings depending on which form saved the record.

type CommissionRecord struct {
	Amount      any        `json:"amount"`
	OrderID     any        `json:"orderId"`
	ProductName any        `json:"productName"`
	Date        any        `json:"date"`
	CreatedAt   any        `json:"createdAt"`
	Commissions Collection `json:"commissions"`
}

type CommissionShare struct {
	Amount any `json:"amount"`
	Rate   any `json:"rate"`
	Role   any `json:"role"`
}

type UserRecord struct {
	Name        any `json:"name"`
	DisplayName any `json:"displayName"`
	Email       any `json:"email"`
	Role        any `json:"role"`
}

type TrainingRecord struct {
	Title       any `json:"title"`
	TrainerName any `json:"trainerName"`
	Fees        any `json:"fees"`
	JoinedCount any `json:"joinedCount"`
	Duration    any `json:"duration"`
	Status      any `json:"status"`
	Description any `json:"description"`
}

type SaleRecord struct {
	Amount      any `json:"amount"`
	SellerID    any `json:"sellerId"`
	UserID      any `json:"userId"`
	ProductID   any `json:"productId"`
	ProductName any `json:"productName"`
	Name        any `json:"name"`
	Date        any `json:"date"`
	SaleDate    any `json:"saleDate"`
	CreatedAt   any `json:"createdAt"`
	Timestamp   any `json:"timestamp"`
}
