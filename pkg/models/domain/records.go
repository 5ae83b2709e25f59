package domain

type TrainingStatus string

const (
	TrainingStatusPending   TrainingStatus = "pending"
	TrainingStatusActive    TrainingStatus = "active"
	TrainingStatusCompleted TrainingStatus = "completed"
)

type User struct {
	ID    string
	Name  string // falls back to User-{id}
	Email string
	Role  string
}

// CommissionShare is one user's cut of a commission ledger entry.
type CommissionShare struct {
	UserID string
	Amount float64
	Rate   float64 // percent, default 20
	Role   string  // default Agency
}

type CommissionRecord struct {
	ID              string
	BaseOrderAmount float64
	OrderID         string
	ProductName     string
	Date            string
	Shares          []CommissionShare
}

type TrainingProgram struct {
	ID          string
	Title       string
	TrainerName string
	Fees        float64
	JoinedCount int
	Duration    string
	Status      TrainingStatus
	Description string
}

type SalesTransaction struct {
	ID          string
	Amount      float64
	SellerID    string
	ProductID   string
	ProductName string
	Date        string
}

// Snapshot holds fully defaulted input records in source order.
type Snapshot struct {
	Commissions []CommissionRecord
	Users       Keyed[User]
	Trainings   []TrainingProgram
	Sales       []SalesTransaction
	Diagnostics []string
}

// FallbackUserName is the display name used when the roster has no name for a user.
func FallbackUserName(id string) string {
	return "User-" + id
}
