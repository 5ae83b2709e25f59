package domain

type OrderDetail struct {
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
	ProductName string  `json:"productName"`
	Date        string  `json:"date"`
}

type UserCommissionSummary struct {
	UserID         string        `json:"userId"`
	Name           string        `json:"name"`
	Role           string        `json:"role"`
	TotalEarned    float64       `json:"totalEarned"`
	OrderCount     int           `json:"orderCount"`
	CommissionRate float64       `json:"commissionRate"` // last seen
	Orders         []OrderDetail `json:"orders"`
}

type CommissionBreakdownRow struct {
	OrderID     string  `json:"orderId"`
	UserID      string  `json:"userId"`
	UserName    string  `json:"userName"`
	Role        string  `json:"role"`
	Amount      float64 `json:"amount"`
	Rate        float64 `json:"rate"`
	ProductName string  `json:"productName"`
	Date        string  `json:"date"`
}

type CommissionAnalysis struct {
	// TotalCommissions sums the base order amount of every ledger entry.
	TotalCommissions float64 `json:"totalCommissions"`
	// TotalDistributed sums every per-user share; it equals the sum of UserSummary totals.
	TotalDistributed          float64                      `json:"totalDistributed"`
	TotalOrders               int                          `json:"totalOrders"`
	AverageCommissionPerOrder float64                      `json:"averageCommissionPerOrder"`
	UserSummary               Keyed[UserCommissionSummary] `json:"userSummary"`
	CommissionBreakdown       []CommissionBreakdownRow     `json:"commissionBreakdown"`
}

type ProgramDetail struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	TrainerName string         `json:"trainerName"`
	Fees        float64        `json:"fees"`
	JoinedCount int            `json:"joinedCount"`
	Revenue     float64        `json:"revenue"`
	Duration    string         `json:"duration"`
	Status      TrainingStatus `json:"status"`
	// CollectionRate is (fees*joinedCount)/fees*100, i.e. joinedCount*100 whenever fees > 0.
	CollectionRate float64 `json:"collectionRate"`
	Description    string  `json:"description"`
}

type TrainerSummary struct {
	TrainerName           string  `json:"trainerName"`
	ProgramCount          int     `json:"programCount"`
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalParticipants     int     `json:"totalParticipants"`
	EstimatedAnnualSalary float64 `json:"estimatedAnnualSalary"`
}

type TrainingAnalysis struct {
	TotalPrograms         int                   `json:"totalPrograms"`
	ActivePrograms        int                   `json:"activePrograms"`
	CompletedPrograms     int                   `json:"completedPrograms"`
	PendingPrograms       int                   `json:"pendingPrograms"`
	TotalRevenuePotential float64               `json:"totalRevenuePotential"`
	ActualCollections     float64               `json:"actualCollections"`
	TotalParticipants     int                   `json:"totalParticipants"`
	ProgramDetails        []ProgramDetail       `json:"programDetails"`
	TrainerSummary        Keyed[TrainerSummary] `json:"trainerSummary"`
}

type ProductSalesSummary struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	TotalSales   float64 `json:"totalSales"`
	OrderCount   int     `json:"orderCount"`
	AveragePrice float64 `json:"averagePrice"`
	HighestSale  float64 `json:"highestSale"`
}

type SellerSalesSummary struct {
	SellerID          string  `json:"sellerId"`
	TotalSales        float64 `json:"totalSales"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type MonthlyBucket struct {
	Month      string  `json:"month"` // YYYY-MM
	TotalSales float64 `json:"totalSales"`
	OrderCount int     `json:"orderCount"`
}

type SalesAnalysis struct {
	TotalSales        float64                    `json:"totalSales"`
	TotalOrders       int                        `json:"totalOrders"`
	AverageOrderValue float64                    `json:"averageOrderValue"`
	ProductBreakdown  Keyed[ProductSalesSummary] `json:"productBreakdown"`
	SellerBreakdown   Keyed[SellerSalesSummary]  `json:"sellerBreakdown"`
	MonthlyTrends     Keyed[MonthlyBucket]       `json:"monthlyTrends"`
	TopProducts       []ProductSalesSummary      `json:"topProducts"`
	TopSellers        []SellerSalesSummary       `json:"topSellers"`
}

type RoleHeadcount struct {
	Role        string  `json:"role"`
	Count       int     `json:"count"`
	AvgSalary   float64 `json:"avgSalary"`
	MonthlyCost float64 `json:"monthlyCost"`
	AnnualCost  float64 `json:"annualCost"`
}

type EmployeeCosts struct {
	ByRole         Keyed[RoleHeadcount] `json:"byRole"`
	TotalEmployees int                  `json:"totalEmployees"`
	MonthlyTotal   float64              `json:"monthlyTotal"`
	AnnualTotal    float64              `json:"annualTotal"`
}

type TrainerCost struct {
	TrainerName  string  `json:"trainerName"`
	ProgramCount int     `json:"programCount"`
	AnnualSalary float64 `json:"annualSalary"`
}

type TrainerCosts struct {
	Trainers      []TrainerCost `json:"trainers"`
	TotalTrainers int           `json:"totalTrainers"`
	AnnualTotal   float64       `json:"annualTotal"`
}

type OperationalCosts struct {
	Infrastructure float64 `json:"infrastructure"`
	Marketing      float64 `json:"marketing"`
	Utilities      float64 `json:"utilities"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
}

type TotalCosts struct {
	GrandTotal float64 `json:"grandTotal"`
}

type CostAnalysis struct {
	EmployeeCosts    EmployeeCosts    `json:"employeeCosts"`
	TrainerCosts     TrainerCosts     `json:"trainerCosts"`
	OperationalCosts OperationalCosts `json:"operationalCosts"`
	TotalCosts       TotalCosts       `json:"totalCosts"`
}

type RevenueRatios struct {
	Total              float64 `json:"total"`
	FromSales          float64 `json:"fromSales"`
	FromTraining       float64 `json:"fromTraining"`
	SalesPercentage    float64 `json:"salesPercentage"`
	TrainingPercentage float64 `json:"trainingPercentage"`
}

type CostRatios struct {
	Total       float64 `json:"total"`
	Employees   float64 `json:"employees"`
	Trainers    float64 `json:"trainers"`
	Commissions float64 `json:"commissions"`
	Operational float64 `json:"operational"`
}

type ProfitabilityRatios struct {
	NetProfit        float64 `json:"netProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	BreakEvenRevenue float64 `json:"breakEvenRevenue"`
	RevenueDeficit   float64 `json:"revenueDeficit"`
}

type EfficiencyRatios struct {
	CommissionToRevenueRatio float64 `json:"commissionToRevenueRatio"`
	TrainingCollectionRate   float64 `json:"trainingCollectionRate"`
	CostRecoveryRatio        float64 `json:"costRecoveryRatio"`
	RevenuePerEmployee       float64 `json:"revenuePerEmployee"`
	AverageOrderValue        float64 `json:"averageOrderValue"`
}

type FinancialRatios struct {
	Revenue       RevenueRatios       `json:"revenue"`
	Costs         CostRatios          `json:"costs"`
	Profitability ProfitabilityRatios `json:"profitability"`
	Efficiency    EfficiencyRatios    `json:"efficiency"`
}
