package analytics

import (
	"fmt"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSalesData_Breakdowns(t *testing.T) {
	sales := []domain.SalesTransaction{
		sale("s1", 300, "u1", "p1", "2024-01-15"),
		sale("s2", 100, "u2", "p1", "2024-01-20T10:00:00Z"),
		sale("s3", 250, "u1", "p2", "Unknown Date"),
		sale("s4", 50, "u2", "p1", "2024-02-01"),
	}

	got := ExtractSalesData(sales)

	assert.Equal(t, 700.0, got.TotalSales)
	assert.Equal(t, 4, got.TotalOrders)
	assert.Equal(t, 175.0, got.AverageOrderValue)

	p1, ok := got.ProductBreakdown.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 450.0, p1.TotalSales)
	assert.Equal(t, 3, p1.OrderCount)
	assert.Equal(t, 150.0, p1.AveragePrice)
	assert.Equal(t, 300.0, p1.HighestSale)
	assert.Equal(t, "Product p1", p1.ProductName)

	u2, ok := got.SellerBreakdown.Get("u2")
	require.True(t, ok)
	assert.Equal(t, 150.0, u2.TotalSales)
	assert.Equal(t, 75.0, u2.AverageOrderValue)

	assert.Equal(t, []string{"2024-01", "2024-02"}, got.MonthlyTrends.Keys())
	jan, _ := got.MonthlyTrends.Get("2024-01")
	assert.Equal(t, 400.0, jan.TotalSales)
	assert.Equal(t, 2, jan.OrderCount)
}

func TestExtractSalesData_TopListsAreStableAndTruncated(t *testing.T) {
	amounts := []float64{100, 500, 300, 500, 50, 300, 700}
	var sales []domain.SalesTransaction
	for i, amount := range amounts {
		id := fmt.Sprintf("p%d", i)
		sales = append(sales, sale("s"+id, amount, "seller-"+id, id, "Unknown Date"))
	}

	got := ExtractSalesData(sales)

	require.Len(t, got.TopProducts, TopListSize)
	var ids []string
	for _, p := range got.TopProducts {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []string{"p6", "p1", "p3", "p2", "p5"}, ids)

	require.Len(t, got.TopSellers, TopListSize)
	assert.Equal(t, "seller-p6", got.TopSellers[0].SellerID)
	assert.Equal(t, "seller-p1", got.TopSellers[1].SellerID)
	assert.Equal(t, "seller-p3", got.TopSellers[2].SellerID)

	assert.Zero(t, got.MonthlyTrends.Len())
	assert.Equal(t, 7, got.ProductBreakdown.Len(), "leaderboards do not reorder the breakdown")
	assert.Equal(t, "p0", got.ProductBreakdown.Keys()[0])
}

func TestMonthKey(t *testing.T) {
	tests := []struct {
		date     string
		expected string
		ok       bool
	}{
		{date: "2024-03-05", expected: "2024-03", ok: true},
		{date: "2024-03-05T23:30:00.000Z", expected: "2024-03", ok: true},
		{date: "2024-03-01T00:30:00+05:30", expected: "2024-03", ok: true},
		{date: "2024-02-29T23:45:00-08:00", expected: "2024-02", ok: true},
		{date: "2024-12-31 08:00:00", expected: "2024-12", ok: true},
		{date: "2023/07/01", expected: "2023-07", ok: true},
		{date: "11/30/2022", expected: "2022-11", ok: true},
		{date: "1709251200000", expected: "2024-03", ok: true},
		{date: "1709251200", expected: "2024-03", ok: true},
		{date: "2024-02-30", ok: false},
		{date: "Unknown Date", ok: false},
		{date: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, ok := MonthKey(tt.date)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractSalesData_Empty(t *testing.T) {
	got := ExtractSalesData(nil)

	assert.Zero(t, got.TotalSales)
	assert.Zero(t, got.TotalOrders)
	assert.Zero(t, got.AverageOrderValue)
	assert.Empty(t, got.TopProducts)
	assert.Empty(t, got.TopSellers)
}
