package analytics

import (
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommissionData_SingleRecord(t *testing.T) {
	// Given
	records := []domain.CommissionRecord{commission("c1", 1000, share("u1", 200))}
	users := usersOf(domain.User{ID: "u1", Name: "Asha", Role: "agency"})

	// When
	got := ExtractCommissionData(records, users)

	// Then
	assert.Equal(t, 1000.0, got.TotalCommissions)
	assert.Equal(t, 1, got.TotalOrders)
	assert.Equal(t, 1000.0, got.AverageCommissionPerOrder)

	u1, ok := got.UserSummary.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "Asha", u1.Name)
	assert.Equal(t, 200.0, u1.TotalEarned)
	assert.Equal(t, 1, u1.OrderCount)
	require.Len(t, u1.Orders, 1)
	assert.Equal(t, domain.OrderDetail{OrderID: "order-c1", Amount: 200, ProductName: "Starter Kit", Date: "2024-03-10"}, u1.Orders[0])

	require.Len(t, got.CommissionBreakdown, 1)
	assert.Equal(t, "u1", got.CommissionBreakdown[0].UserID)
	assert.Equal(t, "Asha", got.CommissionBreakdown[0].UserName)
}

func TestExtractCommissionData_AccumulatesPerUser(t *testing.T) {
	records := []domain.CommissionRecord{
		commission("c1", 1000, share("u2", 150), share("u1", 100)),
		commission("c2", 500, share("u1", 50)),
		commission("c3", 0),
	}
	records[1].Shares[0].Rate = 15

	got := ExtractCommissionData(records, domain.Keyed[domain.User]{})

	t.Run("count integrity", func(t *testing.T) {
		assert.Equal(t, 3, got.TotalOrders)
		assert.Equal(t, 1500.0, got.TotalCommissions)
		assert.Equal(t, 500.0, got.AverageCommissionPerOrder)
	})

	t.Run("user totals sum to distributed amount", func(t *testing.T) {
		var sum float64
		for _, s := range got.UserSummary.Values() {
			sum += s.TotalEarned
		}
		assert.InDelta(t, got.TotalDistributed, sum, 1e-9)
		assert.InDelta(t, 300.0, sum, 1e-9)
	})

	t.Run("first appearance order", func(t *testing.T) {
		assert.Equal(t, []string{"u2", "u1"}, got.UserSummary.Keys())
	})

	t.Run("last seen rate and fallback name", func(t *testing.T) {
		u1, _ := got.UserSummary.Get("u1")
		assert.Equal(t, 15.0, u1.CommissionRate)
		assert.Equal(t, 2, u1.OrderCount)
		assert.Equal(t, 150.0, u1.TotalEarned)
		assert.Equal(t, "User-u1", u1.Name)
		assert.Equal(t, "Agency", u1.Role)
	})

	t.Run("flat breakdown in visit order", func(t *testing.T) {
		require.Len(t, got.CommissionBreakdown, 3)
		assert.Equal(t, "u2", got.CommissionBreakdown[0].UserID)
		assert.Equal(t, "u1", got.CommissionBreakdown[1].UserID)
		assert.Equal(t, "order-c2", got.CommissionBreakdown[2].OrderID)
	})
}

func TestExtractCommissionData_Empty(t *testing.T) {
	got := ExtractCommissionData(nil, domain.Keyed[domain.User]{})

	assert.Zero(t, got.TotalCommissions)
	assert.Zero(t, got.TotalOrders)
	assert.Zero(t, got.AverageCommissionPerOrder)
	assert.Zero(t, got.UserSummary.Len())
	assert.NotNil(t, got.CommissionBreakdown)
}
