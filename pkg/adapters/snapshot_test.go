package adapters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, raw string) store.Entry {
	return store.Entry{ID: id, Raw: json.RawMessage(raw)}
}

func TestMapStoreCommissionToDomain(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.CommissionRecord
	}{
		{
			name: "full record",
			raw:  `{"amount":"1,500.50","orderId":"ORD-9","productName":"Gold Plan","date":"2024-01-05","commissions":{"u1":{"amount":300,"rate":"15","role":"Admin"}}}`,
			expected: domain.CommissionRecord{
				ID: "c1", BaseOrderAmount: 1500.5, OrderID: "ORD-9", ProductName: "Gold Plan", Date: "2024-01-05",
				Shares: []domain.CommissionShare{{UserID: "u1", Amount: 300, Rate: 15, Role: "Admin"}},
			},
		},
		{
			name: "defaults",
			raw:  `{"createdAt":"2024-02-01T10:00:00Z","commissions":{"u2":{}}}`,
			expected: domain.CommissionRecord{
				ID: "c1", OrderID: "c1", ProductName: DefaultProductName, Date: "2024-02-01T10:00:00Z",
				Shares: []domain.CommissionShare{{UserID: "u2", Rate: DefaultCommissionRate, Role: DefaultCommissionRole}},
			},
		},
		{
			name: "short share form and unknown date",
			raw:  `{"amount":100,"commissions":{"u3":25,"u4":"12.5"}}`,
			expected: domain.CommissionRecord{
				ID: "c1", BaseOrderAmount: 100, OrderID: "c1", ProductName: DefaultProductName, Date: UnknownDate,
				Shares: []domain.CommissionShare{
					{UserID: "u3", Amount: 25, Rate: DefaultCommissionRate, Role: DefaultCommissionRole},
					{UserID: "u4", Amount: 12.5, Rate: DefaultCommissionRate, Role: DefaultCommissionRole},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapStoreCommissionToDomain(entry("c1", tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMapStoreCommissionToDomain_BadShare(t *testing.T) {
	_, err := MapStoreCommissionToDomain(entry("c1", `{"commissions":{"u1":[1,2]}}`))
	assert.Error(t, err)
}

func TestMapStoreUserToDomain(t *testing.T) {
	u, err := MapStoreUserToDomain(entry("u1", `{"displayName":"Asha K","email":"asha@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "u1", Name: "Asha K", Email: "asha@example.com", Role: DefaultUserRole}, u)

	u, err = MapStoreUserToDomain(entry("u2", `{"name":"  ","role":"Admin"}`))
	require.NoError(t, err)
	assert.Equal(t, "User-u2", u.Name)
	assert.Equal(t, "Admin", u.Role)
}

func TestMapStoreTrainingToDomain(t *testing.T) {
	got, err := MapStoreTrainingToDomain(entry("t1", `{"title":"Sales 101","fees":"2,500","joinedCount":"7.9","status":"COMPLETED"}`))
	require.NoError(t, err)

	assert.Equal(t, "Sales 101", got.Title)
	assert.Equal(t, DefaultTrainerName, got.TrainerName)
	assert.Equal(t, 2500.0, got.Fees)
	assert.Equal(t, 7, got.JoinedCount)
	assert.Equal(t, domain.TrainingStatusCompleted, got.Status)
}

func TestMapStoreSaleToDomain_FallbackChains(t *testing.T) {
	got, err := MapStoreSaleToDomain(entry("s1", `{"amount":"abc","userId":"u7","name":"Starter","timestamp":1709251200000}`))
	require.NoError(t, err)

	assert.Equal(t, domain.SalesTransaction{
		ID:          "s1",
		Amount:      0,
		SellerID:    "u7",
		ProductID:   DefaultProductID,
		ProductName: "Starter",
		Date:        "1709251200000",
	}, got)

	got, err = MapStoreSaleToDomain(entry("s2", `{}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultSellerID, got.SellerID)
	assert.Equal(t, DefaultProductName, got.ProductName)
	assert.Equal(t, UnknownDate, got.Date)
}

func TestParseTrainingStatus(t *testing.T) {
	assert.Equal(t, domain.TrainingStatusActive, ParseTrainingStatus(" Active "))
	assert.Equal(t, domain.TrainingStatusCompleted, ParseTrainingStatus("completed"))
	assert.Equal(t, domain.TrainingStatusPending, ParseTrainingStatus("cancelled"))
	assert.Equal(t, domain.TrainingStatusPending, ParseTrainingStatus(""))
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 12.5, toNumber(12.5, 0))
	assert.Equal(t, 1234.0, toNumber(" 1,234 ", 0))
	assert.Equal(t, 7.0, toNumber("", 7))
	assert.Equal(t, 7.0, toNumber(true, 7))
	assert.Equal(t, 7.0, toNumber(map[string]any{}, 7))
	assert.Equal(t, 7.0, toNumber("NaN", 7))
	assert.Equal(t, -3, toInt("-3.9", 0))
}

func TestMapStoreSnapshotToDomain(t *testing.T) {
	// Given
	ctx := zerolog.Nop().WithContext(context.Background())
	snap := store.Snapshot{
		Users: store.Collection{
			entry("u2", `{"name":"Ravi"}`),
			entry("u1", `{"name":"Asha","role":"agency"}`),
			entry("bad", `"not a record"`),
		},
		Commissions:  store.Collection{entry("c1", `{"amount":100,"commissions":{"u1":{"amount":20}}}`)},
		Trainings:    store.Collection{entry("t1", `[]`)},
		SalesDetails: store.Collection{entry("s1", `{"amount":10}`)},
		Diagnostics:  []string{"trainings: permission denied"},
	}

	// When
	got := MapStoreSnapshotToDomain(ctx, snap)

	// Then
	assert.Equal(t, []string{"u2", "u1"}, got.Users.Keys())
	assert.Len(t, got.Commissions, 1)
	assert.Empty(t, got.Trainings)
	assert.Len(t, got.Sales, 1)
	assert.Equal(t, []string{
		"trainings: permission denied",
		"users/bad: record is not an object",
		"trainings/t1: record is not an object",
	}, got.Diagnostics)
	assert.Len(t, snap.Diagnostics, 1)
}
