package derive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/model"
)

var today = model.NewDate(2024, time.June, 1)

func contractEndingIn(id string, days int, status model.ContractStatus) model.Contract {
	return model.Contract{
		ID:      id,
		Number:  "2024/" + id,
		Status:  status,
		EndDate: today.AddDays(days),
	}
}

func TestExpiringContracts(t *testing.T) {
	contracts := []model.Contract{
		contractEndingIn("a", 5, model.ContractStatusActive),
		contractEndingIn("b", 20, model.ContractStatusActive),
		contractEndingIn("c", 40, model.ContractStatusActive),
	}

	got := derive.ExpiringContracts(contracts, 30, today)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestExpiringContracts_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		contract model.Contract
		days     int
		want     bool
	}{
		{name: "EndsToday", contract: contractEndingIn("x", 0, model.ContractStatusActive), days: 30, want: true},
		{name: "EndsOnWindowEdge", contract: contractEndingIn("x", 30, model.ContractStatusActive), days: 30, want: true},
		{name: "EndsJustPastEdge", contract: contractEndingIn("x", 31, model.ContractStatusActive), days: 30, want: false},
		{name: "AlreadyEnded", contract: contractEndingIn("x", -1, model.ContractStatusActive), days: 30, want: false},
		{name: "ZeroWindowEndsToday", contract: contractEndingIn("x", 0, model.ContractStatusActive), days: 0, want: true},
		{name: "ZeroWindowEndsTomorrow", contract: contractEndingIn("x", 1, model.ContractStatusActive), days: 0, want: false},
		{name: "PendingNeverExpiring", contract: contractEndingIn("x", 5, model.ContractStatusPending), days: 30, want: false},
		{name: "ExpiredNeverExpiring", contract: contractEndingIn("x", 5, model.ContractStatusExpired), days: 30, want: false},
		{name: "CanceledNeverExpiring", contract: contractEndingIn("x", 5, model.ContractStatusCanceled), days: 30, want: false},
		{name: "MissingEndDate", contract: model.Contract{ID: "x", Status: model.ContractStatusActive}, days: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derive.ExpiringContracts([]model.Contract{tt.contract}, tt.days, today)
			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

// Widening the window can only ever add contracts.
func TestExpiringContracts_MonotonicInDays(t *testing.T) {
	contracts := []model.Contract{
		contractEndingIn("a", 0, model.ContractStatusActive),
		contractEndingIn("b", 7, model.ContractStatusActive),
		contractEndingIn("c", 15, model.ContractStatusExpired),
		contractEndingIn("d", 29, model.ContractStatusActive),
		contractEndingIn("e", 31, model.ContractStatusActive),
		contractEndingIn("f", 90, model.ContractStatusActive),
	}

	previous := map[string]struct{}{}
	for days := 0; days <= 100; days += 5 {
		current := derive.ExpiringContracts(contracts, days, today)
		ids := make(map[string]struct{}, len(current))
		for _, contract := range current {
			ids[contract.ID] = struct{}{}
		}
		for id := range previous {
			_, stillThere := ids[id]
			assert.True(t, stillThere, "days=%d dropped %s", days, id)
		}
		previous = ids
	}
}

func TestDaysRemaining(t *testing.T) {
	remaining, ok := derive.DaysRemaining(contractEndingIn("a", 12, model.ContractStatusActive), today)
	require.True(t, ok)
	assert.Equal(t, 12, remaining)

	_, ok = derive.DaysRemaining(contractEndingIn("a", 12, model.ContractStatusCanceled), today)
	assert.False(t, ok)

	_, ok = derive.DaysRemaining(contractEndingIn("a", -3, model.ContractStatusActive), today)
	assert.False(t, ok)
}

func TestAggregates(t *testing.T) {
	assert.Zero(t, derive.TotalContractValue(nil))
	assert.Zero(t, derive.TotalPaidValue(nil))

	contracts := []model.Contract{
		{ID: "a", Value: 250000, Status: model.ContractStatusActive},
		{ID: "b", Value: 750000, Status: model.ContractStatusActive},
		{ID: "c", Value: 120000, Status: model.ContractStatusExpired},
	}
	assert.Equal(t, 1120000.0, derive.TotalContractValue(contracts))
	assert.Equal(t, 2, derive.ActiveContracts(contracts))

	payments := []model.Payment{{Amount: 62500}, {Amount: 62500}, {Amount: 250000}}
	assert.Equal(t, 375000.0, derive.TotalPaidValue(payments))

	invoices := []model.Invoice{
		{Status: model.InvoiceStatusPaid},
		{Status: model.InvoiceStatusUnpaid},
		{Status: model.InvoiceStatusPartial},
		{Status: model.InvoiceStatusUnpaid},
	}
	assert.Equal(t, 2, derive.UnpaidInvoices(invoices))
}

func TestCommitments(t *testing.T) {
	commitments := []model.Commitment{
		{ID: "1", Amount: 100, Contract: model.Contract{ID: "a"}},
		{ID: "2", Amount: 200, Contract: model.Contract{ID: "a"}},
		{ID: "3", Amount: 300, Contract: model.Contract{ID: "b"}},
	}

	stats := derive.Commitments(commitments)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 600.0, stats.TotalAmount)
	assert.Equal(t, 2, stats.ContractsCommitted)

	assert.Zero(t, derive.Commitments(nil).ContractsCommitted)
}

func TestDashboard(t *testing.T) {
	contracts := []model.Contract{
		contractEndingIn("a", 10, model.ContractStatusActive),
		contractEndingIn("b", 200, model.ContractStatusActive),
		contractEndingIn("c", -5, model.ContractStatusExpired),
	}
	contracts[0].Value = 100
	contracts[1].Value = 200
	contracts[2].Value = 50

	stats := derive.Dashboard(
		contracts,
		[]model.Supplier{{ID: "s1"}, {ID: "s2"}},
		[]model.Department{{ID: "d1"}},
		[]model.Payment{{Amount: 30}},
		[]model.Invoice{{Status: model.InvoiceStatusUnpaid}},
		today,
	)

	assert.Equal(t, 2, stats.ActiveContracts)
	assert.Equal(t, 3, stats.TotalContracts)
	assert.Equal(t, 350.0, stats.TotalValue)
	assert.Equal(t, 30.0, stats.TotalPaid)
	assert.Equal(t, 1, stats.PaymentCount)
	assert.Equal(t, 2, stats.SupplierCount)
	assert.Equal(t, 1, stats.DepartmentCount)
	assert.Equal(t, 1, stats.UnpaidInvoices)
	assert.Equal(t, 1, stats.ExpiringContracts)
}
