// Package derive computes read-only views over the entity lists: filtered
// subsets and the aggregate numbers the dashboard shows. Everything here is
// pure and recomputed on each call; inputs are never mutated.
package derive

import (
	"github.com/gestaopub/contratos-service/internal/model"
)

// DefaultExpiringDays is the window the dashboard warns about.
const DefaultExpiringDays = 30

// ExpiringContracts returns the active contracts whose end date falls within
// `days` whole days of `today`, both bounds inclusive: a contract ending today
// has zero days remaining and is included. Input order is preserved.
// Contracts with a missing end date are treated as not expiring.
func ExpiringContracts(contracts []model.Contract, days int, today model.Date) []model.Contract {
	expiring := make([]model.Contract, 0)
	for _, contract := range contracts {
		if remaining, ok := DaysRemaining(contract, today); ok && remaining <= days {
			expiring = append(expiring, contract)
		}
	}
	return expiring
}

// DaysRemaining reports the whole days until the contract's end date. The
// second return is false when the contract is not active, already past its
// end date, or carries a malformed end date.
func DaysRemaining(contract model.Contract, today model.Date) (int, bool) {
	if contract.Status != model.ContractStatusActive {
		return 0, false
	}
	if contract.EndDate.IsZero() {
		return 0, false
	}
	remaining := contract.EndDate.DaysUntil(today)
	if remaining < 0 {
		return 0, false
	}
	return remaining, true
}

// TotalContractValue sums Value over the contracts. Empty input sums to zero.
func TotalContractValue(contracts []model.Contract) float64 {
	total := 0.0
	for _, contract := range contracts {
		total += contract.Value
	}
	return total
}

// TotalPaidValue sums Amount over the payments.
func TotalPaidValue(payments []model.Payment) float64 {
	total := 0.0
	for _, payment := range payments {
		total += payment.Amount
	}
	return total
}

// ActiveContracts counts contracts with status active.
func ActiveContracts(contracts []model.Contract) int {
	count := 0
	for _, contract := range contracts {
		if contract.Status == model.ContractStatusActive {
			count++
		}
	}
	return count
}

// UnpaidInvoices counts invoices with status unpaid.
func UnpaidInvoices(invoices []model.Invoice) int {
	count := 0
	for _, invoice := range invoices {
		if invoice.Status == model.InvoiceStatusUnpaid {
			count++
		}
	}
	return count
}

// DashboardStats is the aggregate block rendered at the top of the console.
type DashboardStats struct {
	ActiveContracts   int     `json:"active_contracts"`
	TotalContracts    int     `json:"total_contracts"`
	TotalValue        float64 `json:"total_value"`
	TotalPaid         float64 `json:"total_paid"`
	PaymentCount      int     `json:"payment_count"`
	SupplierCount     int     `json:"supplier_count"`
	DepartmentCount   int     `json:"department_count"`
	UnpaidInvoices    int     `json:"unpaid_invoices"`
	ExpiringContracts int     `json:"expiring_contracts"`
}

// Dashboard recomputes the dashboard aggregates from the current lists.
func Dashboard(
	contracts []model.Contract,
	suppliers []model.Supplier,
	departments []model.Department,
	payments []model.Payment,
	invoices []model.Invoice,
	today model.Date,
) DashboardStats {
	return DashboardStats{
		ActiveContracts:   ActiveContracts(contracts),
		TotalContracts:    len(contracts),
		TotalValue:        TotalContractValue(contracts),
		TotalPaid:         TotalPaidValue(payments),
		PaymentCount:      len(payments),
		SupplierCount:     len(suppliers),
		DepartmentCount:   len(departments),
		UnpaidInvoices:    UnpaidInvoices(invoices),
		ExpiringContracts: len(ExpiringContracts(contracts, DefaultExpiringDays, today)),
	}
}

// CommitmentStats summarizes the commitments page cards.
type CommitmentStats struct {
	Total              int     `json:"total"`
	TotalAmount        float64 `json:"total_amount"`
	ContractsCommitted int     `json:"contracts_committed"`
}

// Commitments counts commitments, sums the committed amounts, and counts the
// distinct contracts they reference (via the embedded contract id).
func Commitments(commitments []model.Commitment) CommitmentStats {
	seen := make(map[string]struct{}, len(commitments))
	stats := CommitmentStats{Total: len(commitments)}
	for _, commitment := range commitments {
		stats.TotalAmount += commitment.Amount
		seen[commitment.Contract.ID] = struct{}{}
	}
	stats.ContractsCommitted = len(seen)
	return stats
}
