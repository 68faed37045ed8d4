package derive

import (
	"strings"

	"github.com/gestaopub/contratos-service/internal/model"
)

// ContractFilter narrows the contracts list. The free-text query matches
// case-insensitive substrings of the contract number, supplier name, or
// description; the remaining dimensions are exact matches. An empty dimension
// matches everything, and dimensions combine with AND.
type ContractFilter struct {
	Query        string
	Status       model.ContractStatus
	DepartmentID string
	SupplierID   string
}

// IsZero reports whether no dimension is set.
func (f ContractFilter) IsZero() bool {
	return f.Query == "" && f.Status == "" && f.DepartmentID == "" && f.SupplierID == ""
}

// Matches applies the filter to a single contract.
func (f ContractFilter) Matches(contract model.Contract) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(contract.Number), q) &&
			!strings.Contains(strings.ToLower(contract.Supplier.Name), q) &&
			!strings.Contains(strings.ToLower(contract.Description), q) {
			return false
		}
	}
	if f.Status != "" && contract.Status != f.Status {
		return false
	}
	if f.DepartmentID != "" && contract.Department.ID != f.DepartmentID {
		return false
	}
	if f.SupplierID != "" && contract.Supplier.ID != f.SupplierID {
		return false
	}
	return true
}

// FilterContracts returns the contracts matching the filter, preserving order.
func FilterContracts(contracts []model.Contract, filter ContractFilter) []model.Contract {
	matched := make([]model.Contract, 0, len(contracts))
	for _, contract := range contracts {
		if filter.Matches(contract) {
			matched = append(matched, contract)
		}
	}
	return matched
}
