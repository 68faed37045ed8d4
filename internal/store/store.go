// Package store holds the console's in-memory entity collections. Everything
// lives in process memory and resets on restart; the seed dataset stands in
// for a real backend.
package store

import (
	"sync"

	"github.com/gestaopub/contratos-service/internal/model"
)

// Store owns one list per entity type. Lists keep newest-first order: inserts
// prepend. Reads hand out copies so callers can never observe a torn or
// half-mutated list.
type Store struct {
	mu          sync.RWMutex
	suppliers   []model.Supplier
	departments []model.Department
	contracts   []model.Contract
	payments    []model.Payment
	invoices    []model.Invoice
	commitments []model.Commitment
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Suppliers

func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

func (s *Store) SupplierByID(id string) (model.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, supplier := range s.suppliers {
		if supplier.ID == id {
			return supplier, true
		}
	}
	return model.Supplier{}, false
}

func (s *Store) InsertSupplier(supplier model.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append([]model.Supplier{supplier}, s.suppliers...)
}

// ReplaceSupplier swaps the supplier with the same id for the given value.
// Returns false when no such supplier exists; the list is left unchanged.
func (s *Store) ReplaceSupplier(supplier model.Supplier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == supplier.ID {
			s.suppliers[i] = supplier
			return true
		}
	}
	return false
}

// RemoveSupplier deletes the supplier with the given id. Idempotent: removing
// an absent id returns false and changes nothing.
func (s *Store) RemoveSupplier(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return true
		}
	}
	return false
}

// Departments

func (s *Store) Departments() []model.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

func (s *Store) DepartmentByID(id string) (model.Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, department := range s.departments {
		if department.ID == id {
			return department, true
		}
	}
	return model.Department{}, false
}

func (s *Store) InsertDepartment(department model.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments = append([]model.Department{department}, s.departments...)
}

func (s *Store) ReplaceDepartment(department model.Department) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == department.ID {
			s.departments[i] = department
			return true
		}
	}
	return false
}

func (s *Store) RemoveDepartment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return true
		}
	}
	return false
}

// Contracts

func (s *Store) Contracts() []model.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

func (s *Store) ContractByID(id string) (model.Contract, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, contract := range s.contracts {
		if contract.ID == id {
			return contract, true
		}
	}
	return model.Contract{}, false
}

func (s *Store) InsertContract(contract model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = append([]model.Contract{contract}, s.contracts...)
}

func (s *Store) ReplaceContract(contract model.Contract) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == contract.ID {
			s.contracts[i] = contract
			return true
		}
	}
	return false
}

// RemoveContract deletes the contract with the given id. Payments, invoices
// and commitments that reference it keep their embedded snapshot: there is no
// cascade.
func (s *Store) RemoveContract(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			return true
		}
	}
	return false
}

// Payments

func (s *Store) Payments() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *Store) InsertPayment(payment model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append([]model.Payment{payment}, s.payments...)
}

func (s *Store) ReplacePayment(payment model.Payment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == payment.ID {
			s.payments[i] = payment
			return true
		}
	}
	return false
}

func (s *Store) RemovePayment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true
		}
	}
	return false
}

// Invoices

func (s *Store) Invoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Store) InsertInvoice(invoice model.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append([]model.Invoice{invoice}, s.invoices...)
}

func (s *Store) ReplaceInvoice(invoice model.Invoice) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == invoice.ID {
			s.invoices[i] = invoice
			return true
		}
	}
	return false
}

func (s *Store) RemoveInvoice(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return true
		}
	}
	return false
}

// Commitments

func (s *Store) Commitments() []model.Commitment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Commitment, len(s.commitments))
	copy(out, s.commitments)
	return out
}

func (s *Store) InsertCommitment(commitment model.Commitment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitments = append([]model.Commitment{commitment}, s.commitments...)
}

func (s *Store) ReplaceCommitment(commitment model.Commitment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.commitments {
		if s.commitments[i].ID == commitment.ID {
			s.commitments[i] = commitment
			return true
		}
	}
	return false
}

func (s *Store) RemoveCommitment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.commitments {
		if s.commitments[i].ID == id {
			s.commitments = append(s.commitments[:i], s.commitments[i+1:]...)
			return true
		}
	}
	return false
}
