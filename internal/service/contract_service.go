package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/store"
	"github.com/gestaopub/contratos-service/internal/validate"
)

// ContractInput is the contract form payload. Supplier and department arrive
// as ids and are resolved into embedded snapshots when the form is submitted.
type ContractInput struct {
	Number        string  `json:"number" validate:"required"`
	ProcessNumber string  `json:"process_number"`
	SupplierID    string  `json:"supplier_id" validate:"required"`
	DepartmentID  string  `json:"department_id" validate:"required"`
	Value         float64 `json:"value" validate:"required,gt=0"`
	MonthlyValue  float64 `json:"monthly_value" validate:"omitempty,gt=0"`
	ContractType  string  `json:"contract_type"`
	StartDate     string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status        string  `json:"status" validate:"required,oneof=active expired pending canceled"`
	Object        string  `json:"object"`
	Description   string  `json:"description" validate:"required"`
}

// ContractService is the form controller for the contracts page: it owns the
// contract list mutations plus the page's selection and dialog state.
type ContractService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Contract
	dialogs  Dialogs
}

func NewContractService(st *store.Store, notifier Notifier, log zerolog.Logger) *ContractService {
	return &ContractService{store: st, notifier: notifier, log: log}
}

// List returns the contracts matching the filter, newest first.
func (s *ContractService) List(filter derive.ContractFilter) []model.Contract {
	return derive.FilterContracts(s.store.Contracts(), filter)
}

func (s *ContractService) Get(id string) (model.Contract, error) {
	contract, ok := s.store.ContractByID(id)
	if !ok {
		return model.Contract{}, ErrNotFound
	}
	return contract, nil
}

// Expiring returns the active contracts ending within `days` of today.
func (s *ContractService) Expiring(days int, today model.Date) []model.Contract {
	return derive.ExpiringContracts(s.store.Contracts(), days, today)
}

// Create validates the form, resolves supplier and department into snapshot
// copies, and prepends the new contract. The list is untouched on any error.
func (s *ContractService) Create(input ContractInput) (model.Contract, error) {
	contract, err := s.build(input)
	if err != nil {
		return model.Contract{}, err
	}
	contract.ID = uuid.NewString()
	contract.CreatedAt = model.Today()

	s.store.InsertContract(contract)
	s.closeAndNotify("Contrato adicionado",
		fmt.Sprintf("O contrato %s foi adicionado com sucesso.", contract.Number))
	return contract, nil
}

// Update replaces the contract wholesale: the prior entity overlaid with the
// submitted fields, foreign keys re-resolved. A missing id is a benign no-op.
func (s *ContractService) Update(id string, input ContractInput) (model.Contract, error) {
	existing, ok := s.store.ContractByID(id)
	if !ok {
		s.log.Warn().Str("contract_id", id).Msg("update target not found")
		return model.Contract{}, ErrNotFound
	}

	updated, err := s.build(input)
	if err != nil {
		return model.Contract{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	s.store.ReplaceContract(updated)
	s.closeAndNotify("Contrato atualizado",
		fmt.Sprintf("O contrato %s foi atualizado com sucesso.", updated.Number))
	return updated, nil
}

// Delete removes the contract with the given id. Idempotent: deleting an
// absent id changes nothing. Payments, invoices and commitments referencing
// the contract keep their snapshots; there is no cascade.
func (s *ContractService) Delete(id string) {
	contract, ok := s.store.ContractByID(id)
	if !ok {
		s.log.Debug().Str("contract_id", id).Msg("delete target not found")
		s.reset()
		return
	}
	s.store.RemoveContract(id)
	s.closeAndNotify("Contrato excluído",
		fmt.Sprintf("O contrato %s foi excluído com sucesso.", contract.Number))
}

func (s *ContractService) build(input ContractInput) (model.Contract, error) {
	if err := validate.Struct(input); err != nil {
		return model.Contract{}, err
	}
	contractType, err := parseContractType(input.ContractType)
	if err != nil {
		return model.Contract{}, err
	}

	supplier, ok := s.store.SupplierByID(input.SupplierID)
	if !ok {
		s.notifyError("Erro ao salvar contrato", "Fornecedor não encontrado.")
		return model.Contract{}, fmt.Errorf("%w: supplier %s", ErrReferenceNotFound, input.SupplierID)
	}
	department, ok := s.store.DepartmentByID(input.DepartmentID)
	if !ok {
		s.notifyError("Erro ao salvar contrato", "Departamento não encontrado.")
		return model.Contract{}, fmt.Errorf("%w: department %s", ErrReferenceNotFound, input.DepartmentID)
	}

	startDate, err := model.ParseDate(input.StartDate)
	if err != nil {
		return model.Contract{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endDate, err := model.ParseDate(input.EndDate)
	if err != nil {
		return model.Contract{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return model.Contract{
		Number:        input.Number,
		ProcessNumber: input.ProcessNumber,
		Supplier:      supplier,
		Department:    department,
		Value:         input.Value,
		MonthlyValue:  input.MonthlyValue,
		ContractType:  contractType,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        model.ContractStatus(input.Status),
		Object:        input.Object,
		Description:   input.Description,
	}, nil
}

// parseContractType checks the optional modality against the closed set.
// The values carry spaces and accents, so a struct tag is a poor fit here.
func parseContractType(raw string) (model.ContractType, error) {
	if raw == "" {
		return "", nil
	}
	for _, ct := range model.ContractTypes() {
		if model.ContractType(raw) == ct {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: contract type %q", ErrInvalidInput, raw)
}

// Dialog and selection state.

func (s *ContractService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *ContractService) OpenEdit(contract model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &contract
}

func (s *ContractService) OpenDelete(contract model.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &contract
}

func (s *ContractService) Cancel() {
	s.reset()
}

func (s *ContractService) Selected() (model.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Contract{}, false
	}
	return *s.selected, true
}

func (s *ContractService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *ContractService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *ContractService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}

func (s *ContractService) notifyError(title, description string) {
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationError})
}
