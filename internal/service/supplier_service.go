package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/store"
	"github.com/gestaopub/contratos-service/internal/validate"
)

type SupplierInput struct {
	Name    string `json:"name" validate:"required"`
	CNPJ    string `json:"cnpj" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// SupplierService is the form controller for the suppliers page.
type SupplierService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Supplier
	dialogs  Dialogs
}

func NewSupplierService(st *store.Store, notifier Notifier, log zerolog.Logger) *SupplierService {
	return &SupplierService{store: st, notifier: notifier, log: log}
}

func (s *SupplierService) List() []model.Supplier {
	return s.store.Suppliers()
}

func (s *SupplierService) Get(id string) (model.Supplier, error) {
	supplier, ok := s.store.SupplierByID(id)
	if !ok {
		return model.Supplier{}, ErrNotFound
	}
	return supplier, nil
}

func (s *SupplierService) Create(input SupplierInput) (model.Supplier, error) {
	if err := validate.Struct(input); err != nil {
		return model.Supplier{}, err
	}

	supplier := model.Supplier{
		ID:        uuid.NewString(),
		Name:      input.Name,
		CNPJ:      input.CNPJ,
		Contact:   input.Contact,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: model.Today(),
	}
	s.store.InsertSupplier(supplier)
	s.closeAndNotify("Fornecedor adicionado",
		fmt.Sprintf("O fornecedor %s foi adicionado com sucesso.", supplier.Name))
	return supplier, nil
}

// Update replaces the supplier wholesale. Contracts that embedded this
// supplier keep their snapshot; the edit is not propagated.
func (s *SupplierService) Update(id string, input SupplierInput) (model.Supplier, error) {
	existing, ok := s.store.SupplierByID(id)
	if !ok {
		s.log.Warn().Str("supplier_id", id).Msg("update target not found")
		return model.Supplier{}, ErrNotFound
	}
	if err := validate.Struct(input); err != nil {
		return model.Supplier{}, err
	}

	updated := existing
	updated.Name = input.Name
	updated.CNPJ = input.CNPJ
	updated.Contact = input.Contact
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Address = input.Address

	s.store.ReplaceSupplier(updated)
	s.closeAndNotify("Fornecedor atualizado",
		fmt.Sprintf("O fornecedor %s foi atualizado com sucesso.", updated.Name))
	return updated, nil
}

func (s *SupplierService) Delete(id string) {
	supplier, ok := s.store.SupplierByID(id)
	if !ok {
		s.log.Debug().Str("supplier_id", id).Msg("delete target not found")
		s.reset()
		return
	}
	s.store.RemoveSupplier(id)
	s.closeAndNotify("Fornecedor excluído",
		fmt.Sprintf("O fornecedor %s foi excluído com sucesso.", supplier.Name))
}

func (s *SupplierService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *SupplierService) OpenEdit(supplier model.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &supplier
}

func (s *SupplierService) OpenDelete(supplier model.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &supplier
}

func (s *SupplierService) Cancel() {
	s.reset()
}

func (s *SupplierService) Selected() (model.Supplier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Supplier{}, false
	}
	return *s.selected, true
}

func (s *SupplierService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *SupplierService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *SupplierService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}
