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

type InvoiceInput struct {
	ContractID  string  `json:"contract_id" validate:"required"`
	Number      string  `json:"number" validate:"required"`
	IssueDate   string  `json:"issue_date" validate:"required,datetime=2006-01-02"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"required,oneof=paid unpaid partial"`
	Description string  `json:"description" validate:"required"`
}

// InvoiceService is the form controller for the invoices (notas fiscais) page.
type InvoiceService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Invoice
	dialogs  Dialogs
}

func NewInvoiceService(st *store.Store, notifier Notifier, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{store: st, notifier: notifier, log: log}
}

func (s *InvoiceService) List() []model.Invoice {
	return s.store.Invoices()
}

func (s *InvoiceService) Create(input InvoiceInput) (model.Invoice, error) {
	invoice, err := s.build(input)
	if err != nil {
		return model.Invoice{}, err
	}
	invoice.ID = uuid.NewString()
	invoice.CreatedAt = model.Today()

	s.store.InsertInvoice(invoice)
	s.closeAndNotify("Nota fiscal adicionada",
		fmt.Sprintf("A nota fiscal %s foi adicionada com sucesso.", invoice.Number))
	return invoice, nil
}

func (s *InvoiceService) Update(id string, input InvoiceInput) (model.Invoice, error) {
	var existing model.Invoice
	found := false
	for _, invoice := range s.store.Invoices() {
		if invoice.ID == id {
			existing = invoice
			found = true
			break
		}
	}
	if !found {
		s.log.Warn().Str("invoice_id", id).Msg("update target not found")
		return model.Invoice{}, ErrNotFound
	}

	updated, err := s.build(input)
	if err != nil {
		return model.Invoice{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	s.store.ReplaceInvoice(updated)
	s.closeAndNotify("Nota fiscal atualizada",
		fmt.Sprintf("A nota fiscal %s foi atualizada com sucesso.", updated.Number))
	return updated, nil
}

func (s *InvoiceService) Delete(id string) {
	for _, invoice := range s.store.Invoices() {
		if invoice.ID == id {
			s.store.RemoveInvoice(id)
			s.closeAndNotify("Nota fiscal excluída",
				fmt.Sprintf("A nota fiscal %s foi excluída com sucesso.", invoice.Number))
			return
		}
	}
	s.log.Debug().Str("invoice_id", id).Msg("delete target not found")
	s.reset()
}

func (s *InvoiceService) build(input InvoiceInput) (model.Invoice, error) {
	if err := validate.Struct(input); err != nil {
		return model.Invoice{}, err
	}

	contract, ok := s.store.ContractByID(input.ContractID)
	if !ok {
		s.notifier.Notify(Notification{
			Title:       "Erro ao salvar nota fiscal",
			Description: "Contrato não encontrado.",
			Kind:        NotificationError,
		})
		return model.Invoice{}, fmt.Errorf("%w: contract %s", ErrReferenceNotFound, input.ContractID)
	}

	issueDate, err := model.ParseDate(input.IssueDate)
	if err != nil {
		return model.Invoice{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return model.Invoice{
		Contract:    contract,
		Number:      input.Number,
		IssueDate:   issueDate,
		Amount:      input.Amount,
		Status:      model.InvoiceStatus(input.Status),
		Description: input.Description,
	}, nil
}

func (s *InvoiceService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *InvoiceService) OpenEdit(invoice model.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &invoice
}

func (s *InvoiceService) OpenDelete(invoice model.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &invoice
}

func (s *InvoiceService) Cancel() {
	s.reset()
}

func (s *InvoiceService) Selected() (model.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Invoice{}, false
	}
	return *s.selected, true
}

func (s *InvoiceService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *InvoiceService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *InvoiceService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}
