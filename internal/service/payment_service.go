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

type PaymentInput struct {
	ContractID  string  `json:"contract_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Document    string  `json:"document" validate:"required"`
	Description string  `json:"description" validate:"required"`
}

// PaymentService is the form controller for the payments page.
type PaymentService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Payment
	dialogs  Dialogs
}

func NewPaymentService(st *store.Store, notifier Notifier, log zerolog.Logger) *PaymentService {
	return &PaymentService{store: st, notifier: notifier, log: log}
}

func (s *PaymentService) List() []model.Payment {
	return s.store.Payments()
}

func (s *PaymentService) Create(input PaymentInput) (model.Payment, error) {
	payment, err := s.build(input)
	if err != nil {
		return model.Payment{}, err
	}
	payment.ID = uuid.NewString()
	payment.CreatedAt = model.Today()

	s.store.InsertPayment(payment)
	s.closeAndNotify("Pagamento adicionado",
		fmt.Sprintf("O pagamento %s foi adicionado com sucesso.", payment.Document))
	return payment, nil
}

func (s *PaymentService) Update(id string, input PaymentInput) (model.Payment, error) {
	var existing model.Payment
	found := false
	for _, payment := range s.store.Payments() {
		if payment.ID == id {
			existing = payment
			found = true
			break
		}
	}
	if !found {
		s.log.Warn().Str("payment_id", id).Msg("update target not found")
		return model.Payment{}, ErrNotFound
	}

	updated, err := s.build(input)
	if err != nil {
		return model.Payment{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	s.store.ReplacePayment(updated)
	s.closeAndNotify("Pagamento atualizado",
		fmt.Sprintf("O pagamento %s foi atualizado com sucesso.", updated.Document))
	return updated, nil
}

func (s *PaymentService) Delete(id string) {
	for _, payment := range s.store.Payments() {
		if payment.ID == id {
			s.store.RemovePayment(id)
			s.closeAndNotify("Pagamento excluído",
				fmt.Sprintf("O pagamento %s foi excluído com sucesso.", payment.Document))
			return
		}
	}
	s.log.Debug().Str("payment_id", id).Msg("delete target not found")
	s.reset()
}

func (s *PaymentService) build(input PaymentInput) (model.Payment, error) {
	if err := validate.Struct(input); err != nil {
		return model.Payment{}, err
	}

	contract, ok := s.store.ContractByID(input.ContractID)
	if !ok {
		s.notifier.Notify(Notification{
			Title:       "Erro ao salvar pagamento",
			Description: "Contrato não encontrado.",
			Kind:        NotificationError,
		})
		return model.Payment{}, fmt.Errorf("%w: contract %s", ErrReferenceNotFound, input.ContractID)
	}

	date, err := model.ParseDate(input.Date)
	if err != nil {
		return model.Payment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return model.Payment{
		Contract:    contract,
		Amount:      input.Amount,
		Date:        date,
		Document:    input.Document,
		Description: input.Description,
	}, nil
}

func (s *PaymentService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *PaymentService) OpenEdit(payment model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &payment
}

func (s *PaymentService) OpenDelete(payment model.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &payment
}

func (s *PaymentService) Cancel() {
	s.reset()
}

func (s *PaymentService) Selected() (model.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Payment{}, false
	}
	return *s.selected, true
}

func (s *PaymentService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *PaymentService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *PaymentService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}
