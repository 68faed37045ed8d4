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

type CommitmentInput struct {
	Number      string  `json:"number" validate:"required"`
	ContractID  string  `json:"contract_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"required"`
}

// CommitmentService is the form controller for the commitments (empenhos) page.
type CommitmentService struct {
	store    *store.Store
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Commitment
	dialogs  Dialogs
}

func NewCommitmentService(st *store.Store, notifier Notifier, log zerolog.Logger) *CommitmentService {
	return &CommitmentService{store: st, notifier: notifier, log: log}
}

func (s *CommitmentService) List() []model.Commitment {
	return s.store.Commitments()
}

// Stats recomputes the commitments page cards: total count, committed amount,
// and how many distinct contracts carry at least one commitment.
func (s *CommitmentService) Stats() derive.CommitmentStats {
	return derive.Commitments(s.store.Commitments())
}

func (s *CommitmentService) Create(input CommitmentInput) (model.Commitment, error) {
	commitment, err := s.build(input)
	if err != nil {
		return model.Commitment{}, err
	}
	commitment.ID = uuid.NewString()
	commitment.CreatedAt = model.Today()

	s.store.InsertCommitment(commitment)
	s.closeAndNotify("Empenho adicionado",
		fmt.Sprintf("O empenho %s foi adicionado com sucesso.", commitment.Number))
	return commitment, nil
}

func (s *CommitmentService) Update(id string, input CommitmentInput) (model.Commitment, error) {
	var existing model.Commitment
	found := false
	for _, commitment := range s.store.Commitments() {
		if commitment.ID == id {
			existing = commitment
			found = true
			break
		}
	}
	if !found {
		s.log.Warn().Str("commitment_id", id).Msg("update target not found")
		return model.Commitment{}, ErrNotFound
	}

	updated, err := s.build(input)
	if err != nil {
		return model.Commitment{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	s.store.ReplaceCommitment(updated)
	s.closeAndNotify("Empenho atualizado",
		fmt.Sprintf("O empenho %s foi atualizado com sucesso.", updated.Number))
	return updated, nil
}

func (s *CommitmentService) Delete(id string) {
	for _, commitment := range s.store.Commitments() {
		if commitment.ID == id {
			s.store.RemoveCommitment(id)
			s.closeAndNotify("Empenho excluído",
				fmt.Sprintf("O empenho %s foi excluído com sucesso.", commitment.Number))
			return
		}
	}
	s.log.Debug().Str("commitment_id", id).Msg("delete target not found")
	s.reset()
}

func (s *CommitmentService) build(input CommitmentInput) (model.Commitment, error) {
	if err := validate.Struct(input); err != nil {
		return model.Commitment{}, err
	}

	contract, ok := s.store.ContractByID(input.ContractID)
	if !ok {
		s.notifier.Notify(Notification{
			Title:       "Erro ao salvar empenho",
			Description: "Contrato não encontrado.",
			Kind:        NotificationError,
		})
		return model.Commitment{}, fmt.Errorf("%w: contract %s", ErrReferenceNotFound, input.ContractID)
	}

	date, err := model.ParseDate(input.Date)
	if err != nil {
		return model.Commitment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return model.Commitment{
		Number:      input.Number,
		Contract:    contract,
		Amount:      input.Amount,
		Date:        date,
		Description: input.Description,
	}, nil
}

func (s *CommitmentService) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Add: true}
	s.selected = nil
}

func (s *CommitmentService) OpenEdit(commitment model.Commitment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Edit: true}
	s.selected = &commitment
}

func (s *CommitmentService) OpenDelete(commitment model.Commitment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{Delete: true}
	s.selected = &commitment
}

func (s *CommitmentService) Cancel() {
	s.reset()
}

func (s *CommitmentService) Selected() (model.Commitment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return model.Commitment{}, false
	}
	return *s.selected, true
}

func (s *CommitmentService) Dialogs() Dialogs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

func (s *CommitmentService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogs = Dialogs{}
	s.selected = nil
}

func (s *CommitmentService) closeAndNotify(title, description string) {
	s.reset()
	s.notifier.Notify(Notification{Title: title, Description: description, Kind: NotificationSuccess})
}
