package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/service"
	"github.com/gestaopub/contratos-service/internal/store"
)

func storeWithContract() (*store.Store, model.Contract) {
	s := store.New()
	contract := model.Contract{
		ID:     "con-1",
		Number: "2024/010",
		Status: model.ContractStatusActive,
		Value:  100000,
	}
	s.InsertContract(contract)
	return s, contract
}

func validPaymentInput() service.PaymentInput {
	return service.PaymentInput{
		ContractID:  "con-1",
		Amount:      8333,
		Date:        "2024-03-15",
		Document:    "PAG2024001",
		Description: "Parcela de março",
	}
}

func TestPaymentService_Create(t *testing.T) {
	st, contract := storeWithContract()
	rec := &recorder{}
	svc := service.NewPaymentService(st, rec, zerolog.Nop())

	created, err := svc.Create(validPaymentInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, contract.Number, created.Contract.Number)

	require.Len(t, st.Payments(), 1)

	n := rec.last(t)
	assert.Equal(t, "Pagamento adicionado", n.Title)
	assert.Equal(t, "O pagamento PAG2024001 foi adicionado com sucesso.", n.Description)
}

func TestPaymentService_CreateUnknownContract(t *testing.T) {
	st, _ := storeWithContract()
	rec := &recorder{}
	svc := service.NewPaymentService(st, rec, zerolog.Nop())

	input := validPaymentInput()
	input.ContractID = "ghost"

	_, err := svc.Create(input)
	require.ErrorIs(t, err, service.ErrReferenceNotFound)
	assert.Empty(t, st.Payments())

	n := rec.last(t)
	assert.Equal(t, "Erro ao salvar pagamento", n.Title)
	assert.Equal(t, "Contrato não encontrado.", n.Description)
	assert.Equal(t, service.NotificationError, n.Kind)
}

func TestPaymentService_Update(t *testing.T) {
	st, _ := storeWithContract()
	rec := &recorder{}
	svc := service.NewPaymentService(st, rec, zerolog.Nop())

	created, err := svc.Create(validPaymentInput())
	require.NoError(t, err)

	input := validPaymentInput()
	input.Amount = 9000
	updated, err := svc.Update(created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9000.0, updated.Amount)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	_, err = svc.Update("ghost", validPaymentInput())
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestPaymentService_Delete(t *testing.T) {
	st, _ := storeWithContract()
	rec := &recorder{}
	svc := service.NewPaymentService(st, rec, zerolog.Nop())

	created, err := svc.Create(validPaymentInput())
	require.NoError(t, err)

	svc.Delete(created.ID)
	assert.Empty(t, st.Payments())
	assert.Equal(t, "Pagamento excluído", rec.last(t).Title)

	before := len(rec.notifications)
	svc.Delete(created.ID)
	assert.Len(t, rec.notifications, before)
}

func TestCommitmentService_Stats(t *testing.T) {
	st, contract := storeWithContract()
	other := model.Contract{ID: "con-2", Number: "2024/011", Status: model.ContractStatusActive}
	st.InsertContract(other)

	rec := &recorder{}
	svc := service.NewCommitmentService(st, rec, zerolog.Nop())

	inputs := []service.CommitmentInput{
		{Number: "EMP2024001", ContractID: contract.ID, Amount: 50000, Date: "2024-01-10", Description: "Empenho inicial"},
		{Number: "EMP2024002", ContractID: contract.ID, Amount: 50000, Date: "2024-06-10", Description: "Reforço de empenho"},
		{Number: "EMP2024003", ContractID: other.ID, Amount: 30000, Date: "2024-02-01", Description: "Empenho da obra"},
	}
	for _, input := range inputs {
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	stats := svc.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 130000.0, stats.TotalAmount)
	assert.Equal(t, 2, stats.ContractsCommitted)
}

func TestCommitmentService_CreateUnknownContract(t *testing.T) {
	st, _ := storeWithContract()
	rec := &recorder{}
	svc := service.NewCommitmentService(st, rec, zerolog.Nop())

	_, err := svc.Create(service.CommitmentInput{
		Number:      "EMP2024009",
		ContractID:  "ghost",
		Amount:      1000,
		Date:        "2024-01-10",
		Description: "Empenho sem contrato",
	})
	require.ErrorIs(t, err, service.ErrReferenceNotFound)
	assert.Equal(t, "Erro ao salvar empenho", rec.last(t).Title)
}
