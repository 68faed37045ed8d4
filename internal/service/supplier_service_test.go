package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/service"
	"github.com/gestaopub/contratos-service/internal/store"
	"github.com/gestaopub/contratos-service/internal/validate"
)

func validSupplierInput() service.SupplierInput {
	return service.SupplierInput{
		Name:    "Tech Solutions Ltda",
		CNPJ:    "12.345.678/0001-90",
		Contact: "João Silva",
		Email:   "contato@techsolutions.com",
		Phone:   "(11) 98765-4321",
		Address: "Av. Paulista, 1000, São Paulo, SP",
	}
}

func TestSupplierService_Create(t *testing.T) {
	st := store.New()
	rec := &recorder{}
	svc := service.NewSupplierService(st, rec, zerolog.Nop())

	created, err := svc.Create(validSupplierInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	require.Len(t, st.Suppliers(), 1)

	n := rec.last(t)
	assert.Equal(t, "Fornecedor adicionado", n.Title)
	assert.Equal(t, "O fornecedor Tech Solutions Ltda foi adicionado com sucesso.", n.Description)
}

func TestSupplierService_CreateValidation(t *testing.T) {
	st := store.New()
	svc := service.NewSupplierService(st, &recorder{}, zerolog.Nop())

	input := validSupplierInput()
	input.Name = ""
	input.Email = "not-an-email"

	_, err := svc.Create(input)
	require.Error(t, err)

	var verr *validate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "campo obrigatório", verr.Fields["name"])
	assert.Contains(t, verr.Fields, "email")
	assert.NotContains(t, verr.Fields, "cnpj")

	assert.Empty(t, st.Suppliers())
}

func TestSupplierService_UpdatePreservesIdentity(t *testing.T) {
	st := store.New()
	svc := service.NewSupplierService(st, &recorder{}, zerolog.Nop())

	created, err := svc.Create(validSupplierInput())
	require.NoError(t, err)

	input := validSupplierInput()
	input.Contact = "Maria Oliveira"
	updated, err := svc.Update(created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.Equal(t, "Maria Oliveira", updated.Contact)
}

func TestSupplierService_UpdateMissing(t *testing.T) {
	st := store.New()
	svc := service.NewSupplierService(st, &recorder{}, zerolog.Nop())

	_, err := svc.Update("ghost", validSupplierInput())
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSupplierService_UpdateDoesNotPropagateToSnapshots(t *testing.T) {
	st := store.New()
	rec := &recorder{}
	suppliers := service.NewSupplierService(st, rec, zerolog.Nop())
	st.InsertDepartment(model.Department{ID: "dep-1", Name: "Tecnologia da Informação"})

	created, err := suppliers.Create(validSupplierInput())
	require.NoError(t, err)

	contracts := service.NewContractService(st, rec, zerolog.Nop())
	input := validInput()
	input.SupplierID = created.ID
	input.DepartmentID = "dep-1"
	contract, err := contracts.Create(input)
	require.NoError(t, err)

	renamed := validSupplierInput()
	renamed.Name = "Tech Solutions Renomeada"
	_, err = suppliers.Update(created.ID, renamed)
	require.NoError(t, err)

	stored, ok := st.ContractByID(contract.ID)
	require.True(t, ok)
	assert.Equal(t, "Tech Solutions Ltda", stored.Supplier.Name)
}

func TestSupplierService_Delete(t *testing.T) {
	st := store.New()
	rec := &recorder{}
	svc := service.NewSupplierService(st, rec, zerolog.Nop())

	created, err := svc.Create(validSupplierInput())
	require.NoError(t, err)

	svc.Delete(created.ID)
	assert.Empty(t, st.Suppliers())
	assert.Equal(t, "Fornecedor excluído", rec.last(t).Title)

	before := len(rec.notifications)
	svc.Delete(created.ID)
	assert.Len(t, rec.notifications, before)
}
