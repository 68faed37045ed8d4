package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/model"
)

func filterFixture() []model.Contract {
	return []model.Contract{
		{
			ID:          "c1",
			Number:      "2023/001",
			Supplier:    model.Supplier{ID: "s1", Name: "Tech Solutions Ltda"},
			Department:  model.Department{ID: "d1", Name: "Tecnologia da Informação"},
			Status:      model.ContractStatusActive,
			Description: "Contrato de manutenção de servidores",
		},
		{
			ID:          "c2",
			Number:      "2023/002",
			Supplier:    model.Supplier{ID: "s2", Name: "Construções ABC S.A."},
			Department:  model.Department{ID: "d2", Name: "Infraestrutura"},
			Status:      model.ContractStatusActive,
			Description: "Construção de nova sede administrativa",
		},
		{
			ID:          "c3",
			Number:      "2023/003",
			Supplier:    model.Supplier{ID: "s3", Name: "Serviços Gerais Ltda"},
			Department:  model.Department{ID: "d3", Name: "Administrativo"},
			Status:      model.ContractStatusExpired,
			Description: "Serviços de limpeza e copa",
		},
	}
}

func TestFilterContracts(t *testing.T) {
	contracts := filterFixture()

	tests := []struct {
		name   string
		filter derive.ContractFilter
		want   []string
	}{
		{name: "NoFilterMatchesAll", filter: derive.ContractFilter{}, want: []string{"c1", "c2", "c3"}},
		{name: "QueryOnSupplierName", filter: derive.ContractFilter{Query: "tech"}, want: []string{"c1"}},
		{name: "QueryCaseInsensitive", filter: derive.ContractFilter{Query: "TECH"}, want: []string{"c1"}},
		{name: "QueryOnNumber", filter: derive.ContractFilter{Query: "2023/002"}, want: []string{"c2"}},
		{name: "QueryOnDescription", filter: derive.ContractFilter{Query: "limpeza"}, want: []string{"c3"}},
		{name: "QuerySubstringAcrossFields", filter: derive.ContractFilter{Query: "ltda"}, want: []string{"c1", "c3"}},
		{name: "QueryNoMatch", filter: derive.ContractFilter{Query: "inexistente"}, want: []string{}},
		{name: "StatusOnly", filter: derive.ContractFilter{Status: model.ContractStatusExpired}, want: []string{"c3"}},
		{name: "DepartmentOnly", filter: derive.ContractFilter{DepartmentID: "d2"}, want: []string{"c2"}},
		{name: "SupplierOnly", filter: derive.ContractFilter{SupplierID: "s1"}, want: []string{"c1"}},
		{
			name:   "DimensionsCombineWithAND",
			filter: derive.ContractFilter{Query: "ltda", Status: model.ContractStatusActive},
			want:   []string{"c1"},
		},
		{
			name:   "ANDCanExcludeEverything",
			filter: derive.ContractFilter{SupplierID: "s1", DepartmentID: "d2"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := derive.FilterContracts(contracts, tt.filter)
			ids := make([]string, 0, len(got))
			for _, contract := range got {
				ids = append(ids, contract.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterContracts_PreservesOrderAndInput(t *testing.T) {
	contracts := filterFixture()
	original := filterFixture()

	got := derive.FilterContracts(contracts, derive.ContractFilter{Query: "ltda"})
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c3", got[1].ID)

	// Input untouched.
	assert.Equal(t, original, contracts)
}

func TestContractFilter_IsZero(t *testing.T) {
	assert.True(t, derive.ContractFilter{}.IsZero())
	assert.False(t, derive.ContractFilter{Query: "x"}.IsZero())
	assert.False(t, derive.ContractFilter{Status: model.ContractStatusActive}.IsZero())
}
