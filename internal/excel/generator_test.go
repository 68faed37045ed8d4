package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/excel"
	"github.com/gestaopub/contratos-service/internal/model"
)

func sampleRegister() excel.ContractRegister {
	return excel.ContractRegister{
		Stats: derive.DashboardStats{
			TotalContracts:    2,
			ActiveContracts:   1,
			TotalValue:        370000,
			TotalPaid:         125000,
			SupplierCount:     2,
			UnpaidInvoices:    1,
			ExpiringContracts: 1,
		},
		Contracts: []model.Contract{
			{
				Number:       "2023/001",
				Supplier:     model.Supplier{Name: "Tech Solutions Ltda"},
				Department:   model.Department{Name: "Tecnologia da Informação"},
				Value:        250000,
				ContractType: model.ContractTypeLicitatorio,
				StartDate:    model.NewDate(2023, time.January, 15),
				EndDate:      model.NewDate(2024, time.January, 14),
				Status:       model.ContractStatusActive,
				Description:  "Contrato de manutenção de servidores",
			},
			{
				Number:      "2023/003",
				Supplier:    model.Supplier{Name: "Serviços Gerais Ltda"},
				Department:  model.Department{Name: "Administrativo"},
				Value:       120000,
				Status:      model.ContractStatusExpired,
				Description: "Serviços de limpeza e copa",
			},
		},
		GeneratedAt: model.NewDate(2023, time.November, 5),
	}
}

func TestGenerate(t *testing.T) {
	data, err := excel.NewGenerator().Generate(sampleRegister())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	assert.ElementsMatch(t, []string{"Resumo", "Contratos"}, file.GetSheetList())

	cell := func(sheet, ref string) string {
		value, err := file.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Gerado em", cell("Resumo", "A1"))
	assert.Equal(t, "2023-11-05", cell("Resumo", "B1"))
	assert.Equal(t, "1", cell("Resumo", "B2"))
	assert.Equal(t, "2", cell("Resumo", "B3"))
	assert.Equal(t, "370000", cell("Resumo", "B4"))

	assert.Equal(t, "Número", cell("Contratos", "A1"))
	assert.Equal(t, "2023/001", cell("Contratos", "A2"))
	assert.Equal(t, "Tech Solutions Ltda", cell("Contratos", "C2"))
	assert.Equal(t, "15/01/2023", cell("Contratos", "H2"))
	assert.Equal(t, "Ativo", cell("Contratos", "J2"))
	assert.Equal(t, "Expirado", cell("Contratos", "J3"))
	// The second contract has no dates; the cells stay empty.
	assert.Equal(t, "", cell("Contratos", "H3"))
}

func TestGenerateEmptyRegister(t *testing.T) {
	data, err := excel.NewGenerator().Generate(excel.ContractRegister{GeneratedAt: model.NewDate(2023, time.November, 5)})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Contratos")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "contratos-20231105.xlsx", excel.FileName(model.NewDate(2023, time.November, 5)))
}
