package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ContractRegister is the workbook payload: the dashboard aggregates plus the
// (possibly filtered) contract list.
type ContractRegister struct {
	Stats       derive.DashboardStats
	Contracts   []model.Contract
	GeneratedAt model.Date
}

// FileName builds the attachment name for a register generated on the given
// day.
func FileName(generatedAt model.Date) string {
	return fmt.Sprintf("contratos-%s.xlsx", generatedAt.Format("20060102"))
}

func (g *Generator) Generate(register ContractRegister) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Resumo"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, register); err != nil {
		return nil, err
	}

	contractsSheet := "Contratos"
	if _, err := file.NewSheet(contractsSheet); err != nil {
		return nil, err
	}
	if err := g.writeContracts(file, contractsSheet, register.Contracts); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, register ContractRegister) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Gerado em")
	set("B1", register.GeneratedAt.String())
	set("A2", "Contratos ativos")
	set("B2", register.Stats.ActiveContracts)
	set("A3", "Contratos no total")
	set("B3", register.Stats.TotalContracts)
	set("A4", "Valor total dos contratos")
	set("B4", register.Stats.TotalValue)
	set("A5", "Valor pago")
	set("B5", register.Stats.TotalPaid)
	set("A6", "Fornecedores cadastrados")
	set("B6", register.Stats.SupplierCount)
	set("A7", "Notas fiscais não pagas")
	set("B7", register.Stats.UnpaidInvoices)
	set("A8", "Contratos expirando em 30 dias")
	set("B8", register.Stats.ExpiringContracts)

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func (g *Generator) writeContracts(file *excelize.File, sheet string, contracts []model.Contract) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Número",
		"Processo",
		"Fornecedor",
		"Departamento",
		"Valor",
		"Valor Mensal",
		"Modalidade",
		"Início",
		"Término",
		"Status",
		"Descrição",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, contract := range contracts {
		row := i + 2
		set(fmt.Sprintf("A%d", row), contract.Number)
		set(fmt.Sprintf("B%d", row), contract.ProcessNumber)
		set(fmt.Sprintf("C%d", row), contract.Supplier.Name)
		set(fmt.Sprintf("D%d", row), contract.Department.Name)
		set(fmt.Sprintf("E%d", row), contract.Value)
		set(fmt.Sprintf("F%d", row), contract.MonthlyValue)
		set(fmt.Sprintf("G%d", row), string(contract.ContractType))
		set(fmt.Sprintf("H%d", row), contract.StartDate.Format("02/01/2006"))
		set(fmt.Sprintf("I%d", row), contract.EndDate.Format("02/01/2006"))
		set(fmt.Sprintf("J%d", row), statusLabel(contract.Status))
		set(fmt.Sprintf("K%d", row), contract.Description)
	}

	_ = file.SetColWidth(sheet, "A", "B", 16)
	_ = file.SetColWidth(sheet, "C", "D", 32)
	_ = file.SetColWidth(sheet, "E", "F", 14)
	_ = file.SetColWidth(sheet, "G", "G", 28)
	_ = file.SetColWidth(sheet, "H", "J", 12)
	_ = file.SetColWidth(sheet, "K", "K", 48)
	return nil
}

func statusLabel(status model.ContractStatus) string {
	switch status {
	case model.ContractStatusActive:
		return "Ativo"
	case model.ContractStatusExpired:
		return "Expirado"
	case model.ContractStatusPending:
		return "Pendente"
	case model.ContractStatusCanceled:
		return "Cancelado"
	default:
		return string(status)
	}
}
