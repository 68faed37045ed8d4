package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gestaopub/contratos-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ContractStatement is the printable "extrato do contrato": the contract
// itself plus the payments recorded against it.
type ContractStatement struct {
	Contract  model.Contract
	Payments  []model.Payment
	TotalPaid float64
	IssuedAt  model.Date
}

// FileName builds the attachment name for a statement.
func FileName(contract model.Contract) string {
	number := strings.NewReplacer("/", "-", "\\", "-", " ", "-").Replace(contract.Number)
	return fmt.Sprintf("extrato-contrato-%s.pdf", number)
}

func (g *Generator) Generate(statement ContractStatement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Core fonts are cp1252; the translator covers the Portuguese accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contract := statement.Contract

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Extrato do Contrato Administrativo"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Contrato nº %s (%s — %s)",
		contract.Number,
		contract.StartDate.Format("02/01/2006"),
		contract.EndDate.Format("02/01/2006"),
	)), "", 1, "C", false, 0, "")
	if contract.ProcessNumber != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Processo %s", contract.ProcessNumber)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	supplierBlock(pdf, tr, contract.Supplier)
	pdf.Ln(2)
	departmentBlock(pdf, tr, contract.Department)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Objeto"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	object := contract.Object
	if object == "" {
		object = contract.Description
	}
	pdf.MultiCell(0, 5, tr(object), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Valores"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Valor total: R$ %.2f", contract.Value)), "", 1, "L", false, 0, "")
	if contract.MonthlyValue > 0 {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Valor mensal: R$ %.2f", contract.MonthlyValue)), "", 1, "L", false, 0, "")
	}
	if contract.ContractType != "" {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Modalidade: %s", contract.ContractType)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Pagamentos"), "", 1, "L", false, 0, "")

	headers := []string{"Documento", "Data", "Descrição", "Valor (R$)"}
	colWidths := []float64{40, 30, 75, 35}
	drawTableRow(pdf, tr, headers, colWidths, true)
	for _, payment := range statement.Payments {
		drawTableRow(pdf, tr, []string{
			payment.Document,
			payment.Date.Format("02/01/2006"),
			payment.Description,
			fmt.Sprintf("%.2f", payment.Amount),
		}, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total pago: R$ %.2f de R$ %.2f", statement.TotalPaid, contract.Value)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Emitido em %s", statement.IssuedAt.Format("02/01/2006"))), "", 1, "R", false, 0, "")

	pdf.Ln(6)
	signatureLine(pdf, tr, "Fornecedor", contract.Supplier.Contact)
	signatureLine(pdf, tr, "Gestor do contrato", contract.Department.Manager)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func supplierBlock(pdf *gofpdf.Fpdf, tr func(string) string, supplier model.Supplier) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("Fornecedor"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		supplier.Name,
		fmt.Sprintf("CNPJ: %s", safeValue(supplier.CNPJ)),
		fmt.Sprintf("Contato: %s — %s", safeValue(supplier.Contact), safeValue(supplier.Email)),
		fmt.Sprintf("Endereço: %s", safeValue(supplier.Address)),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func departmentBlock(pdf *gofpdf.Fpdf, tr func(string) string, department model.Department) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("Departamento"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		department.Name,
		fmt.Sprintf("Gestor: %s", safeValue(department.Manager)),
		fmt.Sprintf("Orçamento: R$ %.2f", department.Budget),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureLine(pdf *gofpdf.Fpdf, tr func(string) string, label, name string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name))), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}
