package store

import (
	"github.com/google/uuid"

	"github.com/gestaopub/contratos-service/internal/model"
)

// Seed builds a store pre-loaded with the demonstration dataset. Contract
// periods are anchored to the current day so the expiring-contracts view has
// something to show regardless of when the service starts.
func Seed() *Store {
	s := New()
	today := model.Today()

	suppliers := []model.Supplier{
		{
			ID:        uuid.NewString(),
			Name:      "Tech Solutions Ltda",
			CNPJ:      "12.345.678/0001-90",
			Contact:   "João Silva",
			Email:     "contato@techsolutions.com",
			Phone:     "(11) 98765-4321",
			Address:   "Av. Paulista, 1000, São Paulo, SP",
			CreatedAt: today.AddDays(-540),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Construções ABC S.A.",
			CNPJ:      "98.765.432/0001-10",
			Contact:   "Maria Oliveira",
			Email:     "contato@construcoes.com",
			Phone:     "(11) 91234-5678",
			Address:   "Rua Augusta, 500, São Paulo, SP",
			CreatedAt: today.AddDays(-480),
		},
		{
			ID:        uuid.NewString(),
			Name:      "Serviços Gerais Ltda",
			CNPJ:      "45.678.901/0001-23",
			Contact:   "Pedro Santos",
			Email:     "contato@servicosgerais.com",
			Phone:     "(11) 93456-7890",
			Address:   "Av. Brigadeiro Faria Lima, 1500, São Paulo, SP",
			CreatedAt: today.AddDays(-420),
		},
	}

	departments := []model.Department{
		{
			ID:          uuid.NewString(),
			Name:        "Tecnologia da Informação",
			Description: "Responsável pela infraestrutura de TI e sistemas",
			Manager:     "Carlos Mendes",
			Budget:      1500000,
			CreatedAt:   today.AddDays(-600),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Infraestrutura",
			Description: "Responsável por construções e manutenções",
			Manager:     "Ana Ferreira",
			Budget:      3000000,
			CreatedAt:   today.AddDays(-595),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Administrativo",
			Description: "Responsável pelos processos administrativos",
			Manager:     "Renato Alves",
			Budget:      1000000,
			CreatedAt:   today.AddDays(-590),
		},
	}

	contracts := []model.Contract{
		{
			ID:            uuid.NewString(),
			Number:        "2023/001",
			ProcessNumber: "PROC-2023/001",
			Supplier:      suppliers[0],
			Department:    departments[0],
			Value:         250000,
			MonthlyValue:  20833,
			ContractType:  model.ContractTypeLicitatorio,
			StartDate:     today.AddDays(-345),
			EndDate:       today.AddDays(20),
			Status:        model.ContractStatusActive,
			Object:        "Manutenção preventiva e corretiva de servidores e infraestrutura de TI",
			Description:   "Contrato de manutenção de servidores e equipamentos de TI incluindo suporte 24/7",
			CreatedAt:     today.AddDays(-360),
		},
		{
			ID:            uuid.NewString(),
			Number:        "2023/002",
			ProcessNumber: "PROC-2023/002",
			Supplier:      suppliers[1],
			Department:    departments[1],
			Value:         750000,
			MonthlyValue:  62500,
			ContractType:  model.ContractTypeLicitatorio,
			StartDate:     today.AddDays(-120),
			EndDate:       today.AddDays(240),
			Status:        model.ContractStatusActive,
			Object:        "Construção e reforma da nova sede administrativa",
			Description:   "Construção de nova sede administrativa incluindo serviços de alvenaria, hidráulica e elétrica",
			CreatedAt:     today.AddDays(-130),
		},
		{
			ID:            uuid.NewString(),
			Number:        "2023/003",
			ProcessNumber: "PROC-2023/003",
			Supplier:      suppliers[2],
			Department:    departments[2],
			Value:         120000,
			MonthlyValue:  10000,
			ContractType:  model.ContractTypeDispensaValor,
			StartDate:     today.AddDays(-300),
			EndDate:       today.AddDays(-90),
			Status:        model.ContractStatusExpired,
			Object:        "Serviços de limpeza e manutenção predial",
			Description:   "Serviços de limpeza e copa para o edifício sede",
			CreatedAt:     today.AddDays(-315),
		},
	}

	payments := []model.Payment{
		{
			ID:          uuid.NewString(),
			Contract:    contracts[0],
			Amount:      62500,
			Date:        today.AddDays(-250),
			Document:    "PAG2023001",
			Description: "Primeiro trimestre",
			CreatedAt:   today.AddDays(-250),
		},
		{
			ID:          uuid.NewString(),
			Contract:    contracts[0],
			Amount:      62500,
			Date:        today.AddDays(-160),
			Document:    "PAG2023002",
			Description: "Segundo trimestre",
			CreatedAt:   today.AddDays(-160),
		},
		{
			ID:          uuid.NewString(),
			Contract:    contracts[1],
			Amount:      250000,
			Date:        today.AddDays(-60),
			Document:    "PAG2023003",
			Description: "Primeira fase da construção",
			CreatedAt:   today.AddDays(-60),
		},
	}

	invoices := []model.Invoice{
		{
			ID:          uuid.NewString(),
			Contract:    contracts[0],
			Number:      "NF00123",
			IssueDate:   today.AddDays(-260),
			Amount:      62500,
			Status:      model.InvoiceStatusPaid,
			Description: "Fatura referente ao primeiro trimestre",
			CreatedAt:   today.AddDays(-260),
		},
		{
			ID:          uuid.NewString(),
			Contract:    contracts[0],
			Number:      "NF00456",
			IssueDate:   today.AddDays(-170),
			Amount:      62500,
			Status:      model.InvoiceStatusPaid,
			Description: "Fatura referente ao segundo trimestre",
			CreatedAt:   today.AddDays(-170),
		},
		{
			ID:          uuid.NewString(),
			Contract:    contracts[1],
			Number:      "NF00789",
			IssueDate:   today.AddDays(-70),
			Amount:      250000,
			Status:      model.InvoiceStatusPaid,
			Description: "Fatura primeira fase da construção",
			CreatedAt:   today.AddDays(-70),
		},
		{
			ID:          uuid.NewString(),
			Contract:    contracts[1],
			Number:      "NF00790",
			IssueDate:   today.AddDays(-10),
			Amount:      250000,
			Status:      model.InvoiceStatusUnpaid,
			Description: "Fatura segunda fase da construção",
			CreatedAt:   today.AddDays(-10),
		},
	}

	commitments := []model.Commitment{
		{
			ID:          uuid.NewString(),
			Number:      "EMP2023001",
			Contract:    contracts[0],
			Amount:      250000,
			Date:        contracts[0].CreatedAt,
			Description: "Empenho para contrato de manutenção de servidores",
			CreatedAt:   contracts[0].CreatedAt,
		},
		{
			ID:          uuid.NewString(),
			Number:      "EMP2023002",
			Contract:    contracts[1],
			Amount:      750000,
			Date:        contracts[1].CreatedAt,
			Description: "Empenho para construção de sede administrativa",
			CreatedAt:   contracts[1].CreatedAt,
		},
		{
			ID:          uuid.NewString(),
			Number:      "EMP2023003",
			Contract:    contracts[2],
			Amount:      120000,
			Date:        contracts[2].CreatedAt,
			Description: "Empenho para serviços de limpeza e copa",
			CreatedAt:   contracts[2].CreatedAt,
		},
	}

	// Lists are newest-first; the literals above are oldest-first, so insert
	// in order and let prepend reverse them.
	for _, supplier := range suppliers {
		s.InsertSupplier(supplier)
	}
	for _, department := range departments {
		s.InsertDepartment(department)
	}
	for _, contract := range contracts {
		s.InsertContract(contract)
	}
	for _, payment := range payments {
		s.InsertPayment(payment)
	}
	for _, invoice := range invoices {
		s.InsertInvoice(invoice)
	}
	for _, commitment := range commitments {
		s.InsertCommitment(commitment)
	}
	return s
}
