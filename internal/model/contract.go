package model

type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "active"
	ContractStatusExpired  ContractStatus = "expired"
	ContractStatusPending  ContractStatus = "pending"
	ContractStatusCanceled ContractStatus = "canceled"
)

// ContractType is the procurement modality under which a contract was signed.
type ContractType string

const (
	ContractTypeCredenciamento  ContractType = "Credenciamento"
	ContractTypeDispensaValor   ContractType = "Dispensa em Razão do Valor"
	ContractTypeEmergencial     ContractType = "Emergencial"
	ContractTypeInexigibilidade ContractType = "Inexigibilidade"
	ContractTypeLicitatorio     ContractType = "Licitatório"
	ContractTypeDispensaLocacao ContractType = "Dispensa - Locação de Imóveis"
)

// Contract is a procurement contract. Supplier and Department are snapshot
// copies resolved when the contract is created: editing a supplier later does
// not retroactively change contracts that embedded it.
type Contract struct {
	ID            string         `json:"id"`
	Number        string         `json:"number"`
	ProcessNumber string         `json:"process_number,omitempty"`
	Supplier      Supplier       `json:"supplier"`
	Department    Department     `json:"department"`
	Value         float64        `json:"value"`
	MonthlyValue  float64        `json:"monthly_value,omitempty"`
	ContractType  ContractType   `json:"contract_type,omitempty"`
	StartDate     Date           `json:"start_date"`
	EndDate       Date           `json:"end_date"`
	Status        ContractStatus `json:"status"`
	Object        string         `json:"object,omitempty"`
	Description   string         `json:"description"`
	CreatedAt     Date           `json:"created_at"`
}

// ContractStatuses lists the closed set of valid statuses.
func ContractStatuses() []ContractStatus {
	return []ContractStatus{
		ContractStatusActive,
		ContractStatusExpired,
		ContractStatusPending,
		ContractStatusCanceled,
	}
}

// ContractTypes lists the closed set of procurement modalities.
func ContractTypes() []ContractType {
	return []ContractType{
		ContractTypeCredenciamento,
		ContractTypeDispensaValor,
		ContractTypeEmergencial,
		ContractTypeInexigibilidade,
		ContractTypeLicitatorio,
		ContractTypeDispensaLocacao,
	}
}
