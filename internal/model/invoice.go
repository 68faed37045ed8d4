package model

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
)

// Invoice is a fiscal note (nota fiscal) issued against a contract.
// Contract is a snapshot copy taken at creation time.
type Invoice struct {
	ID          string        `json:"id"`
	Contract    Contract      `json:"contract"`
	Number      string        `json:"number"`
	IssueDate   Date          `json:"issue_date"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   Date          `json:"created_at"`
}

func InvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusUnpaid, InvoiceStatusPartial}
}
