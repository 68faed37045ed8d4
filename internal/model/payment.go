package model

// Payment records an amount paid against a contract. Contract is a snapshot
// copy taken at creation time.
type Payment struct {
	ID          string   `json:"id"`
	Contract    Contract `json:"contract"`
	Amount      float64  `json:"amount"`
	Date        Date     `json:"date"`
	Document    string   `json:"document"`
	Description string   `json:"description"`
	CreatedAt   Date     `json:"created_at"`
}
