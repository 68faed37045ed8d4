package model

// Commitment is a budget commitment (empenho) that earmarks funds against a
// contract. Contract is a snapshot copy taken at creation time.
type Commitment struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	Contract    Contract `json:"contract"`
	Amount      float64  `json:"amount"`
	Date        Date     `json:"date"`
	Description string   `json:"description"`
	CreatedAt   Date     `json:"created_at"`
}
