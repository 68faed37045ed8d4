package model

// Department is an administrative unit that owns a budget and signs contracts.
type Department struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Manager     string  `json:"manager"`
	Budget      float64 `json:"budget"`
	CreatedAt   Date    `json:"created_at"`
}
