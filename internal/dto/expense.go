package dto

// ExpensePayload is the request body for creating or updating an expense.
type ExpensePayload struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
