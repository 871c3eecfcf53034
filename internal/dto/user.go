package dto

type RegisterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

type BudgetResponse struct {
	Budget float64 `json:"budget"`
}
