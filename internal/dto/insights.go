package dto

import "github.com/apurvdugar/Expense-Tracker-App/internal/insights"

// AnalysisResponse carries the generated analysis plus the digest it was
// computed from. The digest is present even when generation fails.
type AnalysisResponse struct {
	Insights    string           `json:"insights"`
	ExpenseData *insights.Digest `json:"expenseData,omitempty"`
}

type TipsResponse struct {
	Insights string `json:"insights"`
}
