package insights

import (
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

// Statistics is the payload of the statistics endpoint. The field names are
// a contract with the presentation layer and must not change.
type Statistics struct {
	MonthlyTotalSpending float64            `json:"monthlyTotalSpending"`
	CategorySpending     map[string]float64 `json:"categorySpending"`
	MonthlySpending      map[string]float64 `json:"monthlySpending"`
	HighestExpense       *models.Expense    `json:"highestExpense"`
	LowestExpense        *models.Expense    `json:"lowestExpense"`
}

// Summary collects the derived views the insights page renders alongside the
// raw statistics.
type Summary struct {
	TopCategories       []CategoryTotal  `json:"topCategories"`
	LargestTransactions []models.Expense `json:"largestTransactions"`
	MonthOverMonth      MonthComparison  `json:"monthOverMonth"`
	BudgetProgress      BudgetStatus     `json:"budgetProgress"`
}

// ComputeStatistics derives the statistics view from a ledger snapshot.
// Empty input yields zero totals and nil highest/lowest; the "no data"
// response is the caller's decision.
func ComputeStatistics(expenses []models.Expense, ref time.Time, loc *time.Location) Statistics {
	stats := Statistics{
		MonthlyTotalSpending: MonthToDateTotal(expenses, ref, loc),
		CategorySpending:     bucketTotals(GroupByCategory(expenses)),
		MonthlySpending:      bucketTotals(GroupByMonth(expenses, loc, MonthLayout)),
	}

	sorted := LargestTransactions(expenses, len(expenses))
	if len(sorted) > 0 {
		highest := sorted[0]
		lowest := sorted[len(sorted)-1]
		stats.HighestExpense = &highest
		stats.LowestExpense = &lowest
	}
	return stats
}

// ComputeSummary derives the insights-page widgets in one pass over the
// snapshot.
func ComputeSummary(expenses []models.Expense, budget float64, ref time.Time, loc *time.Location) Summary {
	return Summary{
		TopCategories:       TopCategories(expenses, 3),
		LargestTransactions: LargestTransactions(filterMonth(expenses, ref, loc), 3),
		MonthOverMonth:      MonthOverMonth(expenses, ref, loc),
		BudgetProgress:      BudgetProgress(expenses, budget, ref, loc),
	}
}
