package insights

import (
	"math"
	"sort"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

// Budget usage bands.
const (
	BandNormal   = "normal"
	BandWarning  = "warning"
	BandCritical = "critical"
)

// Month-over-month directions.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
	DirectionNoData   = "no-data"
)

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type BudgetStatus struct {
	Spent    float64 `json:"spent"`
	Budget   float64 `json:"budget"`
	Percent  float64 `json:"percent"`
	Exceeded bool    `json:"exceeded"`
	Band     string  `json:"band"`
}

type MonthComparison struct {
	ThisMonthTotal float64 `json:"thisMonthTotal"`
	LastMonthTotal float64 `json:"lastMonthTotal"`
	PercentChange  float64 `json:"percentChange"`
	Direction      string  `json:"direction"`
}

// Total sums all expense amounts.
func Total(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// CategoryTotals returns per-category sums in first-seen category order.
// The totals always add up to Total(expenses).
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	buckets := GroupByCategory(expenses)
	totals := make([]CategoryTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, CategoryTotal{Category: b.Key, Total: b.Total()})
	}
	return totals
}

// CategoryPercentages maps each category to its share of the grand total,
// rounded to one decimal. An empty or zero-total input yields an empty map;
// there is no division by zero here.
func CategoryPercentages(expenses []models.Expense) map[string]float64 {
	grand := Total(expenses)
	percentages := make(map[string]float64)
	if grand == 0 {
		return percentages
	}
	for _, ct := range CategoryTotals(expenses) {
		percentages[ct.Category] = round1(ct.Total / grand * 100)
	}
	return percentages
}

// TopCategories returns the n largest category totals, descending by amount.
// Equal totals keep first-seen category order.
func TopCategories(expenses []models.Expense, n int) []CategoryTotal {
	totals := CategoryTotals(expenses)
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	if n < 0 {
		n = 0
	}
	if n > len(totals) {
		n = len(totals)
	}
	return totals[:n]
}

// LargestTransactions returns the n largest expenses, descending by amount.
// Equal amounts keep input order. The input slice is not reordered.
func LargestTransactions(expenses []models.Expense, n int) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// MonthToDateTotal sums expenses created in the same local calendar month
// and year as ref.
func MonthToDateTotal(expenses []models.Expense, ref time.Time, loc *time.Location) float64 {
	return Total(filterMonth(expenses, ref, loc))
}

// BudgetProgress reports spend against a monthly limit for ref's month.
// A zero budget is treated as fully used rather than dividing by zero.
func BudgetProgress(expenses []models.Expense, budget float64, ref time.Time, loc *time.Location) BudgetStatus {
	spent := MonthToDateTotal(expenses, ref, loc)
	status := BudgetStatus{Spent: spent, Budget: budget}

	if budget <= 0 {
		status.Percent = 100
		status.Exceeded = spent > 0
	} else {
		status.Percent = round1(math.Min(spent/budget*100, 100))
		status.Exceeded = spent >= budget
	}

	switch {
	case status.Percent > 90:
		status.Band = BandCritical
	case status.Percent > 75:
		status.Band = BandWarning
	default:
		status.Band = BandNormal
	}
	return status
}

// MonthOverMonth compares ref's month against the previous calendar month,
// rolling the year back across January. With no spend last month the change
// is reported as no-data instead of a division by zero.
func MonthOverMonth(expenses []models.Expense, ref time.Time, loc *time.Location) MonthComparison {
	local := ref.In(loc)
	lastMonth := local.Month() - 1
	lastYear := local.Year()
	if local.Month() == time.January {
		lastMonth = time.December
		lastYear--
	}

	cmp := MonthComparison{}
	for _, e := range expenses {
		d := e.CreatedAt.In(loc)
		switch {
		case d.Month() == local.Month() && d.Year() == local.Year():
			cmp.ThisMonthTotal += e.Amount
		case d.Month() == lastMonth && d.Year() == lastYear:
			cmp.LastMonthTotal += e.Amount
		}
	}

	if cmp.LastMonthTotal == 0 {
		cmp.Direction = DirectionNoData
		return cmp
	}

	diff := cmp.ThisMonthTotal - cmp.LastMonthTotal
	cmp.PercentChange = round1(diff / cmp.LastMonthTotal * 100)
	if diff > 0 {
		cmp.Direction = DirectionIncrease
	} else {
		cmp.Direction = DirectionDecrease
	}
	return cmp
}

func filterMonth(expenses []models.Expense, ref time.Time, loc *time.Location) []models.Expense {
	local := ref.In(loc)
	var out []models.Expense
	for _, e := range expenses {
		d := e.CreatedAt.In(loc)
		if d.Month() == local.Month() && d.Year() == local.Year() {
			out = append(out, e)
		}
	}
	return out
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
