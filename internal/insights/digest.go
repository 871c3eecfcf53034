package insights

import (
	"sort"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

// DefaultDigestLimit caps the working set for the AI prompt path.
const DefaultDigestLimit = 100

type Timespan struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Digest is the bounded summary of a user's ledger consumed by the
// statistics view and the prompt formatter. It is recomputed on demand and
// never persisted.
type Digest struct {
	Total               float64            `json:"total"`
	CategoryTotals      map[string]float64 `json:"categoryTotals"`
	CategoryPercentages map[string]float64 `json:"categoryPercentages"`
	MonthlyTotals       map[string]float64 `json:"monthlyTotals"`
	Timespan            Timespan           `json:"timespan"`
}

// BuildDigest summarizes the most recent limit expenses by createdAt.
// A limit of 0 or less means DefaultDigestLimit. The second return value is
// false when there is no data; callers must special-case that instead of
// consuming a zeroed digest.
func BuildDigest(expenses []models.Expense, limit int, loc *time.Location) (Digest, bool) {
	if len(expenses) == 0 {
		return Digest{}, false
	}
	if limit <= 0 {
		limit = DefaultDigestLimit
	}

	recent := make([]models.Expense, len(expenses))
	copy(recent, expenses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if limit < len(recent) {
		recent = recent[:limit]
	}

	start := recent[0].CreatedAt
	end := recent[0].CreatedAt
	for _, e := range recent[1:] {
		if e.CreatedAt.Before(start) {
			start = e.CreatedAt
		}
		if e.CreatedAt.After(end) {
			end = e.CreatedAt
		}
	}

	return Digest{
		Total:               Total(recent),
		CategoryTotals:      bucketTotals(GroupByCategory(recent)),
		CategoryPercentages: CategoryPercentages(recent),
		MonthlyTotals:       bucketTotals(GroupByMonth(recent, loc, MonthYearLayout)),
		Timespan:            Timespan{Start: &start, End: &end},
	}, true
}
