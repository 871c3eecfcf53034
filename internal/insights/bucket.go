package insights

import (
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

// Month label layouts. The digest and AI prompt use month+year; the
// statistics endpoint keeps the legacy month-only label its clients bind to.
const (
	MonthYearLayout = "January 2006"
	MonthLayout     = "January"
)

// Bucket is a group of expense amounts sharing a key.
type Bucket struct {
	Key     string
	Amounts []float64
}

// Total sums the bucket's amounts.
func (b Bucket) Total() float64 {
	var total float64
	for _, a := range b.Amounts {
		total += a
	}
	return total
}

// GroupByCategory buckets amounts by category. Buckets appear in the order
// each category is first seen, which keeps downstream tie-breaking and
// snapshot tests deterministic.
func GroupByCategory(expenses []models.Expense) []Bucket {
	return group(expenses, func(e models.Expense) string {
		if e.Category == "" {
			return "other"
		}
		return e.Category
	})
}

// GroupByMonth buckets amounts by calendar month of createdAt, labelled with
// the given layout in the given location. Two timestamps in the same local
// calendar month always share a bucket.
func GroupByMonth(expenses []models.Expense, loc *time.Location, layout string) []Bucket {
	return group(expenses, func(e models.Expense) string {
		return e.CreatedAt.In(loc).Format(layout)
	})
}

func group(expenses []models.Expense, keyOf func(models.Expense) string) []Bucket {
	var buckets []Bucket
	index := make(map[string]int)
	for _, e := range expenses {
		key := keyOf(e)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key})
		}
		buckets[i].Amounts = append(buckets[i].Amounts, e.Amount)
	}
	return buckets
}

func bucketTotals(buckets []Bucket) map[string]float64 {
	totals := make(map[string]float64, len(buckets))
	for _, b := range buckets {
		totals[b.Key] = b.Total()
	}
	return totals
}
