package insights

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

const csvLargestCount = 5

// ExportCSV renders the three-section insights export: current-month total,
// categories sorted by amount descending, and the five largest transactions
// of the current month. Records go through encoding/csv, so descriptions
// containing delimiters or newlines are quoted per RFC 4180.
func ExportCSV(expenses []models.Expense, ref time.Time, loc *time.Location) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	b.WriteString("Expense Insights\n\n")

	monthly := filterMonth(expenses, ref, loc)
	if err := w.Write([]string{"Monthly Total", formatAmount(Total(monthly))}); err != nil {
		return "", err
	}
	w.Flush()

	b.WriteString("\nTop Categories\n")
	if err := w.Write([]string{"Category", "Amount"}); err != nil {
		return "", err
	}
	for _, ct := range TopCategories(expenses, len(expenses)) {
		if err := w.Write([]string{ct.Category, formatAmount(ct.Total)}); err != nil {
			return "", err
		}
	}
	w.Flush()

	b.WriteString("\nLargest Transactions\n")
	if err := w.Write([]string{"Date", "Description", "Category", "Amount"}); err != nil {
		return "", err
	}
	for _, e := range LargestTransactions(monthly, csvLargestCount) {
		record := []string{
			e.CreatedAt.In(loc).Format(promptDateLayout),
			e.Description,
			e.Category,
			formatAmount(e.Amount),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return b.String(), nil
}
