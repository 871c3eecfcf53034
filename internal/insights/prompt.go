package insights

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

// Currency symbol is presentation-only; the engine itself stays
// currency-agnostic.
const promptCurrency = "₹"

const promptDateLayout = "02/01/2006"

// AnalysisPrompt renders a digest into the fixed analysis template. The
// output is byte-stable for a given digest: categories are ordered by share
// descending (name ascending on ties) and months chronologically, so tests
// can assert on the exact prompt instead of on generated prose.
func AnalysisPrompt(d Digest) string {
	var b strings.Builder

	b.WriteString("As a financial advisor, analyze this expense data and provide detailed insights:\n")
	fmt.Fprintf(&b, "Total Spending: %s%s\n", promptCurrency, formatAmount(d.Total))
	fmt.Fprintf(&b, "Time Period: %s to %s\n", formatDate(d.Timespan.Start), formatDate(d.Timespan.End))

	b.WriteString("Category Breakdown (% of total):\n")
	for _, category := range orderedCategories(d.CategoryPercentages) {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", category, d.CategoryPercentages[category])
	}

	b.WriteString("Monthly Spending:\n")
	for _, month := range orderedMonths(d.MonthlyTotals) {
		fmt.Fprintf(&b, "- %s: %s%s\n", month, promptCurrency, formatAmount(d.MonthlyTotals[month]))
	}

	b.WriteString("Please provide:\n")
	b.WriteString("1. Key Observations\n")
	b.WriteString("2. Budget Optimization\n")
	b.WriteString("3. Risk Analysis\n")
	b.WriteString("4. Positive Habits\n")
	b.WriteString("5. Action Items\n")
	b.WriteString("Format the response with bullet points.")

	return b.String()
}

// TipsPrompt renders a flat per-expense listing for the tips flow, which
// bypasses the digest. Deterministic for a given expense list and order.
func TipsPrompt(expenses []models.Expense, loc *time.Location) string {
	var b strings.Builder

	b.WriteString("You are a financial advisor for Indian users. Analyze the following expenses " +
		"and provide 5 specific, actionable, and personalized money-saving tips.\n\n")

	b.WriteString("Expenses:\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "- %s%s spent on %s (%s) on %s\n",
			promptCurrency, formatAmount(e.Amount), e.Category, e.Description,
			e.CreatedAt.In(loc).Format(promptDateLayout))
	}

	b.WriteString("\nGuidelines:\n")
	b.WriteString("- Focus on practical, India-specific recommendations (e.g., local alternatives, budget brands, government schemes)\n")
	b.WriteString("- Provide specific numbers or percentages where possible\n")
	b.WriteString("- Prioritize tips based on the highest spending categories\n")
	b.WriteString("- Keep each tip concise (2-3 sentences max)\n")
	b.WriteString("- Use Indian Rupees (₹) for all monetary values\n\n")

	b.WriteString("Format your response as:\n")
	b.WriteString("1. [Category]: [Specific tip with actionable advice]\n")
	b.WriteString("2. [Category]: [Specific tip with actionable advice]\n")
	b.WriteString("...and so on.")

	return b.String()
}

func orderedCategories(percentages map[string]float64) []string {
	categories := make([]string, 0, len(percentages))
	for c := range percentages {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if percentages[categories[i]] != percentages[categories[j]] {
			return percentages[categories[i]] > percentages[categories[j]]
		}
		return categories[i] < categories[j]
	})
	return categories
}

func orderedMonths(totals map[string]float64) []string {
	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		ti, erri := time.Parse(MonthYearLayout, months[i])
		tj, errj := time.Parse(MonthYearLayout, months[j])
		if erri != nil || errj != nil {
			return months[i] < months[j]
		}
		return ti.Before(tj)
	})
	return months
}

func formatAmount(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format(promptDateLayout)
}
