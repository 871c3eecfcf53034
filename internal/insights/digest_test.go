package insights

import (
	"testing"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

func TestBuildDigestEmptyInput(t *testing.T) {
	digest, ok := BuildDigest(nil, DefaultDigestLimit, time.UTC)
	if ok {
		t.Fatalf("expected no-data result, got %+v", digest)
	}
}

func TestBuildDigest(t *testing.T) {
	expenses := []models.Expense{
		exp(100, "food", day(2025, time.February, 10)),
		exp(300, "transport", day(2025, time.March, 5)),
	}

	digest, ok := BuildDigest(expenses, DefaultDigestLimit, time.UTC)
	if !ok {
		t.Fatal("expected data")
	}
	if digest.Total != 400 {
		t.Fatalf("total mismatch: got %v", digest.Total)
	}
	if digest.CategoryPercentages["food"] != 25.0 || digest.CategoryPercentages["transport"] != 75.0 {
		t.Fatalf("percentages mismatch: %v", digest.CategoryPercentages)
	}
	if digest.MonthlyTotals["February 2025"] != 100 || digest.MonthlyTotals["March 2025"] != 300 {
		t.Fatalf("monthly totals mismatch: %v", digest.MonthlyTotals)
	}
	if digest.Timespan.Start == nil || digest.Timespan.End == nil {
		t.Fatal("timespan not set")
	}
	if !digest.Timespan.Start.Equal(day(2025, time.February, 10)) {
		t.Fatalf("timespan start mismatch: %v", digest.Timespan.Start)
	}
	if !digest.Timespan.End.Equal(day(2025, time.March, 5)) {
		t.Fatalf("timespan end mismatch: %v", digest.Timespan.End)
	}
}

func TestBuildDigestLimitsToMostRecent(t *testing.T) {
	var expenses []models.Expense
	for i := 0; i < 10; i++ {
		expenses = append(expenses, exp(10, "food", day(2025, time.March, i+1)))
	}

	digest, ok := BuildDigest(expenses, 4, time.UTC)
	if !ok {
		t.Fatal("expected data")
	}
	if digest.Total != 40 {
		t.Fatalf("limit not applied: total %v", digest.Total)
	}
	// Working set is the newest 4 expenses: 7..10 March.
	if !digest.Timespan.Start.Equal(day(2025, time.March, 7)) {
		t.Fatalf("timespan start mismatch: %v", digest.Timespan.Start)
	}
	if !digest.Timespan.End.Equal(day(2025, time.March, 10)) {
		t.Fatalf("timespan end mismatch: %v", digest.Timespan.End)
	}
}

func TestBuildDigestDoesNotMutateInput(t *testing.T) {
	expenses := []models.Expense{
		exp(1, "food", day(2025, time.March, 1)),
		exp(2, "food", day(2025, time.March, 9)),
		exp(3, "food", day(2025, time.March, 5)),
	}

	if _, ok := BuildDigest(expenses, 2, time.UTC); !ok {
		t.Fatal("expected data")
	}
	if expenses[0].Amount != 1 || expenses[1].Amount != 2 || expenses[2].Amount != 3 {
		t.Fatalf("input reordered: %+v", expenses)
	}
}
