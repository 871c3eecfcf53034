package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/helpers"
)

type fakeGenerator struct {
	text       string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.text, f.err
}

func insightExpenses() []models.Expense {
	return []models.Expense{
		{Amount: 250, Category: "food", Description: "Lunch", CreatedAt: time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)},
		{Amount: 100, Category: "transport", Description: "Cab", CreatedAt: time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC)},
	}
}

func TestGetAnalysis(t *testing.T) {
	gen := &fakeGenerator{text: "spend less on food"}
	svc := NewInsightService(&fakeExpenseStore{expenses: insightExpenses()}, gen, time.UTC)

	got, err := svc.GetAnalysis(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("GetAnalysis error: %v", err)
	}
	if got.Insights != "spend less on food" {
		t.Fatalf("insights mismatch: %q", got.Insights)
	}
	if got.ExpenseData == nil || got.ExpenseData.Total != 350 {
		t.Fatalf("digest mismatch: %+v", got.ExpenseData)
	}
	if !strings.HasPrefix(gen.lastPrompt, "As a financial advisor") {
		t.Fatalf("unexpected prompt:\n%s", gen.lastPrompt)
	}
}

func TestGetAnalysisEmptyLedger(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewInsightService(&fakeExpenseStore{}, gen, time.UTC)

	_, err := svc.GetAnalysis(helpers.TestCtx(), "user")
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatal("generator called with no data")
	}
}

func TestGetAnalysisKeepsDigestOnGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := NewInsightService(&fakeExpenseStore{expenses: insightExpenses()}, gen, time.UTC)

	got, err := svc.GetAnalysis(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("generation failure must not fail the request: %v", err)
	}
	if got.ExpenseData == nil || got.ExpenseData.Total != 350 {
		t.Fatalf("digest missing on fallback: %+v", got.ExpenseData)
	}
	if got.Insights != insightsUnavailableMessage {
		t.Fatalf("fallback message mismatch: %q", got.Insights)
	}
}

func TestGetAnalysisEmptyGeneration(t *testing.T) {
	gen := &fakeGenerator{text: ""}
	svc := NewInsightService(&fakeExpenseStore{expenses: insightExpenses()}, gen, time.UTC)

	got, err := svc.GetAnalysis(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("GetAnalysis error: %v", err)
	}
	if got.Insights != emptyGenerationMessage {
		t.Fatalf("empty-generation message mismatch: %q", got.Insights)
	}
}

func TestGetTips(t *testing.T) {
	gen := &fakeGenerator{text: "1. food: cook at home"}
	svc := NewInsightService(&fakeExpenseStore{expenses: insightExpenses()}, gen, time.UTC)

	got, err := svc.GetTips(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("GetTips error: %v", err)
	}
	if got.Insights != "1. food: cook at home" {
		t.Fatalf("tips mismatch: %q", got.Insights)
	}
	if !strings.Contains(gen.lastPrompt, "₹250 spent on food (Lunch)") {
		t.Fatalf("unexpected prompt:\n%s", gen.lastPrompt)
	}
}

func TestGetTipsEmptyLedger(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewInsightService(&fakeExpenseStore{}, gen, time.UTC)

	got, err := svc.GetTips(helpers.TestCtx(), "user")
	if err != nil {
		t.Fatalf("GetTips error: %v", err)
	}
	if got.Insights != noExpensesTipsMessage {
		t.Fatalf("empty-ledger message mismatch: %q", got.Insights)
	}
	if gen.calls != 0 {
		t.Fatal("generator called with no data")
	}
}

func TestGetTipsGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := NewInsightService(&fakeExpenseStore{expenses: insightExpenses()}, gen, time.UTC)

	_, err := svc.GetTips(helpers.TestCtx(), "user")
	var eserr *errs.ExternalServiceError
	if !errors.As(err, &eserr) {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}
	if !eserr.Transient {
		t.Fatal("generation failure should be transient")
	}
}
