package services

import (
	"context"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

type statsExpenseStore interface {
	List(ctx context.Context, uid string) ([]models.Expense, error)
}

type statsBudgetStore interface {
	GetBudget(ctx context.Context, uid string) (float64, error)
}

// statsService hands ledger snapshots to the insights engine. The clock is
// injected so every derived view is reproducible in tests.
type statsService struct {
	store    statsExpenseStore
	budgets  statsBudgetStore
	loc      *time.Location
	clockNow func() time.Time
}

func NewStatsService(store statsExpenseStore, budgets statsBudgetStore, loc *time.Location) *statsService {
	return &statsService{
		store:    store,
		budgets:  budgets,
		loc:      loc,
		clockNow: time.Now,
	}
}

func (s *statsService) GetStatistics(ctx context.Context, uid string) (insights.Statistics, error) {
	expenses, err := s.store.List(ctx, uid)
	if err != nil {
		return insights.Statistics{}, err
	}
	if len(expenses) == 0 {
		return insights.Statistics{}, errs.NewNotFoundError("No expenses found")
	}
	return insights.ComputeStatistics(expenses, s.clockNow(), s.loc), nil
}

func (s *statsService) GetSummary(ctx context.Context, uid string) (insights.Summary, error) {
	expenses, err := s.store.List(ctx, uid)
	if err != nil {
		return insights.Summary{}, err
	}

	budget, err := s.budgets.GetBudget(ctx, uid)
	if err != nil {
		budget = models.DefaultBudget
	}

	return insights.ComputeSummary(expenses, budget, s.clockNow(), s.loc), nil
}

func (s *statsService) ExportCSV(ctx context.Context, uid string) (string, error) {
	expenses, err := s.store.List(ctx, uid)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		return "", errs.NewNotFoundError("No expenses found")
	}
	return insights.ExportCSV(expenses, s.clockNow(), s.loc)
}
