package services

import (
	"context"

	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/logger"
)

type expenseESStore interface {
	List(ctx context.Context, uid string) ([]models.Expense, error)
	Get(ctx context.Context, uid, expenseID string) (*models.Expense, error)
	Create(ctx context.Context, uid string, e *models.Expense) error
	Update(ctx context.Context, uid string, e *models.Expense) error
	Delete(ctx context.Context, uid, expenseID string) error
}

type expenseService struct {
	store expenseESStore
}

func NewExpenseService(store expenseESStore) *expenseService {
	return &expenseService{store: store}
}

func (s *expenseService) ListExpenses(ctx context.Context, uid string) ([]models.Expense, error) {
	return s.store.List(ctx, uid)
}

// AddExpense validates the payload through the normalizer before anything
// touches the ledger. Invalid records never enter the aggregation path.
func (s *expenseService) AddExpense(ctx context.Context, uid string, raw insights.RawExpense) (*models.Expense, error) {
	expense, err := insights.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, uid, &expense); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("expense added", "expense_id", expense.ExpenseID, "category", expense.Category)
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, uid, expenseID string, raw insights.RawExpense) (*models.Expense, error) {
	normalized, err := insights.Normalize(raw)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, uid, expenseID)
	if err != nil {
		return nil, err
	}
	existing.Amount = normalized.Amount
	existing.Category = normalized.Category
	existing.Description = normalized.Description

	if err := s.store.Update(ctx, uid, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, uid, expenseID string) error {
	if _, err := s.store.Get(ctx, uid, expenseID); err != nil {
		return err
	}
	return s.store.Delete(ctx, uid, expenseID)
}
