package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/helpers"
)

type fakeExpenseStore struct {
	expenses []models.Expense
	created  *models.Expense
	updated  *models.Expense
	deleted  string
	err      error
}

func (f *fakeExpenseStore) List(ctx context.Context, uid string) ([]models.Expense, error) {
	return f.expenses, f.err
}

func (f *fakeExpenseStore) Get(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.expenses {
		if f.expenses[i].ExpenseID == expenseID {
			e := f.expenses[i]
			return &e, nil
		}
	}
	return nil, errs.NewNotFoundError("expense not found")
}

func (f *fakeExpenseStore) Create(ctx context.Context, uid string, e *models.Expense) error {
	if f.err != nil {
		return f.err
	}
	e.ExpenseID = "generated-id"
	e.CreatedAt = time.Now()
	f.created = e
	return nil
}

func (f *fakeExpenseStore) Update(ctx context.Context, uid string, e *models.Expense) error {
	f.updated = e
	return f.err
}

func (f *fakeExpenseStore) Delete(ctx context.Context, uid, expenseID string) error {
	f.deleted = expenseID
	return f.err
}

func TestAddExpenseNormalizes(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store)

	got, err := svc.AddExpense(helpers.TestCtx(), "user", insights.RawExpense{
		Amount:      120,
		Category:    "Food",
		Description: "Lunch",
	})
	if err != nil {
		t.Fatalf("AddExpense error: %v", err)
	}
	if got.Category != "food" {
		t.Fatalf("category not canonicalized: %q", got.Category)
	}
	if store.created == nil {
		t.Fatal("expense not persisted")
	}
}

func TestAddExpenseRejectsInvalid(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store)

	_, err := svc.AddExpense(helpers.TestCtx(), "user", insights.RawExpense{
		Amount:      -5,
		Category:    "food",
		Description: "Lunch",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if store.created != nil {
		t.Fatal("invalid expense reached the store")
	}
}

func TestUpdateExpensePreservesCreatedAt(t *testing.T) {
	createdAt := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeExpenseStore{
		expenses: []models.Expense{
			{ExpenseID: "e1", Amount: 10, Category: "food", Description: "Old", CreatedAt: createdAt},
		},
	}
	svc := NewExpenseService(store)

	got, err := svc.UpdateExpense(helpers.TestCtx(), "user", "e1", insights.RawExpense{
		Amount:      20,
		Category:    "Transport",
		Description: "New desc",
	})
	if err != nil {
		t.Fatalf("UpdateExpense error: %v", err)
	}
	if got.Amount != 20 || got.Category != "transport" || got.Description != "New desc" {
		t.Fatalf("fields not updated: %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt changed: %v", got.CreatedAt)
	}
}

func TestUpdateExpenseNotFound(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store)

	_, err := svc.UpdateExpense(helpers.TestCtx(), "user", "missing", insights.RawExpense{
		Amount:      20,
		Category:    "food",
		Description: "desc",
	})
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	store := &fakeExpenseStore{}
	svc := NewExpenseService(store)

	err := svc.DeleteExpense(helpers.TestCtx(), "user", "missing")
	var nferr *errs.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if store.deleted != "" {
		t.Fatal("delete reached the store")
	}
}
