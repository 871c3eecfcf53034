package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

type expenseStore struct {
	client *firestore.Client
}

func NewExpenseStore(client *firestore.Client) *expenseStore {
	return &expenseStore{client: client}
}

func (s *expenseStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("expenses")
}

// List returns the user's full ledger, newest first.
func (s *expenseStore) List(ctx context.Context, uid string) ([]models.Expense, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var expenses []models.Expense
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var e models.Expense
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (s *expenseStore) Get(ctx context.Context, uid, expenseID string) (*models.Expense, error) {
	doc, err := s.collection(uid).Doc(expenseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("expense not found")
		}
		return nil, err
	}
	var e models.Expense
	if err := doc.DataTo(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *expenseStore) Create(ctx context.Context, uid string, e *models.Expense) error {
	if e.ExpenseID == "" {
		e.ExpenseID = uuid.New().String()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	_, err := s.collection(uid).Doc(e.ExpenseID).Create(ctx, e)
	return err
}

func (s *expenseStore) Update(ctx context.Context, uid string, e *models.Expense) error {
	e.UpdatedAt = time.Now()
	_, err := s.collection(uid).Doc(e.ExpenseID).Set(ctx, e, firestore.MergeAll)
	return err
}

func (s *expenseStore) Delete(ctx context.Context, uid, expenseID string) error {
	_, err := s.collection(uid).Doc(expenseID).Delete(ctx)
	return err
}
