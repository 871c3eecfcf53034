package models

import (
	"time"
)

type Expense struct {
	ExpenseID   string    `firestore:"expenseId" json:"id"` // doc ID
	Amount      float64   `firestore:"amount" json:"amount"`
	Category    string    `firestore:"category" json:"category"` // stored lower-case
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
