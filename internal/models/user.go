package models

import (
	"time"
)

// DefaultBudget is the monthly limit assumed when a user has not set one.
const DefaultBudget = 10000

type User struct {
	UID       string    `firestore:"uid" json:"uid"`
	Email     string    `firestore:"email" json:"email"`
	Name      string    `firestore:"name" json:"name"`
	Budget    float64   `firestore:"budget" json:"budget"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
