// Package insights is the expense analytics engine: pure, deterministic
// computations over a snapshot of a user's ledger. Nothing in this package
// performs I/O or mutates its input; callers inject the reference time and
// location so every result is reproducible.
package insights

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/internal/taxonomy"
)

// MaxAmount is the largest accepted expense amount.
const MaxAmount = 1_000_000

// MaxDescriptionLength bounds the free-text description.
const MaxDescriptionLength = 100

// RawExpense is an unvalidated expense payload as received from a client.
type RawExpense struct {
	Amount      float64
	Category    string
	Description string
}

var descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.,!?@#$%^&*()]+$`)

// Normalize validates a raw payload and returns the canonical Expense shape:
// category lower-cased, amount a positive finite number. It never writes
// anywhere; persisting the result is the caller's job.
func Normalize(raw RawExpense) (models.Expense, error) {
	if math.IsNaN(raw.Amount) || math.IsInf(raw.Amount, 0) {
		return models.Expense{}, errs.NewValidationError("Amount must be a valid number")
	}
	if raw.Amount <= 0 {
		return models.Expense{}, errs.NewValidationError("Amount must be positive")
	}
	if raw.Amount > MaxAmount {
		return models.Expense{}, errs.NewValidationError("Amount cannot exceed 1,000,000")
	}

	if raw.Category == "" {
		return models.Expense{}, errs.NewValidationError("Category is required")
	}
	if !taxonomy.IsCategoryAllowed(raw.Category) {
		return models.Expense{}, errs.NewValidationError(fmt.Sprintf("Invalid category: %s", raw.Category))
	}

	desc := raw.Description
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return models.Expense{}, errs.NewValidationError("Description is required")
	}
	if len(desc) > MaxDescriptionLength {
		return models.Expense{}, errs.NewValidationError("Description too long")
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.Expense{}, errs.NewValidationError("Description cannot be a number")
	}
	if !descriptionPattern.MatchString(desc) {
		return models.Expense{}, errs.NewValidationError("Description contains invalid characters")
	}

	return models.Expense{
		Amount:      raw.Amount,
		Category:    taxonomy.Canonical(raw.Category),
		Description: desc,
	}, nil
}
