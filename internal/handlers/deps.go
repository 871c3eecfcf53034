package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/apurvdugar/Expense-Tracker-App/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	ExpenseSvc      ExpenseService
	UserSvc         UserService
	StatsSvc        StatsService
	InsightSvc      InsightService
}
