package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurvdugar/Expense-Tracker-App/internal/dto"
	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/insights"
	"github.com/apurvdugar/Expense-Tracker-App/internal/middleware"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/internal/response"
)

type ExpenseService interface {
	ListExpenses(ctx context.Context, uid string) ([]models.Expense, error)
	AddExpense(ctx context.Context, uid string, raw insights.RawExpense) (*models.Expense, error)
	UpdateExpense(ctx context.Context, uid, expenseID string, raw insights.RawExpense) (*models.Expense, error)
	DeleteExpense(ctx context.Context, uid, expenseID string) error
}

type expenseHandlers struct {
	ResponseHandler response.ResponseHandler
	ExpenseSvc      ExpenseService
}

func NewExpenseHandlers(deps *Deps) *expenseHandlers {
	return &expenseHandlers{
		ResponseHandler: deps.ResponseHandler,
		ExpenseSvc:      deps.ExpenseSvc,
	}
}

func (h *expenseHandlers) ExpenseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListExpenses)
	r.Post("/", h.AddExpense)
	r.Put("/{expenseId}", h.UpdateExpense)
	r.Delete("/{expenseId}", h.DeleteExpense)
	return r
}

func (h *expenseHandlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	expenses, err := h.ExpenseSvc.ListExpenses(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expenses)
}

func (h *expenseHandlers) AddExpense(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeExpensePayload(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.AddExpense(r.Context(), uid, raw)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, expense)
}

func (h *expenseHandlers) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	raw, err := decodeExpensePayload(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	expense, err := h.ExpenseSvc.UpdateExpense(r.Context(), uid, expenseID, raw)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, expense)
}

func (h *expenseHandlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "expenseId")
	uid := middleware.UID(r.Context())
	if err := h.ExpenseSvc.DeleteExpense(r.Context(), uid, expenseID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func decodeExpensePayload(r *http.Request) (insights.RawExpense, error) {
	var req dto.ExpensePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return insights.RawExpense{}, errs.NewValidationError("invalid request body")
	}
	return insights.RawExpense{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}, nil
}
