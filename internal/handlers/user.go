package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurvdugar/Expense-Tracker-App/internal/dto"
	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/middleware"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/internal/response"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/helpers"
)

type UserService interface {
	Register(ctx context.Context, uid, email, name string) error
	GetCurrentUser(ctx context.Context, uid string) (*models.User, error)
	GetBudget(ctx context.Context, uid string) (float64, error)
	UpdateBudget(ctx context.Context, uid string, budget float64) (float64, error)
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Get("/me", h.GetCurrentUser)
	r.Get("/budget", h.GetBudget)
	r.Put("/budget", h.UpdateBudget)
	return r
}

// Register creates the user profile after Firebase signup. The uid comes
// from the verified token, never from the body.
func (h *userHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	uid := middleware.UID(r.Context())
	if err := h.UserSvc.Register(r.Context(), uid, req.Email, req.Name); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, nil)
}

func (h *userHandlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.GetCurrentUser(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) GetBudget(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budget, err := h.UserSvc.GetBudget(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.BudgetResponse{Budget: budget})
}

func (h *userHandlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if req.Budget == nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("Invalid budget value"))
		return
	}

	uid := middleware.UID(r.Context())
	budget, err := h.UserSvc.UpdateBudget(r.Context(), uid, helpers.Value(req.Budget))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.BudgetResponse{Budget: budget})
}
