package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apurvdugar/Expense-Tracker-App/internal/dto"
	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

type stubUserService struct {
	user   *models.User
	budget float64
	err    error

	registered    bool
	uid           string
	email, name   string
	updatedBudget float64
}

func (s *stubUserService) Register(ctx context.Context, uid, email, name string) error {
	s.registered = true
	s.uid = uid
	s.email = email
	s.name = name
	return s.err
}

func (s *stubUserService) GetCurrentUser(ctx context.Context, uid string) (*models.User, error) {
	s.uid = uid
	return s.user, s.err
}

func (s *stubUserService) GetBudget(ctx context.Context, uid string) (float64, error) {
	s.uid = uid
	return s.budget, s.err
}

func (s *stubUserService) UpdateBudget(ctx context.Context, uid string, budget float64) (float64, error) {
	s.uid = uid
	s.updatedBudget = budget
	return budget, s.err
}

func TestRegister(t *testing.T) {
	svc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	body := `{"email":"jane@example.com","name":"Jane"}`
	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/user/register", body))

	if !svc.registered {
		t.Fatalf("expected Register to be called on service")
	}
	if svc.uid != "uid-123" || svc.email != "jane@example.com" || svc.name != "Jane" {
		t.Fatalf("service received wrong identity: uid=%s email=%s name=%s", svc.uid, svc.email, svc.name)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestRegisterInvalidJSON(t *testing.T) {
	svc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/user/register", "not-json"))

	if svc.registered {
		t.Fatalf("Register should not be called on service when JSON invalid")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called on invalid JSON")
	}
}

func TestRegisterServiceError(t *testing.T) {
	svc := &stubUserService{err: errs.NewAlreadyExistsError("User already exists")}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	body := `{"email":"jane@example.com","name":"Jane"}`
	rr := httptest.NewRecorder()
	h.Register(rr, authedRequest(http.MethodPost, "/user/register", body))

	if !resp.handleErrorCalled || !errors.Is(resp.handleError, svc.err) {
		t.Fatalf("unexpected error passed to HandleError: %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called on service error")
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc := &stubUserService{user: &models.User{UID: "uid-123", Email: "jane@example.com", Budget: 10000}}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	rr := httptest.NewRecorder()
	h.GetCurrentUser(rr, authedRequest(http.MethodGet, "/user/me", ""))

	if !resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess not called")
	}
	user, ok := resp.writeSuccessData.(*models.User)
	if !ok || user.UID != "uid-123" {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestGetBudget(t *testing.T) {
	svc := &stubUserService{budget: 15000}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	rr := httptest.NewRecorder()
	h.GetBudget(rr, authedRequest(http.MethodGet, "/user/budget", ""))

	got, ok := resp.writeSuccessData.(dto.BudgetResponse)
	if !ok || got.Budget != 15000 {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdateBudget(t *testing.T) {
	svc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	rr := httptest.NewRecorder()
	h.UpdateBudget(rr, authedRequest(http.MethodPut, "/user/budget", `{"budget":20000}`))

	if svc.updatedBudget != 20000 {
		t.Fatalf("service received wrong budget: %v", svc.updatedBudget)
	}
	got, ok := resp.writeSuccessData.(dto.BudgetResponse)
	if !ok || got.Budget != 20000 {
		t.Fatalf("unexpected response payload: %+v", resp.writeSuccessData)
	}
}

func TestUpdateBudgetMissingValue(t *testing.T) {
	svc := &stubUserService{}
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{ResponseHandler: resp, UserSvc: svc})

	rr := httptest.NewRecorder()
	h.UpdateBudget(rr, authedRequest(http.MethodPut, "/user/budget", `{}`))

	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called when budget is absent")
	}
	var verr *errs.ValidationError
	if !errors.As(resp.handleError, &verr) {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess should not be called")
	}
}
