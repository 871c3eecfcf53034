package services

import (
	"context"
	"time"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
	"github.com/apurvdugar/Expense-Tracker-App/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	SetBudget(ctx context.Context, uid string, budget float64) error
}

type userService struct {
	store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{store: store}
}

func (s *userService) Register(ctx context.Context, uid, email, name string) error {
	log := logger.FromContext(ctx)

	user := &models.User{
		UID:       uid,
		Email:     email,
		Name:      name,
		Budget:    models.DefaultBudget,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		return err
	}

	log.Info("user registered", "name", name)
	return nil
}

func (s *userService) GetCurrentUser(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Budget <= 0 {
		user.Budget = models.DefaultBudget
	}
	return user, nil
}

// GetBudget returns the user's monthly limit, falling back to the default
// when none has been set.
func (s *userService) GetBudget(ctx context.Context, uid string) (float64, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return 0, err
	}
	if user.Budget <= 0 {
		return models.DefaultBudget, nil
	}
	return user.Budget, nil
}

func (s *userService) UpdateBudget(ctx context.Context, uid string, budget float64) (float64, error) {
	if budget < 0 {
		return 0, errs.NewValidationError("Invalid budget value")
	}
	if err := s.store.SetBudget(ctx, uid, budget); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info("budget updated", "budget", budget)
	return budget, nil
}
