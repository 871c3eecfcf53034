package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/apurvdugar/Expense-Tracker-App/internal/errs"
	"github.com/apurvdugar/Expense-Tracker-App/internal/models"
)

type userStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

func (us *userStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := us.Collection.Doc(user.UID).Create(ctx, user)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("user already exists")
	}
	return err
}

func (us *userStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	doc, err := us.Collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (us *userStore) SetBudget(ctx context.Context, uid string, budget float64) error {
	_, err := us.Collection.Doc(uid).Set(ctx, map[string]interface{}{
		"budget":    budget,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	return err
}
