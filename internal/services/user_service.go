package services

import (
	"context"

	"github.com/harentsoaR/legalbook-api/internal/database"
	"github.com/harentsoaR/legalbook-api/internal/models"
)

// UserService exposes the read and delete operations on users.
type UserService struct {
	store database.UserStore
}

func NewUserService(store database.UserStore) *UserService {
	return &UserService{store: store}
}

// GetAllUsers returns every stored user in no particular order.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}

// FindUserByEmail reports found=false, with a nil error, when no user has
// the given email.
func (s *UserService) FindUserByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return s.store.FindByEmail(ctx, email)
}

func (s *UserService) DeleteUserByID(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
