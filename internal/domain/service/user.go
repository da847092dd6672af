package service

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
)

type UserStorage interface {
	Get(ctx context.Context, id uint) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

// All returns every account for the admin overview. Password hashes never
// serialize (json:"-" on the entity).
func (s *UserService) All(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetAll(ctx)
}

// Promote grants ADMIN to a user. Promoting an admin again is a no-op
// success.
func (s *UserService) Promote(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return user, nil
	}

	user.Role = entity.RoleAdmin
	return s.storage.Update(ctx, user)
}

// Delete removes a user and cascades to their memberships and event
// registrations. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return errorz.Forbiddenf("you cannot delete your own account")
	}

	if _, err := s.storage.Get(ctx, id); err != nil {
		return err
	}

	return s.storage.Delete(ctx, id)
}
