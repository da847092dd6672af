package service

import (
	"context"
	"errors"
	"strings"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/internal/domain/utils/validator"
	"github.com/clubshub/clubshub/pkg/tokens"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type authNotifier interface {
	Welcome(user *entity.User)
}

type AuthService struct {
	storage  AuthUserStorage
	tokens   *tokens.Manager
	notifier authNotifier
}

func NewAuthService(storage AuthUserStorage, tokenManager *tokens.Manager, notifier authNotifier) *AuthService {
	return &AuthService{
		storage:  storage,
		tokens:   tokenManager,
		notifier: notifier,
	}
}

// Register creates an account and issues a session token. The stored role
// is always MEMBER; any client-supplied role preference is ignored by
// construction.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, "", errorz.Validationf("all fields are required")
	}
	if !validator.Password(password) {
		return nil, "", errorz.Validationf("password must be at least 6 characters")
	}

	if _, err := s.storage.GetByEmail(ctx, email); err == nil {
		return nil, "", errorz.Conflictf("user already exists")
	} else if !errors.Is(err, errorz.NotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.storage.Create(ctx, &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         entity.RoleMember,
	})
	if err != nil {
		return nil, "", err
	}

	// Best effort, never fails the registration.
	s.notifier.Welcome(user)

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a fresh session token. Unknown
// email and wrong password stay distinguishable for the client.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, "", errorz.Validationf("email and password required")
	}

	user, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errorz.Unauthorizedf("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
