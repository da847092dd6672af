package service

import (
	"context"
	"strings"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/internal/domain/utils/validator"
	"github.com/clubshub/clubshub/pkg/logger/types"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id uint) (*entity.Club, error)
	GetApproved(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id uint) error
}

type clubMembershipStorage interface {
	GetByClubID(ctx context.Context, clubID uint) ([]entity.Membership, error)
}

type clubCache interface {
	Get(ctx context.Context) ([]entity.Club, bool, error)
	Set(ctx context.Context, listing []entity.Club) error
	Invalidate(ctx context.Context) error
}

type clubNotifier interface {
	ClubApproved(club *entity.Club, members []entity.Membership)
	ClubRemoved(club *entity.Club, members []entity.Membership)
}

type ClubService struct {
	logger *types.Logger

	storage     ClubStorage
	memberships clubMembershipStorage
	cache       clubCache
	notifier    clubNotifier
}

func NewClubService(
	logger *types.Logger,
	storage ClubStorage,
	memberships clubMembershipStorage,
	cache clubCache,
	notifier clubNotifier,
) *ClubService {
	return &ClubService{
		logger:      logger,
		storage:     storage,
		memberships: memberships,
		cache:       cache,
		notifier:    notifier,
	}
}

// Create persists an admin-created club. Such clubs go live immediately;
// the separate approval action exists for rows seeded as pending.
func (s *ClubService) Create(ctx context.Context, name, description string, category entity.ClubCategory) (*entity.Club, error) {
	name = strings.TrimSpace(name)
	if name == "" || description == "" {
		return nil, errorz.Validationf("name and description are required")
	}
	if !validator.ClubCategory(category) {
		return nil, errorz.Validationf("invalid club category %q", category)
	}

	club, err := s.storage.Create(ctx, &entity.Club{
		Name:        name,
		Description: description,
		Category:    category,
		Approved:    true,
		Active:      true,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return club, nil
}

// Approved returns the public club listing, served from cache when warm.
func (s *ClubService) Approved(ctx context.Context) ([]entity.Club, error) {
	listing, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warnf("club listing cache read failed: %v", err)
	} else if ok {
		return listing, nil
	}

	listing, err = s.storage.GetApproved(ctx)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, listing); err != nil {
		s.logger.Warnf("club listing cache write failed: %v", err)
	}
	return listing, nil
}

// Get returns a club with its membership roster.
func (s *ClubService) Get(ctx context.Context, id uint) (*entity.Club, error) {
	return s.storage.Get(ctx, id)
}

// Approve flips the approved flag and mails every member with a known
// email address.
func (s *ClubService) Approve(ctx context.Context, id uint) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	club.Approved = true
	if club, err = s.storage.Update(ctx, club); err != nil {
		return nil, err
	}

	members, err := s.memberships.GetByClubID(ctx, id)
	if err != nil {
		s.logger.Errorf("failed to load members of club %d for approval notices: %v", id, err)
	} else {
		s.notifier.ClubApproved(club, members)
	}

	s.invalidateListing(ctx)
	return club, nil
}

// Delete removes a club with everything hanging off it. Members are
// notified before the cascade runs; delivery does not gate the deletion.
func (s *ClubService) Delete(ctx context.Context, id uint) error {
	club, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	members, err := s.memberships.GetByClubID(ctx, id)
	if err != nil {
		s.logger.Errorf("failed to load members of club %d for removal notices: %v", id, err)
	} else {
		s.notifier.ClubRemoved(club, members)
	}

	if err = s.storage.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *ClubService) invalidateListing(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnf("club listing cache invalidation failed: %v", err)
	}
}
