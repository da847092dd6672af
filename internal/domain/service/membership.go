package service

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
)

type MembershipStorage interface {
	Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
	Get(ctx context.Context, id uint) (*entity.Membership, error)
	Update(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
	Delete(ctx context.Context, id uint) error
	GetAll(ctx context.Context) ([]entity.Membership, error)
	GetByUserID(ctx context.Context, userID uint) ([]entity.Membership, error)
}

type membershipClubStorage interface {
	Get(ctx context.Context, id uint) (*entity.Club, error)
}

type membershipNotifier interface {
	MembershipApproved(membership *entity.Membership)
	MembershipRejected(membership *entity.Membership)
	MembershipRemoved(membership *entity.Membership)
}

type MembershipService struct {
	storage     MembershipStorage
	clubStorage membershipClubStorage
	notifier    membershipNotifier
}

func NewMembershipService(storage MembershipStorage, clubStorage membershipClubStorage, notifier membershipNotifier) *MembershipService {
	return &MembershipService{
		storage:     storage,
		clubStorage: clubStorage,
		notifier:    notifier,
	}
}

// Request creates a PENDING membership for the user on the club. A second
// request for the same club conflicts on the (user, club) index.
func (s *MembershipService) Request(ctx context.Context, userID, clubID uint) (*entity.Membership, error) {
	if _, err := s.clubStorage.Get(ctx, clubID); err != nil {
		return nil, err
	}

	return s.storage.Create(ctx, &entity.Membership{
		UserID: userID,
		ClubID: clubID,
		Status: entity.MembershipPending,
	})
}

// Approve moves a membership to APPROVED and mails the member. Approving
// an already approved membership is a state no-op but still re-sends the
// notification.
func (s *MembershipService) Approve(ctx context.Context, id uint) (*entity.Membership, error) {
	membership, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	membership.Status = entity.MembershipApproved
	if membership, err = s.storage.Update(ctx, membership); err != nil {
		return nil, err
	}

	s.notifier.MembershipApproved(membership)
	return membership, nil
}

// Reject moves a membership to REJECTED and mails the member.
func (s *MembershipService) Reject(ctx context.Context, id uint) (*entity.Membership, error) {
	membership, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	membership.Status = entity.MembershipRejected
	if membership, err = s.storage.Update(ctx, membership); err != nil {
		return nil, err
	}

	s.notifier.MembershipRejected(membership)
	return membership, nil
}

// Remove deletes a membership. The removal notice is dispatched before the
// row goes away so the member/club names are still loadable; the deletion
// succeeds regardless of delivery.
func (s *MembershipService) Remove(ctx context.Context, id uint) error {
	membership, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	s.notifier.MembershipRemoved(membership)

	return s.storage.Delete(ctx, id)
}

// All returns every membership, newest first, for the admin overview.
func (s *MembershipService) All(ctx context.Context) ([]entity.Membership, error) {
	return s.storage.GetAll(ctx)
}

// ByUser returns the caller's memberships.
func (s *MembershipService) ByUser(ctx context.Context, userID uint) ([]entity.Membership, error) {
	return s.storage.GetByUserID(ctx, userID)
}
