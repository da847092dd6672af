package postgres

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"gorm.io/gorm"
)

type MembershipStorage struct {
	db *gorm.DB
}

func NewMembershipStorage(db *gorm.DB) *MembershipStorage {
	return &MembershipStorage{
		db: db,
	}
}

func (s *MembershipStorage) Create(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	if err := s.db.WithContext(ctx).Create(&membership).Error; err != nil {
		return nil, conflict(err, "membership already requested for this club")
	}
	return membership, nil
}

// Get returns a membership with its user and club loaded, which the
// notification templates need.
func (s *MembershipStorage) Get(ctx context.Context, id uint) (*entity.Membership, error) {
	var membership entity.Membership
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Club").
		Where("id = ?", id).
		First(&membership).Error
	if err != nil {
		return nil, notFound(err, "membership request not found")
	}
	return &membership, nil
}

func (s *MembershipStorage) Update(ctx context.Context, membership *entity.Membership) (*entity.Membership, error) {
	err := s.db.WithContext(ctx).Save(&membership).Error
	return membership, err
}

func (s *MembershipStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Membership{}).Error
}

// GetAll is a function that gets all memberships from the database, newest first.
func (s *MembershipStorage) GetAll(ctx context.Context) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Club").
		Order("id DESC").
		Find(&memberships).Error
	return memberships, err
}

// GetByUserID is a function that gets all memberships of a user.
func (s *MembershipStorage) GetByUserID(ctx context.Context, userID uint) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := s.db.WithContext(ctx).
		Preload("Club").
		Where("user_id = ?", userID).
		Find(&memberships).Error
	return memberships, err
}

// GetByClubID is a function that gets all memberships of a club.
func (s *MembershipStorage) GetByClubID(ctx context.Context, clubID uint) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("club_id = ?", clubID).
		Find(&memberships).Error
	return memberships, err
}

// GetByClubIDAndStatus narrows a club's memberships to one status.
func (s *MembershipStorage) GetByClubIDAndStatus(ctx context.Context, clubID uint, status entity.MembershipStatus) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("club_id = ? AND status = ?", clubID, status).
		Find(&memberships).Error
	return memberships, err
}
