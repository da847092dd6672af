package postgres

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, err
}

// Get returns a club with its membership roster and each member's identity.
func (s *ClubStorage) Get(ctx context.Context, id uint) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).
		Preload("Memberships.User").
		Where("id = ?", id).
		First(&club).Error
	if err != nil {
		return nil, notFound(err, "club not found")
	}
	return &club, nil
}

// GetApproved is a function that gets all approved clubs from the database.
func (s *ClubStorage) GetApproved(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Where("approved = ?", true).Find(&clubs).Error
	return clubs, err
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, err
}

// Delete removes a club, its memberships, its events and the registrations
// of those events in a single transaction.
func (s *ClubStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		if err := tx.Model(&entity.Event{}).Where("club_id = ?", id).Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&entity.EventRegistration{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", eventIDs).Delete(&entity.Event{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Membership{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Club{}).Error
	})
}
