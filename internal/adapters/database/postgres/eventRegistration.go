package postgres

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"gorm.io/gorm"
)

type EventRegistrationStorage struct {
	db *gorm.DB
}

func NewEventRegistrationStorage(db *gorm.DB) *EventRegistrationStorage {
	return &EventRegistrationStorage{
		db: db,
	}
}

func (s *EventRegistrationStorage) Create(ctx context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error) {
	err := s.db.WithContext(ctx).Create(&registration).Error
	return registration, err
}

func (s *EventRegistrationStorage) Get(ctx context.Context, id uint) (*entity.EventRegistration, error) {
	var registration entity.EventRegistration
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("id = ?", id).
		First(&registration).Error
	if err != nil {
		return nil, notFound(err, "event registration not found")
	}
	return &registration, nil
}

// GetAll is a function that gets all event registrations, newest first.
func (s *EventRegistrationStorage) GetAll(ctx context.Context) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Order("id DESC").
		Find(&registrations).Error
	return registrations, err
}

// GetByUserID is a function that gets all registrations of a user.
func (s *EventRegistrationStorage) GetByUserID(ctx context.Context, userID uint) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	err := s.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Find(&registrations).Error
	return registrations, err
}

// GetByEventID is a function that gets all registrations of an event.
func (s *EventRegistrationStorage) GetByEventID(ctx context.Context, eventID uint) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Find(&registrations).Error
	return registrations, err
}
