package postgres

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"gorm.io/gorm"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id uint) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).
		Preload("Club").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, notFound(err, "event not found")
	}
	return &event, nil
}

// GetAll is a function that gets all events from the database.
func (s *EventStorage) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Preload("Club").Order("date ASC").Find(&events).Error
	return events, err
}

// Delete removes an event and its registrations in a single transaction.
func (s *EventStorage) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Event{}).Error
	})
}
