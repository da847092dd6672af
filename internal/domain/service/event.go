package service

import (
	"context"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/internal/domain/utils/validator"
	"github.com/clubshub/clubshub/pkg/logger/types"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id uint) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	Delete(ctx context.Context, id uint) error
}

type eventClubStorage interface {
	Get(ctx context.Context, id uint) (*entity.Club, error)
}

type eventMembershipStorage interface {
	GetByClubIDAndStatus(ctx context.Context, clubID uint, status entity.MembershipStatus) ([]entity.Membership, error)
}

type eventRegistrationLookup interface {
	GetByEventID(ctx context.Context, eventID uint) ([]entity.EventRegistration, error)
}

type eventNotifier interface {
	NewEvent(event *entity.Event, clubName string, members []entity.Membership)
	EventCancelled(event *entity.Event, registrations []entity.EventRegistration)
}

type EventService struct {
	logger *types.Logger

	storage       EventStorage
	clubStorage   eventClubStorage
	memberships   eventMembershipStorage
	registrations eventRegistrationLookup
	notifier      eventNotifier
}

func NewEventService(
	logger *types.Logger,
	storage EventStorage,
	clubStorage eventClubStorage,
	memberships eventMembershipStorage,
	registrations eventRegistrationLookup,
	notifier eventNotifier,
) *EventService {
	return &EventService{
		logger:        logger,
		storage:       storage,
		clubStorage:   clubStorage,
		memberships:   memberships,
		registrations: registrations,
		notifier:      notifier,
	}
}

// Create validates and persists an event. A club event announces itself to
// the club's approved members.
func (s *EventService) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if event.Title == "" {
		return nil, errorz.Validationf("event title is required")
	}
	if event.Description == "" {
		return nil, errorz.Validationf("event description is required")
	}
	if event.Date.IsZero() {
		return nil, errorz.Validationf("event date is required")
	}
	if !validator.EventDate(event.Date) {
		return nil, errorz.Validationf("event date must be set in the future")
	}
	if event.Type == "" {
		event.Type = entity.EventTypeClub
	}
	if !validator.EventType(event.Type) {
		return nil, errorz.Validationf("invalid event type %q", event.Type)
	}

	var club *entity.Club
	if event.ClubID != nil {
		var err error
		if club, err = s.clubStorage.Get(ctx, *event.ClubID); err != nil {
			return nil, errorz.Validationf("club with id %d does not exist", *event.ClubID)
		}
	}

	event, err := s.storage.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	if club != nil {
		members, err := s.memberships.GetByClubIDAndStatus(ctx, club.ID, entity.MembershipApproved)
		if err != nil {
			s.logger.Errorf("failed to load approved members of club %d for event notices: %v", club.ID, err)
		} else {
			s.notifier.NewEvent(event, club.Name, members)
		}
	}

	return event, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (*entity.Event, error) {
	return s.storage.Get(ctx, id)
}

func (s *EventService) All(ctx context.Context) ([]entity.Event, error) {
	return s.storage.GetAll(ctx)
}

// Delete cancels an event: registrants get a cancellation notice, then the
// event and its registrations are removed in one transaction.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	event, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	registrations, err := s.registrations.GetByEventID(ctx, id)
	if err != nil {
		s.logger.Errorf("failed to load registrations of event %d for cancellation notices: %v", id, err)
	} else {
		s.notifier.EventCancelled(event, registrations)
	}

	return s.storage.Delete(ctx, id)
}
