package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/pkg/qrcode"
	"github.com/xuri/excelize/v2"
)

const passQRSize = 512

type EventRegistrationStorage interface {
	Create(ctx context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error)
	Get(ctx context.Context, id uint) (*entity.EventRegistration, error)
	GetAll(ctx context.Context) ([]entity.EventRegistration, error)
	GetByUserID(ctx context.Context, userID uint) ([]entity.EventRegistration, error)
	GetByEventID(ctx context.Context, eventID uint) ([]entity.EventRegistration, error)
}

type registrationEventStorage interface {
	Get(ctx context.Context, id uint) (*entity.Event, error)
}

type registrationUserStorage interface {
	Get(ctx context.Context, id uint) (*entity.User, error)
}

type registrationNotifier interface {
	RegistrationConfirmed(user *entity.User, event *entity.Event)
}

type EventRegistrationService struct {
	storage      EventRegistrationStorage
	eventStorage registrationEventStorage
	userStorage  registrationUserStorage
	notifier     registrationNotifier
}

func NewEventRegistrationService(
	storage EventRegistrationStorage,
	eventStorage registrationEventStorage,
	userStorage registrationUserStorage,
	notifier registrationNotifier,
) *EventRegistrationService {
	return &EventRegistrationService{
		storage:      storage,
		eventStorage: eventStorage,
		userStorage:  userStorage,
		notifier:     notifier,
	}
}

// Register signs a user up for an event. Unlike club membership there is
// no approval step, the registration is effective immediately.
func (s *EventRegistrationService) Register(ctx context.Context, userID, eventID uint) (*entity.EventRegistration, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	registration, err := s.storage.Create(ctx, &entity.EventRegistration{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.RegistrationConfirmed(user, event)
	return registration, nil
}

// All returns every registration, newest first, for the admin overview.
func (s *EventRegistrationService) All(ctx context.Context) ([]entity.EventRegistration, error) {
	return s.storage.GetAll(ctx)
}

// ByUser returns the caller's registrations.
func (s *EventRegistrationService) ByUser(ctx context.Context, userID uint) ([]entity.EventRegistration, error) {
	return s.storage.GetByUserID(ctx, userID)
}

// Pass renders a QR entry pass for one of the caller's registrations.
func (s *EventRegistrationService) Pass(ctx context.Context, userID, registrationID uint) ([]byte, error) {
	registration, err := s.storage.Get(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	if registration.UserID != userID {
		return nil, errorz.Forbiddenf("registration does not belong to you")
	}

	content := fmt.Sprintf("clubshub:registration:%d:event:%d:user:%d",
		registration.ID, registration.EventID, registration.UserID)
	return qrcode.Generate(content, passQRSize)
}

// Export renders an event's registrations as an XLSX attendance sheet.
func (s *EventRegistrationService) Export(ctx context.Context, eventID uint) (*bytes.Buffer, error) {
	if _, err := s.eventStorage.Get(ctx, eventID); err != nil {
		return nil, err
	}

	registrations, err := s.storage.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	_ = f.SetCellValue(sheet, "A1", "Name")
	_ = f.SetCellValue(sheet, "B1", "Email")
	_ = f.SetCellValue(sheet, "C1", "Registered At")

	for i, registration := range registrations {
		row := strconv.Itoa(i + 2)
		if registration.User != nil {
			_ = f.SetCellValue(sheet, "A"+row, registration.User.Name)
			_ = f.SetCellValue(sheet, "B"+row, registration.User.Email)
		}
		_ = f.SetCellValue(sheet, "C"+row, registration.CreatedAt.Format("2006-01-02 15:04"))
	}

	return f.WriteToBuffer()
}
