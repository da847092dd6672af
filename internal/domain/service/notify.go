package service

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/pkg/logger/types"
)

// Mailer delivers a single email. pkg/smtp implements it; tests swap in a
// recorder.
type Mailer interface {
	Send(to, subject, html string) error
}

type mailTask struct {
	to      string
	subject string
	body    string
}

// NotifyStats is a point-in-time snapshot of dispatcher counters.
type NotifyStats struct {
	Enqueued uint64 `json:"enqueued"`
	Sent     uint64 `json:"sent"`
	Failed   uint64 `json:"failed"`
	Dropped  uint64 `json:"dropped"`
}

// NotifyService is the outbound notification dispatcher. Workflow
// operations enqueue mail without waiting for delivery; workers drain the
// queue in the background. Delivery failures are logged and counted, never
// surfaced to the triggering request. There is no retry or outbox.
type NotifyService struct {
	mailer Mailer
	logger *types.Logger

	queue     chan mailTask
	wg        sync.WaitGroup
	closeOnce sync.Once

	enqueued atomic.Uint64
	sent     atomic.Uint64
	failed   atomic.Uint64
	dropped  atomic.Uint64
}

func NewNotifyService(mailer Mailer, logger *types.Logger, workers, queueSize int) *NotifyService {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 256
	}

	s := &NotifyService{
		mailer: mailer,
		logger: logger,
		queue:  make(chan mailTask, queueSize),
	}

	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

func (s *NotifyService) worker() {
	defer s.wg.Done()
	for task := range s.queue {
		if err := s.mailer.Send(task.to, task.subject, task.body); err != nil {
			s.failed.Add(1)
			s.logger.Errorf("failed to send %q to %s: %v", task.subject, task.to, err)
			continue
		}
		s.sent.Add(1)
		s.logger.Debugf("sent %q to %s", task.subject, task.to)
	}
}

// Close stops accepting new mail and waits for the queue to drain.
func (s *NotifyService) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

// Stats reports dispatcher counters for operational monitoring.
func (s *NotifyService) Stats() NotifyStats {
	return NotifyStats{
		Enqueued: s.enqueued.Load(),
		Sent:     s.sent.Load(),
		Failed:   s.failed.Load(),
		Dropped:  s.dropped.Load(),
	}
}

// enqueue hands a task to the workers without ever blocking the caller.
// When the queue is full the task is dropped and counted.
func (s *NotifyService) enqueue(to string, subject string, data mailData) {
	if to == "" {
		return
	}

	body, err := renderMail(data)
	if err != nil {
		s.failed.Add(1)
		s.logger.Errorf("failed to render %q: %v", data.Kind, err)
		return
	}

	select {
	case s.queue <- mailTask{to: to, subject: subject, body: body}:
		s.enqueued.Add(1)
	default:
		s.dropped.Add(1)
		s.logger.Warnf("notification queue full, dropping %q to %s", subject, to)
	}
}

func (s *NotifyService) Welcome(user *entity.User) {
	s.enqueue(user.Email, "Welcome to ClubsHub!", mailData{
		Kind:     "welcome",
		Title:    "Welcome to ClubsHub!",
		UserName: nameOrFallback(user.Name, "Member"),
	})
}

func (s *NotifyService) MembershipApproved(membership *entity.Membership) {
	user, club := membership.User, membership.Club
	if user == nil {
		return
	}
	s.enqueue(user.Email, fmt.Sprintf("Membership Approved - %s", clubNameOf(club)), mailData{
		Kind:     "membershipApproved",
		Title:    "Membership Approved",
		UserName: nameOrFallback(user.Name, "Member"),
		ClubName: clubNameOf(club),
	})
}

func (s *NotifyService) MembershipRejected(membership *entity.Membership) {
	user, club := membership.User, membership.Club
	if user == nil {
		return
	}
	s.enqueue(user.Email, fmt.Sprintf("Membership Update - %s", clubNameOf(club)), mailData{
		Kind:     "membershipRejected",
		Title:    "Membership Update",
		UserName: nameOrFallback(user.Name, "Member"),
		ClubName: clubNameOf(club),
	})
}

func (s *NotifyService) MembershipRemoved(membership *entity.Membership) {
	user, club := membership.User, membership.Club
	if user == nil {
		return
	}
	s.enqueue(user.Email, fmt.Sprintf("Membership Removed - %s", clubNameOf(club)), mailData{
		Kind:     "membershipRemoved",
		Title:    "Membership Removed",
		UserName: nameOrFallback(user.Name, "Member"),
		ClubName: clubNameOf(club),
	})
}

// ClubApproved fans out to every member of the club with a known email.
func (s *NotifyService) ClubApproved(club *entity.Club, members []entity.Membership) {
	for _, member := range members {
		if member.User == nil {
			continue
		}
		s.enqueue(member.User.Email, fmt.Sprintf("Club Approved - %s", club.Name), mailData{
			Kind:            "clubApproved",
			Title:           "Club Approved",
			ClubName:        club.Name,
			ClubDescription: descriptionOrFallback(club.Description),
		})
	}
}

func (s *NotifyService) ClubRemoved(club *entity.Club, members []entity.Membership) {
	for _, member := range members {
		if member.User == nil {
			continue
		}
		s.enqueue(member.User.Email, fmt.Sprintf("Club Removed - %s", club.Name), mailData{
			Kind:     "clubRemoved",
			Title:    "Club Removed",
			UserName: nameOrFallback(member.User.Name, "Member"),
			ClubName: club.Name,
		})
	}
}

// NewEvent fans out to the approved members of the event's club.
func (s *NotifyService) NewEvent(event *entity.Event, clubName string, members []entity.Membership) {
	for _, member := range members {
		if member.User == nil {
			continue
		}
		s.enqueue(member.User.Email, fmt.Sprintf("New Event: %s", event.Title), mailData{
			Kind:             "newEvent",
			Title:            fmt.Sprintf("New Event: %s", event.Title),
			UserName:         nameOrFallback(member.User.Name, "Member"),
			ClubName:         clubName,
			EventTitle:       event.Title,
			EventDate:        formatEventDate(event.Date),
			EventDescription: descriptionOrFallback(event.Description),
		})
	}
}

func (s *NotifyService) EventCancelled(event *entity.Event, registrations []entity.EventRegistration) {
	for _, registration := range registrations {
		if registration.User == nil {
			continue
		}
		s.enqueue(registration.User.Email, fmt.Sprintf("Event Cancelled - %s", event.Title), mailData{
			Kind:       "eventCancelled",
			Title:      "Event Cancelled",
			UserName:   nameOrFallback(registration.User.Name, "Member"),
			EventTitle: event.Title,
			EventDate:  formatEventDate(event.Date),
		})
	}
}

func (s *NotifyService) RegistrationConfirmed(user *entity.User, event *entity.Event) {
	s.enqueue(user.Email, "Event Registration Confirmed", mailData{
		Kind:       "registrationConfirmed",
		Title:      "Event Registration Confirmed",
		UserName:   nameOrFallback(user.Name, "Member"),
		EventTitle: event.Title,
		EventDate:  formatEventDate(event.Date),
	})
}

func nameOrFallback(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func clubNameOf(club *entity.Club) string {
	if club == nil || club.Name == "" {
		return "the club"
	}
	return club.Name
}

func descriptionOrFallback(description string) string {
	if description == "" {
		return "Details coming soon."
	}
	return description
}
