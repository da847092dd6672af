package service

import (
	"context"
	"fmt"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/pkg/logger/types"
	"go.uber.org/zap"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "test"}
}

// journal records the order of side effects across fakes.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...interface{}) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

type fakeUserStorage struct {
	users  map[uint]*entity.User
	nextID uint
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[uint]*entity.User{}}
}

func (s *fakeUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, errorz.Conflictf("user already exists")
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStorage) Get(_ context.Context, id uint) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, errorz.NotFoundf("user not found")
	}
	return user, nil
}

func (s *fakeUserStorage) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errorz.NotFoundf("no account found for this email")
}

func (s *fakeUserStorage) GetAll(_ context.Context) ([]entity.User, error) {
	var users []entity.User
	for _, user := range s.users {
		users = append(users, *user)
	}
	return users, nil
}

func (s *fakeUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStorage) Delete(_ context.Context, id uint) error {
	delete(s.users, id)
	return nil
}

type fakeClubStorage struct {
	clubs    map[uint]*entity.Club
	nextID   uint
	getCalls int
}

func newFakeClubStorage() *fakeClubStorage {
	return &fakeClubStorage{clubs: map[uint]*entity.Club{}}
}

func (s *fakeClubStorage) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	s.nextID++
	club.ID = s.nextID
	s.clubs[club.ID] = club
	return club, nil
}

func (s *fakeClubStorage) Get(_ context.Context, id uint) (*entity.Club, error) {
	club, ok := s.clubs[id]
	if !ok {
		return nil, errorz.NotFoundf("club not found")
	}
	return club, nil
}

func (s *fakeClubStorage) GetApproved(_ context.Context) ([]entity.Club, error) {
	s.getCalls++
	var clubs []entity.Club
	for _, club := range s.clubs {
		if club.Approved {
			clubs = append(clubs, *club)
		}
	}
	return clubs, nil
}

func (s *fakeClubStorage) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	s.clubs[club.ID] = club
	return club, nil
}

func (s *fakeClubStorage) Delete(_ context.Context, id uint) error {
	delete(s.clubs, id)
	return nil
}

type fakeMembershipStorage struct {
	memberships map[uint]*entity.Membership
	nextID      uint
	journal     *journal
}

func newFakeMembershipStorage(j *journal) *fakeMembershipStorage {
	return &fakeMembershipStorage{memberships: map[uint]*entity.Membership{}, journal: j}
}

func (s *fakeMembershipStorage) Create(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	for _, existing := range s.memberships {
		if existing.UserID == membership.UserID && existing.ClubID == membership.ClubID {
			return nil, errorz.Conflictf("membership already requested for this club")
		}
	}
	s.nextID++
	membership.ID = s.nextID
	s.memberships[membership.ID] = membership
	return membership, nil
}

func (s *fakeMembershipStorage) Get(_ context.Context, id uint) (*entity.Membership, error) {
	membership, ok := s.memberships[id]
	if !ok {
		return nil, errorz.NotFoundf("membership request not found")
	}
	return membership, nil
}

func (s *fakeMembershipStorage) Update(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	s.memberships[membership.ID] = membership
	return membership, nil
}

func (s *fakeMembershipStorage) Delete(_ context.Context, id uint) error {
	if s.journal != nil {
		s.journal.add("delete membership %d", id)
	}
	delete(s.memberships, id)
	return nil
}

func (s *fakeMembershipStorage) GetAll(_ context.Context) ([]entity.Membership, error) {
	var memberships []entity.Membership
	for _, membership := range s.memberships {
		memberships = append(memberships, *membership)
	}
	return memberships, nil
}

func (s *fakeMembershipStorage) GetByUserID(_ context.Context, userID uint) ([]entity.Membership, error) {
	var memberships []entity.Membership
	for _, membership := range s.memberships {
		if membership.UserID == userID {
			memberships = append(memberships, *membership)
		}
	}
	return memberships, nil
}

func (s *fakeMembershipStorage) GetByClubID(_ context.Context, clubID uint) ([]entity.Membership, error) {
	var memberships []entity.Membership
	for _, membership := range s.memberships {
		if membership.ClubID == clubID {
			memberships = append(memberships, *membership)
		}
	}
	return memberships, nil
}

func (s *fakeMembershipStorage) GetByClubIDAndStatus(_ context.Context, clubID uint, status entity.MembershipStatus) ([]entity.Membership, error) {
	var memberships []entity.Membership
	for _, membership := range s.memberships {
		if membership.ClubID == clubID && membership.Status == status {
			memberships = append(memberships, *membership)
		}
	}
	return memberships, nil
}

type fakeEventStorage struct {
	events  map[uint]*entity.Event
	nextID  uint
	journal *journal
}

func newFakeEventStorage(j *journal) *fakeEventStorage {
	return &fakeEventStorage{events: map[uint]*entity.Event{}, journal: j}
}

func (s *fakeEventStorage) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	s.nextID++
	event.ID = s.nextID
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventStorage) Get(_ context.Context, id uint) (*entity.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, errorz.NotFoundf("event not found")
	}
	return event, nil
}

func (s *fakeEventStorage) GetAll(_ context.Context) ([]entity.Event, error) {
	var events []entity.Event
	for _, event := range s.events {
		events = append(events, *event)
	}
	return events, nil
}

func (s *fakeEventStorage) Delete(_ context.Context, id uint) error {
	if s.journal != nil {
		s.journal.add("delete event %d", id)
	}
	delete(s.events, id)
	return nil
}

type fakeRegistrationStorage struct {
	registrations map[uint]*entity.EventRegistration
	nextID        uint
}

func newFakeRegistrationStorage() *fakeRegistrationStorage {
	return &fakeRegistrationStorage{registrations: map[uint]*entity.EventRegistration{}}
}

func (s *fakeRegistrationStorage) Create(_ context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error) {
	s.nextID++
	registration.ID = s.nextID
	s.registrations[registration.ID] = registration
	return registration, nil
}

func (s *fakeRegistrationStorage) Get(_ context.Context, id uint) (*entity.EventRegistration, error) {
	registration, ok := s.registrations[id]
	if !ok {
		return nil, errorz.NotFoundf("event registration not found")
	}
	return registration, nil
}

func (s *fakeRegistrationStorage) GetAll(_ context.Context) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	for _, registration := range s.registrations {
		registrations = append(registrations, *registration)
	}
	return registrations, nil
}

func (s *fakeRegistrationStorage) GetByUserID(_ context.Context, userID uint) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	for _, registration := range s.registrations {
		if registration.UserID == userID {
			registrations = append(registrations, *registration)
		}
	}
	return registrations, nil
}

func (s *fakeRegistrationStorage) GetByEventID(_ context.Context, eventID uint) ([]entity.EventRegistration, error) {
	var registrations []entity.EventRegistration
	for _, registration := range s.registrations {
		if registration.EventID == eventID {
			registrations = append(registrations, *registration)
		}
	}
	return registrations, nil
}

// fakeNotifier satisfies every service-side notifier interface and records
// what was dispatched.
type fakeNotifier struct {
	journal *journal
}

func newFakeNotifier(j *journal) *fakeNotifier {
	return &fakeNotifier{journal: j}
}

func (n *fakeNotifier) Welcome(user *entity.User) {
	n.journal.add("welcome %s", user.Email)
}

func (n *fakeNotifier) MembershipApproved(m *entity.Membership) {
	n.journal.add("membership approved %d", m.ID)
}

func (n *fakeNotifier) MembershipRejected(m *entity.Membership) {
	n.journal.add("membership rejected %d", m.ID)
}

func (n *fakeNotifier) MembershipRemoved(m *entity.Membership) {
	n.journal.add("membership removed %d", m.ID)
}

func (n *fakeNotifier) ClubApproved(club *entity.Club, members []entity.Membership) {
	n.journal.add("club approved %d to %d members", club.ID, len(members))
}

func (n *fakeNotifier) ClubRemoved(club *entity.Club, members []entity.Membership) {
	n.journal.add("club removed %d to %d members", club.ID, len(members))
}

func (n *fakeNotifier) NewEvent(event *entity.Event, clubName string, members []entity.Membership) {
	n.journal.add("new event %d (%s) to %d members", event.ID, clubName, len(members))
}

func (n *fakeNotifier) EventCancelled(event *entity.Event, registrations []entity.EventRegistration) {
	n.journal.add("event cancelled %d to %d registrants", event.ID, len(registrations))
}

func (n *fakeNotifier) RegistrationConfirmed(user *entity.User, event *entity.Event) {
	n.journal.add("registration confirmed %s for %d", user.Email, event.ID)
}

type fakeClubCache struct {
	listing     []entity.Club
	warm        bool
	invalidated int
}

func (c *fakeClubCache) Get(_ context.Context) ([]entity.Club, bool, error) {
	if !c.warm {
		return nil, false, nil
	}
	return c.listing, true, nil
}

func (c *fakeClubCache) Set(_ context.Context, listing []entity.Club) error {
	c.listing = listing
	c.warm = true
	return nil
}

func (c *fakeClubCache) Invalidate(_ context.Context) error {
	c.listing = nil
	c.warm = false
	c.invalidated++
	return nil
}
