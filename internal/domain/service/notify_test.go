package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailTask
	fail bool
}

func (m *recordingMailer) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, mailTask{to: to, subject: subject, body: html})
	return nil
}

func (m *recordingMailer) all() []mailTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailTask(nil), m.sent...)
}

func TestNotifyWelcome(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 2, 16)

	svc.Welcome(&entity.User{Email: "alice@example.com", Name: "Alice"})
	svc.Close()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "alice@example.com", sent[0].to)
	assert.Equal(t, "Welcome to ClubsHub!", sent[0].subject)
	assert.Contains(t, sent[0].body, "Alice")

	stats := svc.Stats()
	assert.Equal(t, uint64(1), stats.Enqueued)
	assert.Equal(t, uint64(1), stats.Sent)
	assert.Zero(t, stats.Failed)
	assert.Zero(t, stats.Dropped)
}

func TestNotifySkipsEmptyEmail(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 1, 16)

	svc.Welcome(&entity.User{Email: ""})
	svc.Close()

	assert.Empty(t, mailer.all())
	assert.Zero(t, svc.Stats().Enqueued)
}

func TestNotifyCountsFailures(t *testing.T) {
	mailer := &recordingMailer{fail: true}
	svc := NewNotifyService(mailer, testLogger(), 1, 16)

	svc.Welcome(&entity.User{Email: "alice@example.com"})
	svc.Close()

	stats := svc.Stats()
	assert.Equal(t, uint64(1), stats.Enqueued)
	assert.Equal(t, uint64(1), stats.Failed)
	assert.Zero(t, stats.Sent)
}

func TestNotifyCloseDrainsQueue(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 2, 64)

	for i := 0; i < 20; i++ {
		svc.Welcome(&entity.User{Email: "alice@example.com"})
	}
	svc.Close()

	assert.Len(t, mailer.all(), 20)
	assert.Equal(t, uint64(20), svc.Stats().Sent)
}

func TestNotifyMembershipSkipsUnloadedUser(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 1, 16)

	svc.MembershipApproved(&entity.Membership{ID: 1})
	svc.Close()

	assert.Empty(t, mailer.all())
}

func TestNotifyNewEventFanOut(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 2, 16)

	event := &entity.Event{Title: "Hack Night", Description: "Bring a project"}
	members := []entity.Membership{
		{User: &entity.User{Email: "alice@example.com", Name: "Alice"}},
		{User: nil},
		{User: &entity.User{Email: "bob@example.com", Name: "Bob"}},
	}
	svc.NewEvent(event, "Robotics", members)
	svc.Close()

	sent := mailer.all()
	require.Len(t, sent, 2)
	for _, task := range sent {
		assert.Equal(t, "New Event: Hack Night", task.subject)
		assert.Contains(t, task.body, "Robotics")
	}
}

func TestNotifyEventDateFormatting(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewNotifyService(mailer, testLogger(), 1, 16)

	// Zero date renders as TBA rather than the zero time.
	svc.RegistrationConfirmed(
		&entity.User{Email: "alice@example.com", Name: "Alice"},
		&entity.Event{Title: "Hack Night"},
	)
	svc.Close()

	sent := mailer.all()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].body, "TBA")
	assert.False(t, strings.Contains(sent[0].body, "0001"))
}

func TestNotifyCloseIsIdempotent(t *testing.T) {
	svc := NewNotifyService(&recordingMailer{}, testLogger(), 1, 16)
	svc.Close()
	svc.Close()
}
