package service

import (
	"context"
	"testing"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *fakeUserStorage) {
	storage := newFakeUserStorage()
	return NewUserService(storage), storage
}

func seedUser(storage *fakeUserStorage, email string, role entity.Role) *entity.User {
	user, _ := storage.Create(context.Background(), &entity.User{
		Email: email,
		Name:  "Someone",
		Role:  role,
	})
	return user
}

func TestPromote(t *testing.T) {
	svc, storage := newUserFixture()
	member := seedUser(storage, "member@example.com", entity.RoleMember)

	promoted, err := svc.Promote(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)
	assert.Equal(t, entity.RoleAdmin, storage.users[member.ID].Role)
}

func TestPromoteAdminIsIdempotent(t *testing.T) {
	svc, storage := newUserFixture()
	admin := seedUser(storage, "admin@example.com", entity.RoleAdmin)

	promoted, err := svc.Promote(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)
}

func TestPromoteUnknownUser(t *testing.T) {
	svc, _ := newUserFixture()

	_, err := svc.Promote(context.Background(), 404)
	assert.ErrorIs(t, err, errorz.NotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, storage := newUserFixture()
	admin := seedUser(storage, "admin@example.com", entity.RoleAdmin)
	member := seedUser(storage, "member@example.com", entity.RoleMember)

	require.NoError(t, svc.Delete(context.Background(), admin.ID, member.ID))
	assert.NotContains(t, storage.users, member.ID)
	assert.Contains(t, storage.users, admin.ID)
}

func TestDeleteSelfForbidden(t *testing.T) {
	svc, storage := newUserFixture()
	admin := seedUser(storage, "admin@example.com", entity.RoleAdmin)

	err := svc.Delete(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, errorz.Forbidden)
	assert.Equal(t, "you cannot delete your own account", err.Error())

	// The account survives the refused deletion.
	assert.Contains(t, storage.users, admin.ID)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, storage := newUserFixture()
	admin := seedUser(storage, "admin@example.com", entity.RoleAdmin)

	err := svc.Delete(context.Background(), admin.ID, 404)
	assert.ErrorIs(t, err, errorz.NotFound)
}
