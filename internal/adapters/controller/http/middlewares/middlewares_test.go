package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubshub/clubshub/internal/domain/common/errorz"
	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/pkg/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[uint]*entity.User
}

func (f *fakeUsers) Get(_ context.Context, id uint) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errorz.NotFoundf("user not found")
	}
	return user, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *tokens.Manager, *fakeUsers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := tokens.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	users := &fakeUsers{users: map[uint]*entity.User{
		1: {ID: 1, Email: "member@example.com", Role: entity.RoleMember},
		2: {ID: 2, Email: "admin@example.com", Role: entity.RoleAdmin},
	}}

	middle := New(manager, users)

	router := gin.New()
	router.GET("/protected", middle.Auth(), func(ctx *gin.Context) {
		user, err := CurrentUser(ctx)
		require.NoError(t, err)
		ctx.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/admin", middle.Auth(), middle.AdminOnly(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router, manager, users
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization token is required")
}

func TestAuthMalformedHeader(t *testing.T) {
	router, manager, _ := newTestRouter(t)

	token, err := manager.Generate(1, string(entity.RoleMember))
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bearer {token}")
}

func TestAuthInvalidToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(router, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuthDeletedUser(t *testing.T) {
	router, manager, users := newTestRouter(t)

	token, err := manager.Generate(1, string(entity.RoleMember))
	require.NoError(t, err)
	delete(users.users, 1)

	// A live token no longer opens the door once the account is gone.
	rec := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

func TestAuthSuccess(t *testing.T) {
	router, manager, _ := newTestRouter(t)

	token, err := manager.Generate(1, string(entity.RoleMember))
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "member@example.com")
}

func TestAdminOnlyRejectsMember(t *testing.T) {
	router, manager, _ := newTestRouter(t)

	token, err := manager.Generate(1, string(entity.RoleMember))
	require.NoError(t, err)

	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin access required")
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	router, manager, _ := newTestRouter(t)

	token, err := manager.Generate(2, string(entity.RoleAdmin))
	require.NoError(t, err)

	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
