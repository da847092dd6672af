package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/clubshub/clubshub/pkg/tokens"
	"github.com/gin-gonic/gin"
)

const ContextUserKey = "user"

type userGetter interface {
	Get(ctx context.Context, id uint) (*entity.User, error)
}

type Middlewares struct {
	tokens *tokens.Manager
	users  userGetter
}

func New(tokenManager *tokens.Manager, users userGetter) *Middlewares {
	return &Middlewares{
		tokens: tokenManager,
		users:  users,
	}
}

// Auth validates the bearer token and attaches the authenticated user to
// the request context. The user row is re-read so deleted accounts lose
// access immediately even with a live token.
func (m *Middlewares) Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization header format must be Bearer {token}"})
			return
		}

		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		user, err := m.users.Get(ctx.Request.Context(), claims.UserID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

// AdminOnly gates a route group to ADMIN principals. Must run after Auth.
func (m *Middlewares) AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := CurrentUser(ctx)
		if err != nil || !user.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		ctx.Next()
	}
}

// CurrentUser extracts the authenticated user placed by Auth.
func CurrentUser(ctx *gin.Context) (*entity.User, error) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(*entity.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}
	return user, nil
}
