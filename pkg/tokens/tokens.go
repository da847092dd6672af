package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager signs and verifies session tokens. It is constructed once and
// injected where needed instead of living as a package global.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// Claims is the authenticated principal encoded in a token.
type Claims struct {
	UserID uint
	Role   string
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is not set")
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Generate issues a signed token carrying the user id and role.
func (m *Manager) Generate(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token string and extracts its claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user id in token claims")
	}
	role, _ := mapClaims["role"].(string)

	return &Claims{UserID: uint(userID), Role: role}, nil
}
