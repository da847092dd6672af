package validator

import (
	"testing"
	"time"

	"github.com/clubshub/clubshub/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	assert.False(t, Password(""))
	assert.False(t, Password("12345"))
	assert.True(t, Password("123456"))
	assert.True(t, Password("a-much-longer-password"))
}

func TestClubCategory(t *testing.T) {
	assert.True(t, ClubCategory(entity.CategoryTech))
	assert.True(t, ClubCategory(entity.CategoryNonTech))
	assert.True(t, ClubCategory(entity.CategoryExtracurricular))
	assert.False(t, ClubCategory(""))
	assert.False(t, ClubCategory("SPORTS"))
	assert.False(t, ClubCategory("tech"))
}

func TestEventDate(t *testing.T) {
	assert.False(t, EventDate(time.Time{}))
	assert.False(t, EventDate(time.Now().Add(-time.Second)))
	assert.True(t, EventDate(time.Now().Add(time.Minute)))
}

func TestEventType(t *testing.T) {
	assert.True(t, EventType(entity.EventTypeClub))
	assert.True(t, EventType(entity.EventTypeInstitute))
	assert.False(t, EventType(""))
	assert.False(t, EventType("WORKSHOP"))
}
