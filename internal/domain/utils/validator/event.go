package validator

import (
	"time"

	"github.com/clubshub/clubshub/internal/domain/entity"
)

// EventDate accepts only dates strictly in the future.
func EventDate(date time.Time) bool {
	return date.After(time.Now())
}

func EventType(eventType entity.EventType) bool {
	switch eventType {
	case entity.EventTypeClub, entity.EventTypeInstitute:
		return true
	}
	return false
}
