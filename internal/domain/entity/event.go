package entity

import "time"

type EventType string

const (
	EventTypeClub      EventType = "CLUB"
	EventTypeInstitute EventType = "INSTITUTE"
)

// Event is a scheduled happening, either tied to a club or institute-wide
// (ClubID nil).
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Type        EventType `gorm:"not null;default:CLUB" json:"type"`
	ClubID      *uint     `json:"clubId"`

	Club *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}
