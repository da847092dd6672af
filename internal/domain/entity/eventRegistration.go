package entity

import "time"

// EventRegistration records that a user attends an event. Unlike club
// membership there is no approval gate, the row itself is the ticket.
type EventRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `gorm:"not null" json:"userId"`
	EventID   uint      `gorm:"not null" json:"eventId"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
