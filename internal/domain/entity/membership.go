package entity

import "time"

type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "PENDING"
	MembershipApproved MembershipStatus = "APPROVED"
	MembershipRejected MembershipStatus = "REJECTED"
)

// Membership links a user to a club. One row per (user, club) pair.
type Membership struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	UserID    uint             `gorm:"not null;uniqueIndex:idx_user_club" json:"userId"`
	ClubID    uint             `gorm:"not null;uniqueIndex:idx_user_club" json:"clubId"`
	Status    MembershipStatus `gorm:"not null;default:PENDING" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Club *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}
