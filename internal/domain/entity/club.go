package entity

import "time"

type ClubCategory string

const (
	CategoryTech            ClubCategory = "TECH"
	CategoryNonTech         ClubCategory = "NON_TECH"
	CategoryExtracurricular ClubCategory = "EXTRACURRICULAR"
)

type Club struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Category    ClubCategory `gorm:"not null" json:"category"`
	Approved    bool         `gorm:"not null;default:false" json:"approved"`
	Active      bool         `gorm:"not null;default:true" json:"active"`

	Memberships []Membership `gorm:"foreignKey:ClubID" json:"memberships,omitempty"`
}
