package models

import "time"

// Fixed role vocabulary seeded at startup. Tiers are expressed as explicit
// allowed-role sets per endpoint, not as inheritance between these names.
const (
	RoleAdmin       = "admin"
	RoleOrganizer   = "organizer"
	RoleParticipant = "participant"
)

type Role struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
