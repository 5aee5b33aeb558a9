package models

import (
	"time"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName    string `gorm:"type:varchar(255)" json:"first_name"`
	LastName     string `gorm:"type:varchar(255)" json:"last_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Disabled     bool   `gorm:"not null;default:false" json:"disabled"`

	RoleID    *uint64 `json:"role_id"`
	ProjectID *uint64 `json:"project_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Role    *Role    `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"project,omitempty"`

	// A user files at most one request as participant and may mentor any number.
	// The embedding direction is one-way: requests reference users by id only.
	FiledRequest     *MentorshipRequest  `gorm:"foreignKey:ParticipantUserID" json:"-"`
	MentoredRequests []MentorshipRequest `gorm:"foreignKey:MentorUserID" json:"-"`
}
