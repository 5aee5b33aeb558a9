package models

import "time"

type MentorshipRequest struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	Title          string `gorm:"type:varchar(255);not null" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	TechnologyUsed string `gorm:"type:varchar(255)" json:"technology_used"`
	Urgency        int    `json:"urgency"`
	ImageURL       string `gorm:"type:varchar(512)" json:"image_url"`
	Resolved       bool   `gorm:"not null;default:false" json:"resolved"`

	// The requester is required; a mentor is assigned later by an organizer.
	ParticipantUserID uint64  `gorm:"not null" json:"participant_user_id"`
	MentorUserID      *uint64 `json:"mentor_user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	ParticipantUser *User `gorm:"foreignKey:ParticipantUserID" json:"-"`
	MentorUser      *User `gorm:"foreignKey:MentorUserID" json:"-"`
}
