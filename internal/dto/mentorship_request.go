package dto

import (
	"github.com/hackdash/dashboard-api/internal/models"
)

// MentorshipRequestDTO represents a help ticket in API responses. Users are
// referenced by id so the "requests I filed" and "requests I mentor"
// collections never embed user objects.
type MentorshipRequestDTO struct {
	ID                uint64  `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	TechnologyUsed    string  `json:"technology_used"`
	Urgency           int     `json:"urgency"`
	ImageURL          string  `json:"image_url"`
	Resolved          bool    `json:"resolved"`
	ParticipantUserID uint64  `json:"participant_user_id"`
	MentorUserID      *uint64 `json:"mentor_user_id"`
}

// ToMentorshipRequestDTO converts a MentorshipRequest model
func ToMentorshipRequestDTO(request models.MentorshipRequest) MentorshipRequestDTO {
	return MentorshipRequestDTO{
		ID:                request.ID,
		Title:             request.Title,
		Description:       request.Description,
		TechnologyUsed:    request.TechnologyUsed,
		Urgency:           request.Urgency,
		ImageURL:          request.ImageURL,
		Resolved:          request.Resolved,
		ParticipantUserID: request.ParticipantUserID,
		MentorUserID:      request.MentorUserID,
	}
}

// ToMentorshipRequestDTOs converts a slice of MentorshipRequest models
func ToMentorshipRequestDTOs(requests []models.MentorshipRequest) []MentorshipRequestDTO {
	dtos := make([]MentorshipRequestDTO, len(requests))
	for i, request := range requests {
		dtos[i] = ToMentorshipRequestDTO(request)
	}
	return dtos
}
