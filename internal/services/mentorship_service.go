package services

import (
	"errors"
	"fmt"

	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMentorshipRequestNotFound = errors.New("unable to find mentorship request with given criteria")
	ErrAlreadyHasRequest         = errors.New("you already have an open mentorship request")
	ErrRequestAccessDenied       = errors.New("mentorship request access denied")
)

// MentorshipService provides business logic for the help-ticket queue.
type MentorshipService struct {
	requestRepo repository.MentorshipRequestRepository
	userRepo    repository.UserRepository
}

// NewMentorshipService creates a new MentorshipService.
func NewMentorshipService(requestRepo repository.MentorshipRequestRepository, userRepo repository.UserRepository) *MentorshipService {
	return &MentorshipService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// List returns all mentorship requests. Organizer tier and above.
func (s *MentorshipService) List() ([]models.MentorshipRequest, error) {
	return s.requestRepo.List()
}

// Get returns a request. Participants may only view requests they filed.
func (s *MentorshipService) Get(actor *models.User, id uint64) (*models.MentorshipRequest, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if err := checkRequestOwnership(actor, request); err != nil {
		return nil, err
	}

	return request, nil
}

// MentorshipRequestInput represents the writable fields of a request.
type MentorshipRequestInput struct {
	Title          string
	Description    string
	TechnologyUsed string
	Urgency        int
	ImageURL       string
	Resolved       bool
}

// Create files a new request for the acting user. One request per participant
// at a time.
func (s *MentorshipService) Create(actor *models.User, input MentorshipRequestInput) (*models.MentorshipRequest, error) {
	if _, err := s.requestRepo.FindByParticipant(actor.ID); err == nil {
		return nil, ErrAlreadyHasRequest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing request: %w", err)
	}

	request := &models.MentorshipRequest{
		Title:             input.Title,
		Description:       input.Description,
		TechnologyUsed:    input.TechnologyUsed,
		Urgency:           input.Urgency,
		ImageURL:          input.ImageURL,
		ParticipantUserID: actor.ID,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create mentorship request: %w", err)
	}

	return request, nil
}

// Update replaces the writable fields of a request. Participants may only
// update requests they filed.
func (s *MentorshipService) Update(actor *models.User, id uint64, input MentorshipRequestInput) (*models.MentorshipRequest, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if err := checkRequestOwnership(actor, request); err != nil {
		return nil, err
	}

	request.Title = input.Title
	request.Description = input.Description
	request.TechnologyUsed = input.TechnologyUsed
	request.Urgency = input.Urgency
	request.ImageURL = input.ImageURL
	request.Resolved = input.Resolved

	if err := s.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update mentorship request: %w", err)
	}

	return request, nil
}

// Delete removes a request. Participants may only delete requests they filed.
func (s *MentorshipService) Delete(actor *models.User, id uint64) error {
	request, err := s.findRequest(id)
	if err != nil {
		return err
	}

	if err := checkRequestOwnership(actor, request); err != nil {
		return err
	}

	if err := s.requestRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete mentorship request: %w", err)
	}

	return nil
}

// SetParticipant overwrites the requester. No target-user validation beyond
// the foreign key, matching the curation workflow.
func (s *MentorshipService) SetParticipant(id, userID uint64) (*models.MentorshipRequest, error) {
	if _, err := s.findRequest(id); err != nil {
		return nil, err
	}

	if err := s.requestRepo.SetParticipant(id, userID); err != nil {
		return nil, fmt.Errorf("failed to set participant: %w", err)
	}

	return s.findRequest(id)
}

// SetMentor overwrites the assigned mentor.
func (s *MentorshipService) SetMentor(id, userID uint64) (*models.MentorshipRequest, error) {
	if _, err := s.findRequest(id); err != nil {
		return nil, err
	}

	if err := s.requestRepo.SetMentor(id, userID); err != nil {
		return nil, fmt.Errorf("failed to set mentor: %w", err)
	}

	return s.findRequest(id)
}

// checkRequestOwnership denies participants acting on a request filed by
// someone else. Organizer tier and above pass unconditionally.
func checkRequestOwnership(actor *models.User, request *models.MentorshipRequest) error {
	if actor.Role == nil || actor.Role.Name != models.RoleParticipant {
		return nil
	}

	if request.ParticipantUserID != actor.ID {
		return ErrRequestAccessDenied
	}

	return nil
}

// findRequest is the single lookup used by every mentorship request operation.
func (s *MentorshipService) findRequest(id uint64) (*models.MentorshipRequest, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorshipRequestNotFound
		}
		return nil, fmt.Errorf("failed to find mentorship request: %w", err)
	}
	return request, nil
}
