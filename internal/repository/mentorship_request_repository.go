package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

// GormMentorshipRequestRepository is a GORM implementation of MentorshipRequestRepository
type GormMentorshipRequestRepository struct {
	db *gorm.DB
}

// NewMentorshipRequestRepository creates a new MentorshipRequestRepository
func NewMentorshipRequestRepository(db *gorm.DB) MentorshipRequestRepository {
	return &GormMentorshipRequestRepository{db: db}
}

// Create creates a new mentorship request
func (r *GormMentorshipRequestRepository) Create(request *models.MentorshipRequest) error {
	return r.db.Create(request).Error
}

// FindByID finds a mentorship request by ID
func (r *GormMentorshipRequestRepository) FindByID(id uint64) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindByParticipant finds the request filed by the given user, if any
func (r *GormMentorshipRequestRepository) FindByParticipant(userID uint64) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	if err := r.db.Where("participant_user_id = ?", userID).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns all mentorship requests
func (r *GormMentorshipRequestRepository) List() ([]models.MentorshipRequest, error) {
	var requests []models.MentorshipRequest
	if err := r.db.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Update updates a mentorship request
func (r *GormMentorshipRequestRepository) Update(request *models.MentorshipRequest) error {
	return r.db.Save(request).Error
}

// Delete deletes a mentorship request
func (r *GormMentorshipRequestRepository) Delete(id uint64) error {
	return r.db.Delete(&models.MentorshipRequest{}, id).Error
}

// SetParticipant overwrites the participant foreign key
func (r *GormMentorshipRequestRepository) SetParticipant(id, userID uint64) error {
	return r.db.Model(&models.MentorshipRequest{}).Where("id = ?", id).
		Update("participant_user_id", userID).Error
}

// SetMentor overwrites the mentor foreign key
func (r *GormMentorshipRequestRepository) SetMentor(id, userID uint64) error {
	return r.db.Model(&models.MentorshipRequest{}).Where("id = ?", id).
		Update("mentor_user_id", userID).Error
}
