package repository

import (
	"github.com/hackdash/dashboard-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// SetRole overwrites the user's role foreign key (nil clears it)
	SetRole(userID uint64, roleID *uint64) error

	// SetProject overwrites the user's project foreign key (nil clears it)
	SetProject(userID uint64, projectID *uint64) error
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	// Create creates a new role
	Create(role *models.Role) error

	// FindByID finds a role by ID
	FindByID(id uint64) (*models.Role, error)

	// FindByName finds a role by its unique name
	FindByName(name string) (*models.Role, error)

	// List returns all roles
	List() ([]models.Role, error)

	// Update updates a role
	Update(role *models.Role) error

	// Delete deletes a role, clearing the foreign key of its users
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithOwner creates a project and assigns the owner in one transaction
	CreateWithOwner(project *models.Project, ownerID uint64) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List returns all projects
	List() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project, its prize join rows, and clears member foreign keys
	Delete(id uint64) error

	// ReplaceAttemptedPrizes swaps the whole attempted set in one transaction
	ReplaceAttemptedPrizes(project *models.Project, prizes []models.Prize) error
}

// PrizeRepository defines the interface for prize data access
type PrizeRepository interface {
	// Create creates a new prize
	Create(prize *models.Prize) error

	// FindByID finds a prize by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Prize, error)

	// List returns all prizes
	List() ([]models.Prize, error)

	// Update updates a prize
	Update(prize *models.Prize) error

	// Delete deletes a prize and its project join rows
	Delete(id uint64) error

	// AddWinner adds a project to the prize's won set; duplicate add is a no-op
	AddWinner(prize *models.Prize, project *models.Project) error

	// RemoveWinner removes a project from the won set; missing member is a no-op
	RemoveWinner(prize *models.Prize, project *models.Project) error
}

// MentorshipRequestRepository defines the interface for mentorship request data access
type MentorshipRequestRepository interface {
	// Create creates a new mentorship request
	Create(request *models.MentorshipRequest) error

	// FindByID finds a mentorship request by ID
	FindByID(id uint64) (*models.MentorshipRequest, error)

	// FindByParticipant finds the request filed by the given user, if any
	FindByParticipant(userID uint64) (*models.MentorshipRequest, error)

	// List returns all mentorship requests
	List() ([]models.MentorshipRequest, error)

	// Update updates a mentorship request
	Update(request *models.MentorshipRequest) error

	// Delete deletes a mentorship request
	Delete(id uint64) error

	// SetParticipant overwrites the participant foreign key
	SetParticipant(id, userID uint64) error

	// SetMentor overwrites the mentor foreign key
	SetMentor(id, userID uint64) error
}
