package services

import (
	"errors"
	"fmt"

	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("unable to find project with given criteria")
	ErrAlreadyHasProject   = errors.New("you are already assigned to a project")
	ErrUserAlreadyAssigned = errors.New("target user is already assigned to a project")
	ErrProjectAccessDenied = errors.New("project access denied")
)

// ProjectService provides business logic for project management.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	prizeRepo   repository.PrizeRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, prizeRepo repository.PrizeRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		prizeRepo:   prizeRepo,
		userRepo:    userRepo,
	}
}

// List returns all projects. Organizer tier and above.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.List()
}

// Get returns a project. Participants may only view their own project; the
// mismatch is a denial, not a not-found, so existence is not hidden.
func (s *ProjectService) Get(actor *models.User, id uint64) (*models.Project, error) {
	project, err := s.findProject(id, "Members", "PrizesAttempted", "PrizesWon")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(actor, id); err != nil {
		return nil, err
	}

	return project, nil
}

// ProjectInput represents the writable fields of a project.
type ProjectInput struct {
	Name             string
	Description      string
	ImageURL         string
	GithubLink       string
	VideoLink        string
	Inspiration      string
	Functionality    string
	Architecture     string
	TechnologiesUsed string
	Challenges       string
	Lessons          string
	NextSteps        string
	InPerson         bool
	NeedsPowerOutlet bool
}

// Create creates a project and makes the acting user its first member, in one
// transaction. A user already on a project must leave or delete it first.
func (s *ProjectService) Create(actor *models.User, input ProjectInput) (*models.Project, error) {
	current, err := s.userRepo.FindByID(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if current.ProjectID != nil {
		return nil, ErrAlreadyHasProject
	}

	project := projectFromInput(input)
	if err := s.projectRepo.CreateWithOwner(project, actor.ID); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.findProject(project.ID, "Members")
}

// Update replaces the writable fields of a project. Participants may only
// update their own project.
func (s *ProjectService) Update(actor *models.User, id uint64, input ProjectInput) (*models.Project, error) {
	project, err := s.findProject(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(actor, id); err != nil {
		return nil, err
	}

	updated := projectFromInput(input)
	updated.ID = project.ID
	updated.CreatedAt = project.CreatedAt

	if err := s.projectRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.findProject(id, "Members", "PrizesAttempted", "PrizesWon")
}

// Delete removes a project. Members keep their accounts, prize rows survive,
// and the project disappears from every winner list.
func (s *ProjectService) Delete(actor *models.User, id uint64) error {
	if _, err := s.findProject(id); err != nil {
		return err
	}

	if err := s.checkOwnership(actor, id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// AddUser adds a user to the project. A user can only ever be on one project.
func (s *ProjectService) AddUser(actor *models.User, projectID, userID uint64) (*models.Project, error) {
	if _, err := s.findProject(projectID); err != nil {
		return nil, err
	}

	if err := s.checkOwnership(actor, projectID); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if target.ProjectID != nil {
		return nil, ErrUserAlreadyAssigned
	}

	if err := s.userRepo.SetProject(userID, &projectID); err != nil {
		return nil, fmt.Errorf("failed to assign user: %w", err)
	}

	return s.findProject(projectID, "Members")
}

// RemoveUser clears the user's project foreign key unconditionally.
// Participants may only remove themselves.
func (s *ProjectService) RemoveUser(actor *models.User, projectID, userID uint64) (*models.User, error) {
	if _, err := s.findProject(projectID); err != nil {
		return nil, err
	}

	if actor.Role != nil && actor.Role.Name == models.RoleParticipant && actor.ID != userID {
		return nil, ErrProjectAccessDenied
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.SetProject(userID, nil); err != nil {
		return nil, fmt.Errorf("failed to remove user: %w", err)
	}

	return s.userRepo.FindByID(userID)
}

// AttemptPrizes replaces the project's whole attempted set. Any unresolvable
// prize id aborts before anything is written, leaving the prior set intact.
func (s *ProjectService) AttemptPrizes(actor *models.User, projectID uint64, prizeIDs []uint64) (*models.Project, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(actor, projectID); err != nil {
		return nil, err
	}

	prizes := make([]models.Prize, 0, len(prizeIDs))
	for _, prizeID := range prizeIDs {
		prize, err := s.prizeRepo.FindByID(prizeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPrizeNotFound
			}
			return nil, fmt.Errorf("failed to find prize: %w", err)
		}
		prizes = append(prizes, *prize)
	}

	if err := s.projectRepo.ReplaceAttemptedPrizes(project, prizes); err != nil {
		return nil, fmt.Errorf("failed to replace attempted prizes: %w", err)
	}

	return s.findProject(projectID, "PrizesAttempted", "PrizesWon")
}

// checkOwnership denies participants acting on a project other than their own.
// Organizer tier and above pass unconditionally.
func (s *ProjectService) checkOwnership(actor *models.User, projectID uint64) error {
	if actor.Role == nil || actor.Role.Name != models.RoleParticipant {
		return nil
	}

	if actor.ProjectID == nil || *actor.ProjectID != projectID {
		return ErrProjectAccessDenied
	}

	return nil
}

// findProject is the single lookup used by every project operation.
func (s *ProjectService) findProject(id uint64, preload ...string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

func projectFromInput(input ProjectInput) *models.Project {
	return &models.Project{
		Name:             input.Name,
		Description:      input.Description,
		ImageURL:         input.ImageURL,
		GithubLink:       input.GithubLink,
		VideoLink:        input.VideoLink,
		Inspiration:      input.Inspiration,
		Functionality:    input.Functionality,
		Architecture:     input.Architecture,
		TechnologiesUsed: input.TechnologiesUsed,
		Challenges:       input.Challenges,
		Lessons:          input.Lessons,
		NextSteps:        input.NextSteps,
		InPerson:         input.InPerson,
		NeedsPowerOutlet: input.NeedsPowerOutlet,
	}
}
