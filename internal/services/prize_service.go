package services

import (
	"errors"
	"fmt"

	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var ErrPrizeNotFound = errors.New("unable to find prize with given criteria")

// PrizeService provides business logic for prize management and winner curation.
type PrizeService struct {
	prizeRepo   repository.PrizeRepository
	projectRepo repository.ProjectRepository
}

// NewPrizeService creates a new PrizeService.
func NewPrizeService(prizeRepo repository.PrizeRepository, projectRepo repository.ProjectRepository) *PrizeService {
	return &PrizeService{
		prizeRepo:   prizeRepo,
		projectRepo: projectRepo,
	}
}

// List returns all prizes.
func (s *PrizeService) List() ([]models.Prize, error) {
	return s.prizeRepo.List()
}

// Get returns a prize by ID with its winners.
func (s *PrizeService) Get(id uint64) (*models.Prize, error) {
	return s.findPrize(id, "WinningProjects")
}

// PrizeInput represents the writable fields of a prize.
type PrizeInput struct {
	Title       string
	Description string
	Reward      string
	Sponsor     string
	Priority    int
	Selectable  bool
}

// Create creates a new prize.
func (s *PrizeService) Create(input PrizeInput) (*models.Prize, error) {
	prize := prizeFromInput(input)

	if err := s.prizeRepo.Create(prize); err != nil {
		return nil, fmt.Errorf("failed to create prize: %w", err)
	}

	return prize, nil
}

// Update replaces the writable fields of a prize.
func (s *PrizeService) Update(id uint64, input PrizeInput) (*models.Prize, error) {
	prize, err := s.findPrize(id)
	if err != nil {
		return nil, err
	}

	updated := prizeFromInput(input)
	updated.ID = prize.ID
	updated.CreatedAt = prize.CreatedAt

	if err := s.prizeRepo.Update(updated); err != nil {
		return nil, fmt.Errorf("failed to update prize: %w", err)
	}

	return s.findPrize(id, "WinningProjects")
}

// Delete removes a prize and its join rows; projects are untouched.
func (s *PrizeService) Delete(id uint64) error {
	if _, err := s.findPrize(id); err != nil {
		return err
	}

	if err := s.prizeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}

	return nil
}

// AssignWinner adds the project to the prize's won set. Assigning an existing
// winner again leaves the set unchanged.
func (s *PrizeService) AssignWinner(prizeID, projectID uint64) (*models.Prize, error) {
	prize, err := s.findPrize(prizeID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.prizeRepo.AddWinner(prize, project); err != nil {
		return nil, fmt.Errorf("failed to assign winner: %w", err)
	}

	return s.findPrize(prizeID, "WinningProjects")
}

// RemoveWinner removes the project from the won set; removing a project that
// never won is a no-op.
func (s *PrizeService) RemoveWinner(prizeID, projectID uint64) (*models.Prize, error) {
	prize, err := s.findPrize(prizeID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.prizeRepo.RemoveWinner(prize, project); err != nil {
		return nil, fmt.Errorf("failed to remove winner: %w", err)
	}

	return s.findPrize(prizeID, "WinningProjects")
}

// findPrize is the single lookup used by every prize operation.
func (s *PrizeService) findPrize(id uint64, preload ...string) (*models.Prize, error) {
	prize, err := s.prizeRepo.FindByID(id, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to find prize: %w", err)
	}
	return prize, nil
}

func prizeFromInput(input PrizeInput) *models.Prize {
	return &models.Prize{
		Title:       input.Title,
		Description: input.Description,
		Reward:      input.Reward,
		Sponsor:     input.Sponsor,
		Priority:    input.Priority,
		Selectable:  input.Selectable,
	}
}
