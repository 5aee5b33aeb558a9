package services

import (
	"errors"
	"fmt"

	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("unable to find role with given criteria")

// RoleService provides business logic for role management.
type RoleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo repository.RoleRepository, userRepo repository.UserRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
	}
}

// List returns all roles.
func (s *RoleService) List() ([]models.Role, error) {
	return s.roleRepo.List()
}

// Get returns a role by ID.
func (s *RoleService) Get(id uint64) (*models.Role, error) {
	return s.findRole(id)
}

// RoleInput represents the writable fields of a role.
type RoleInput struct {
	Name        string
	Description string
}

// Create creates a new role.
func (s *RoleService) Create(input RoleInput) (*models.Role, error) {
	role := &models.Role{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return role, nil
}

// Update replaces the writable fields of a role.
func (s *RoleService) Update(id uint64, input RoleInput) (*models.Role, error) {
	role, err := s.findRole(id)
	if err != nil {
		return nil, err
	}

	role.Name = input.Name
	role.Description = input.Description

	if err := s.roleRepo.Update(role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return role, nil
}

// Delete removes a role. Users holding it keep their accounts, roleless.
func (s *RoleService) Delete(id uint64) error {
	if _, err := s.findRole(id); err != nil {
		return err
	}

	if err := s.roleRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	return nil
}

// AssignUser grants the role to the user, replacing any previous role.
func (s *RoleService) AssignUser(roleID, userID uint64) (*models.User, error) {
	if _, err := s.findRole(roleID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.SetRole(userID, &roleID); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	return s.userRepo.FindByID(userID)
}

// UnassignUser clears the user's role.
func (s *RoleService) UnassignUser(userID uint64) (*models.User, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.SetRole(userID, nil); err != nil {
		return nil, fmt.Errorf("failed to unassign role: %w", err)
	}

	return s.userRepo.FindByID(userID)
}

// findRole is the single lookup used by every role operation, so a missing
// role produces the same outcome on all paths.
func (s *RoleService) findRole(id uint64) (*models.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return role, nil
}
