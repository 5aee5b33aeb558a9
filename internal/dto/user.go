package dto

import (
	"github.com/hackdash/dashboard-api/internal/models"
)

// RoleDTO represents a role in API responses
type RoleDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserDTO represents a user in API responses. It embeds the role but refers to
// the project by id only, keeping the serialization graph one-way.
type UserDTO struct {
	ID        uint64   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Disabled  bool     `json:"disabled"`
	Role      *RoleDTO `json:"role"`
	ProjectID *uint64  `json:"project_id"`
}

// ToRoleDTO converts a Role model to RoleDTO
func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Disabled:  user.Disabled,
		ProjectID: user.ProjectID,
	}

	if user.Role != nil {
		role := ToRoleDTO(*user.Role)
		dto.Role = &role
	}

	return dto
}
