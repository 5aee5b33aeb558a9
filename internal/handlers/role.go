package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/dto"
	apierrors "github.com/hackdash/dashboard-api/internal/errors"
	"github.com/hackdash/dashboard-api/internal/services"
)

// RoleHandler coordinates role management HTTP handlers. Every route using it
// is admin-only.
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// RoleRequest is the create/update payload.
type RoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListRoles returns all roles.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.List()
	if err != nil {
		respondRoleError(c, err)
		return
	}

	dtos := make([]dto.RoleDTO, len(roles))
	for i, role := range roles {
		dtos[i] = dto.ToRoleDTO(role)
	}

	c.JSON(http.StatusOK, dtos)
}

// GetRole returns a single role.
func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.Get(id)
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleDTO(*role))
}

// CreateRole creates a new role.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role, err := h.roleService.Create(services.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleDTO(*role))
}

// UpdateRole replaces a role's fields.
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role, err := h.roleService.Update(id, services.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleDTO(*role))
}

// DeleteRole deletes a role; members of the role become roleless.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roleService.Delete(id); err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role successfully deleted",
		"role_id": id,
	})
}

// AssignRole grants the role to a user.
func (h *RoleHandler) AssignRole(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.roleService.AssignUser(roleID, userID)
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UnassignRole clears a user's role. The role id in the path is context only;
// the user's role is cleared whatever it was.
func (h *RoleHandler) UnassignRole(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.roleService.UnassignUser(userID)
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func respondRoleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoleNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
