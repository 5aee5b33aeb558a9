package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/dto"
	apierrors "github.com/hackdash/dashboard-api/internal/errors"
	"github.com/hackdash/dashboard-api/internal/middleware"
	"github.com/hackdash/dashboard-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ProjectRequest is the create/update payload.
type ProjectRequest struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	ImageURL         string `json:"image_url"`
	GithubLink       string `json:"github_link"`
	VideoLink        string `json:"video_link"`
	Inspiration      string `json:"inspiration"`
	Functionality    string `json:"functionality"`
	Architecture     string `json:"architecture"`
	TechnologiesUsed string `json:"technologies_used"`
	Challenges       string `json:"challenges"`
	Lessons          string `json:"lessons"`
	NextSteps        string `json:"next_steps"`
	InPerson         bool   `json:"in_person"`
	NeedsPowerOutlet bool   `json:"needs_power_outlet"`
}

func (r ProjectRequest) toInput() services.ProjectInput {
	return services.ProjectInput{
		Name:             r.Name,
		Description:      r.Description,
		ImageURL:         r.ImageURL,
		GithubLink:       r.GithubLink,
		VideoLink:        r.VideoLink,
		Inspiration:      r.Inspiration,
		Functionality:    r.Functionality,
		Architecture:     r.Architecture,
		TechnologiesUsed: r.TechnologiesUsed,
		Challenges:       r.Challenges,
		Lessons:          r.Lessons,
		NextSteps:        r.NextSteps,
		InPerson:         r.InPerson,
		NeedsPowerOutlet: r.NeedsPowerOutlet,
	}
}

// ListProjects returns every submission. Organizer tier and above.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(actor, id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// CreateProject creates a submission owned by the acting user.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(actor, req.toInput())
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject replaces a project's fields.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(actor, id, req.toInput())
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(actor, id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Project successfully deleted",
		"project_id": id,
	})
}

// AddUser adds a user to the project's team.
func (h *ProjectHandler) AddUser(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	project, err := h.projectService.AddUser(actor, projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// RemoveUser removes a user from the project's team.
func (h *ProjectHandler) RemoveUser(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.projectService.RemoveUser(actor, projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// AttemptPrizes replaces the project's self-declared prize attempts.
func (h *ProjectHandler) AttemptPrizes(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type AttemptPrizesRequest struct {
		PrizeIDs []uint64 `json:"prize_ids" binding:"required"`
	}

	var req AttemptPrizesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.AttemptPrizes(actor, id, req.PrizeIDs)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrPrizeNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyHasProject),
		errors.Is(err, services.ErrUserAlreadyAssigned):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrProjectAccessDenied):
		apierrors.Forbidden(c)
	default:
		apierrors.InternalError(c, "")
	}
}
