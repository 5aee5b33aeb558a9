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

// MentorshipRequestHandler coordinates help-ticket HTTP handlers.
type MentorshipRequestHandler struct {
	mentorshipService *services.MentorshipService
}

// NewMentorshipRequestHandler creates a new MentorshipRequestHandler.
func NewMentorshipRequestHandler(mentorshipService *services.MentorshipService) *MentorshipRequestHandler {
	return &MentorshipRequestHandler{
		mentorshipService: mentorshipService,
	}
}

// MentorshipRequestRequest is the create/update payload.
type MentorshipRequestRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	TechnologyUsed string `json:"technology_used"`
	Urgency        int    `json:"urgency"`
	ImageURL       string `json:"image_url"`
	Resolved       bool   `json:"resolved"`
}

func (r MentorshipRequestRequest) toInput() services.MentorshipRequestInput {
	return services.MentorshipRequestInput{
		Title:          r.Title,
		Description:    r.Description,
		TechnologyUsed: r.TechnologyUsed,
		Urgency:        r.Urgency,
		ImageURL:       r.ImageURL,
		Resolved:       r.Resolved,
	}
}

// ListRequests returns every ticket. Organizer tier and above.
func (h *MentorshipRequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.mentorshipService.List()
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMentorshipRequestDTOs(requests))
}

// GetRequest returns a single ticket.
func (h *MentorshipRequestHandler) GetRequest(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.mentorshipService.Get(actor, id)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMentorshipRequestDTO(*request))
}

// CreateRequest files a ticket for the acting user.
func (h *MentorshipRequestHandler) CreateRequest(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	var req MentorshipRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.mentorshipService.Create(actor, req.toInput())
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMentorshipRequestDTO(*request))
}

// UpdateRequest replaces a ticket's fields.
func (h *MentorshipRequestHandler) UpdateRequest(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req MentorshipRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.mentorshipService.Update(actor, id, req.toInput())
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMentorshipRequestDTO(*request))
}

// DeleteRequest removes a ticket.
func (h *MentorshipRequestHandler) DeleteRequest(c *gin.Context) {
	actor, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mentorshipService.Delete(actor, id); err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":               "Mentorship request successfully deleted",
		"mentorship_request_id": id,
	})
}

// SetParticipant overwrites the ticket's requester. Organizer tier and above.
func (h *MentorshipRequestHandler) SetParticipant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	request, err := h.mentorshipService.SetParticipant(id, userID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMentorshipRequestDTO(*request))
}

// SetMentor assigns a mentor to the ticket. Organizer tier and above.
func (h *MentorshipRequestHandler) SetMentor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	request, err := h.mentorshipService.SetMentor(id, userID)
	if err != nil {
		respondMentorshipError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMentorshipRequestDTO(*request))
}

func respondMentorshipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMentorshipRequestNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyHasRequest):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrRequestAccessDenied):
		apierrors.Forbidden(c)
	default:
		apierrors.InternalError(c, "")
	}
}
