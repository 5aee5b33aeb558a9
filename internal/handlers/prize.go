package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/dto"
	apierrors "github.com/hackdash/dashboard-api/internal/errors"
	"github.com/hackdash/dashboard-api/internal/services"
)

// PrizeHandler coordinates prize HTTP handlers.
type PrizeHandler struct {
	prizeService *services.PrizeService
}

// NewPrizeHandler creates a new PrizeHandler.
func NewPrizeHandler(prizeService *services.PrizeService) *PrizeHandler {
	return &PrizeHandler{
		prizeService: prizeService,
	}
}

// PrizeRequest is the create/update payload.
type PrizeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Sponsor     string `json:"sponsor"`
	Priority    int    `json:"priority"`
	Selectable  bool   `json:"selectable"`
}

func (r PrizeRequest) toInput() services.PrizeInput {
	return services.PrizeInput{
		Title:       r.Title,
		Description: r.Description,
		Reward:      r.Reward,
		Sponsor:     r.Sponsor,
		Priority:    r.Priority,
		Selectable:  r.Selectable,
	}
}

// ListPrizes returns all prizes.
func (h *PrizeHandler) ListPrizes(c *gin.Context) {
	prizes, err := h.prizeService.List()
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrizeDTOs(prizes))
}

// GetPrize returns a single prize with its winners.
func (h *PrizeHandler) GetPrize(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prize, err := h.prizeService.Get(id)
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrizeDetailDTO(*prize))
}

// CreatePrize creates a new prize.
func (h *PrizeHandler) CreatePrize(c *gin.Context) {
	var req PrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	prize, err := h.prizeService.Create(req.toInput())
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPrizeDTO(*prize))
}

// UpdatePrize replaces a prize's fields.
func (h *PrizeHandler) UpdatePrize(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	prize, err := h.prizeService.Update(id, req.toInput())
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrizeDetailDTO(*prize))
}

// DeletePrize deletes a prize.
func (h *PrizeHandler) DeletePrize(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.prizeService.Delete(id); err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Prize successfully deleted",
		"prize_id": id,
	})
}

// AssignWinner marks a project as a winner of the prize.
func (h *PrizeHandler) AssignWinner(c *gin.Context) {
	prizeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	prize, err := h.prizeService.AssignWinner(prizeID, projectID)
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrizeDetailDTO(*prize))
}

// RemoveWinner removes a project from the prize's winners.
func (h *PrizeHandler) RemoveWinner(c *gin.Context) {
	prizeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	prize, err := h.prizeService.RemoveWinner(prizeID, projectID)
	if err != nil {
		respondPrizeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPrizeDetailDTO(*prize))
}

func respondPrizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPrizeNotFound),
		errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
