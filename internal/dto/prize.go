package dto

import (
	"github.com/hackdash/dashboard-api/internal/models"
)

// PrizeDTO represents a prize in API responses.
type PrizeDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Sponsor     string `json:"sponsor"`
	Priority    int    `json:"priority"`
	Selectable  bool   `json:"selectable"`
}

// PrizeDetailDTO adds the winner list. Winners are project summaries, not full
// projects, so the embedding never recurses.
type PrizeDetailDTO struct {
	PrizeDTO
	WinningProjects []ProjectSummaryDTO `json:"winning_projects"`
}

// ToPrizeDTO converts a Prize model to PrizeDTO
func ToPrizeDTO(prize models.Prize) PrizeDTO {
	return PrizeDTO{
		ID:          prize.ID,
		Title:       prize.Title,
		Description: prize.Description,
		Reward:      prize.Reward,
		Sponsor:     prize.Sponsor,
		Priority:    prize.Priority,
		Selectable:  prize.Selectable,
	}
}

// ToPrizeDetailDTO converts a Prize model with preloaded winners
func ToPrizeDetailDTO(prize models.Prize) PrizeDetailDTO {
	winners := make([]ProjectSummaryDTO, len(prize.WinningProjects))
	for i, project := range prize.WinningProjects {
		winners[i] = ToProjectSummaryDTO(project)
	}

	return PrizeDetailDTO{
		PrizeDTO:        ToPrizeDTO(prize),
		WinningProjects: winners,
	}
}

// ToPrizeDTOs converts a slice of Prize models
func ToPrizeDTOs(prizes []models.Prize) []PrizeDTO {
	dtos := make([]PrizeDTO, len(prizes))
	for i, prize := range prizes {
		dtos[i] = ToPrizeDTO(prize)
	}
	return dtos
}
