package dto

import (
	"github.com/hackdash/dashboard-api/internal/models"
)

// ProjectDTO represents a project in API responses. Members and prizes are
// embedded; neither embeds projects back.
type ProjectDTO struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
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

	Members         []UserDTO  `json:"members,omitempty"`
	PrizesAttempted []PrizeDTO `json:"prizes_attempted,omitempty"`
	PrizesWon       []PrizeDTO `json:"prizes_won,omitempty"`
}

// ProjectSummaryDTO is the minimal project reference embedded in prize
// responses.
type ProjectSummaryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:               project.ID,
		Name:             project.Name,
		Description:      project.Description,
		ImageURL:         project.ImageURL,
		GithubLink:       project.GithubLink,
		VideoLink:        project.VideoLink,
		Inspiration:      project.Inspiration,
		Functionality:    project.Functionality,
		Architecture:     project.Architecture,
		TechnologiesUsed: project.TechnologiesUsed,
		Challenges:       project.Challenges,
		Lessons:          project.Lessons,
		NextSteps:        project.NextSteps,
		InPerson:         project.InPerson,
		NeedsPowerOutlet: project.NeedsPowerOutlet,
	}

	if len(project.Members) > 0 {
		dto.Members = make([]UserDTO, len(project.Members))
		for i, member := range project.Members {
			dto.Members[i] = ToUserDTO(member)
		}
	}

	if len(project.PrizesAttempted) > 0 {
		dto.PrizesAttempted = make([]PrizeDTO, len(project.PrizesAttempted))
		for i, prize := range project.PrizesAttempted {
			dto.PrizesAttempted[i] = ToPrizeDTO(prize)
		}
	}

	if len(project.PrizesWon) > 0 {
		dto.PrizesWon = make([]PrizeDTO, len(project.PrizesWon))
		for i, prize := range project.PrizesWon {
			dto.PrizesWon[i] = ToPrizeDTO(prize)
		}
	}

	return dto
}

// ToProjectSummaryDTO converts a Project model to ProjectSummaryDTO
func ToProjectSummaryDTO(project models.Project) ProjectSummaryDTO {
	return ProjectSummaryDTO{
		ID:   project.ID,
		Name: project.Name,
	}
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
