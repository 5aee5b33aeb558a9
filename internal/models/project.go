package models

import "time"

type Project struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:varchar(512)" json:"image_url"`
	GithubLink  string `gorm:"type:varchar(512)" json:"github_link"`
	VideoLink   string `gorm:"type:varchar(512)" json:"video_link"`

	// Submission narrative
	Inspiration      string `gorm:"type:text" json:"inspiration"`
	Functionality    string `gorm:"type:text" json:"functionality"`
	Architecture     string `gorm:"type:text" json:"architecture"`
	TechnologiesUsed string `gorm:"type:text" json:"technologies_used"`
	Challenges       string `gorm:"type:text" json:"challenges"`
	Lessons          string `gorm:"type:text" json:"lessons"`
	NextSteps        string `gorm:"type:text" json:"next_steps"`

	InPerson         bool `gorm:"not null;default:false" json:"in_person"`
	NeedsPowerOutlet bool `gorm:"not null;default:false" json:"needs_power_outlet"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations. "attempted" is self-declared by the team, "won" is curated by
	// organizers; a prize may appear in both sets for the same project.
	Members         []User  `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	PrizesAttempted []Prize `gorm:"many2many:project_prizes_attempted" json:"prizes_attempted,omitempty"`
	PrizesWon       []Prize `gorm:"many2many:prize_project_winners" json:"prizes_won,omitempty"`
}
