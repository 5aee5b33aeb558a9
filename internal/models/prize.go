package models

import "time"

type Prize struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Reward      string `gorm:"type:varchar(255)" json:"reward"`
	Sponsor     string `gorm:"type:varchar(255);default:''" json:"sponsor"`
	// Higher priority sorts first on the frontend; storage does not enforce order.
	Priority   int  `json:"priority"`
	Selectable bool `gorm:"not null;default:false" json:"selectable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	AttemptingProjects []Project `gorm:"many2many:project_prizes_attempted" json:"-"`
	WinningProjects    []Project `gorm:"many2many:prize_project_winners" json:"winning_projects,omitempty"`
}
