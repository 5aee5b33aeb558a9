package database

import (
	"errors"
	"fmt"

	"github.com/hackdash/dashboard-api/internal/models"
	"gorm.io/gorm"
)

var bootstrapRoles = []models.Role{
	{
		Name:        models.RoleAdmin,
		Description: "Dashboard Administrator. Grants full access to the application, including configuration.",
	},
	{
		Name:        models.RoleOrganizer,
		Description: "Event Organizer. Grants access to all event management features and core hackathon functions.",
	},
	{
		Name:        models.RoleParticipant,
		Description: "Event Participant. Allows participation in the hackathon, as well as basic API calls",
	},
}

// SeedRoles creates the fixed role vocabulary if it is not present yet.
// Safe to run on every startup.
func SeedRoles(db *gorm.DB) error {
	for _, role := range bootstrapRoles {
		var existing models.Role
		err := db.Where("name = ?", role.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check role %q: %w", role.Name, err)
		}

		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %q: %w", role.Name, err)
		}
	}

	return nil
}
