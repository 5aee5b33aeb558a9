package auth

import (
	"errors"

	"github.com/hackdash/dashboard-api/internal/models"
)

// ErrAccessDenied is returned for every authorization failure. The caller never
// learns whether the account was missing, disabled, roleless, or under-tiered.
var ErrAccessDenied = errors.New("insufficient access")

// Permission tiers as explicit allowed-role sets. There is no inheritance
// between role names; a tier simply enumerates every role it admits.
var (
	AdminOnly          = []string{models.RoleAdmin}
	OrganizerOrAbove   = []string{models.RoleAdmin, models.RoleOrganizer}
	ParticipantOrAbove = []string{models.RoleAdmin, models.RoleOrganizer, models.RoleParticipant}
)

// Authorize decides whether the user may act under the given tier. Pure
// decision over an already-resolved user; the user's Role must be loaded.
func Authorize(user *models.User, allowedRoles []string) error {
	if user == nil || user.Disabled || user.Role == nil {
		return ErrAccessDenied
	}

	for _, name := range allowedRoles {
		if user.Role.Name == name {
			return nil
		}
	}

	return ErrAccessDenied
}
