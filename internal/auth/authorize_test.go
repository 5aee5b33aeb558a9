package auth

import (
	"testing"

	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/stretchr/testify/require"
)

func userWithRole(name string) *models.User {
	return &models.User{
		ID:   1,
		Role: &models.Role{Name: name},
	}
}

func TestAuthorize_Tiers(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.User
		allowedRoles []string
		wantErr      bool
	}{
		{"admin on admin-only", userWithRole(models.RoleAdmin), AdminOnly, false},
		{"organizer on admin-only", userWithRole(models.RoleOrganizer), AdminOnly, true},
		{"participant on admin-only", userWithRole(models.RoleParticipant), AdminOnly, true},
		{"admin on organizer tier", userWithRole(models.RoleAdmin), OrganizerOrAbove, false},
		{"organizer on organizer tier", userWithRole(models.RoleOrganizer), OrganizerOrAbove, false},
		{"participant on organizer tier", userWithRole(models.RoleParticipant), OrganizerOrAbove, true},
		{"participant on participant tier", userWithRole(models.RoleParticipant), ParticipantOrAbove, false},
		{"unknown role", userWithRole("judge"), ParticipantOrAbove, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.user, tt.allowedRoles)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrAccessDenied)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorize_NilUser(t *testing.T) {
	require.ErrorIs(t, Authorize(nil, ParticipantOrAbove), ErrAccessDenied)
}

func TestAuthorize_RolelessUser(t *testing.T) {
	user := &models.User{ID: 1}
	require.ErrorIs(t, Authorize(user, ParticipantOrAbove), ErrAccessDenied)
}

func TestAuthorize_DisabledUser(t *testing.T) {
	user := userWithRole(models.RoleAdmin)
	user.Disabled = true
	require.ErrorIs(t, Authorize(user, AdminOnly), ErrAccessDenied)
}
