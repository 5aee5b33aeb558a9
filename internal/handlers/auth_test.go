package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/dto"
	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/services"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":      "new@example.com",
		"first_name": "New",
		"last_name":  "User",
		"password":   testPassword,
	}
	w := env.request(t, http.MethodPost, "/api/auth/register", payload, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	decodeJSON(t, w, &response)
	require.Equal(t, payload["email"], response.Email)
	require.Nil(t, response.Role, "new accounts start without a role")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "taken@example.com", models.RoleParticipant)

	payload := map[string]string{
		"email":      "taken@example.com",
		"first_name": "Second",
		"last_name":  "User",
		"password":   testPassword,
	}
	w := env.request(t, http.MethodPost, "/api/auth/register", payload, "")

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":      "short@example.com",
		"first_name": "Short",
		"last_name":  "Password",
		"password":   "seven77",
	}
	w := env.request(t, http.MethodPost, "/api/auth/register", payload, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_LoginAndProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "login@example.com", models.RoleParticipant)

	payload := map[string]string{
		"email":    user.Email,
		"password": testPassword,
	}
	w := env.request(t, http.MethodPost, "/api/auth/login", payload, "")

	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeJSON(t, w, &login)
	require.NotEmpty(t, login.AccessToken)
	require.Equal(t, "bearer", login.TokenType)

	w = env.request(t, http.MethodGet, "/api/auth/profile", nil, login.AccessToken)

	require.Equal(t, http.StatusOK, w.Code)

	var profile dto.UserDTO
	decodeJSON(t, w, &profile)
	require.Equal(t, user.Email, profile.Email)
	require.NotNil(t, profile.Role)
	require.Equal(t, models.RoleParticipant, profile.Role.Name)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "wrongpass@example.com", models.RoleParticipant)

	payload := map[string]string{
		"email":    user.Email,
		"password": "not-the-password",
	}
	w := env.request(t, http.MethodPost, "/api/auth/login", payload, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Status_ExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "expired@example.com", models.RoleParticipant)

	// Same secret, negative lifetime: the token is expired on arrival.
	expired := auth.NewTokenManager("test-secret", -time.Hour)
	token, err := expired.Generate(user.Email)
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/auth/status", nil, token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Status(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "status@example.com", "")

	w := env.request(t, http.MethodGet, "/api/auth/status", nil, env.tokenFor(t, user))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_DisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "disabled@example.com", models.RoleAdmin)
	require.NoError(t, env.db.Model(user).Update("disabled", true).Error)

	w := env.request(t, http.MethodGet, "/api/auth/profile", nil, env.tokenFor(t, user))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_CreateAdminAccount(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/auth/create_admin_account", nil, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		User dto.UserDTO `json:"user"`
	}
	decodeJSON(t, w, &response)
	require.Equal(t, services.DevAdminEmail, response.User.Email)
	require.NotNil(t, response.User.Role)
	require.Equal(t, models.RoleAdmin, response.User.Role.Name)

	// Second call refuses: the account already exists.
	w = env.request(t, http.MethodPost, "/api/auth/create_admin_account", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
