package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/database"
	"github.com/hackdash/dashboard-api/internal/middleware"
	"github.com/hackdash/dashboard-api/internal/models"
	"github.com/hackdash/dashboard-api/internal/repository"
	"github.com/hackdash/dashboard-api/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "supersecret"

// testEnv bundles an in-memory database, a token manager and a router with
// the full production route table.
type testEnv struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Role{},
		&models.Project{},
		&models.Prize{},
		&models.User{},
		&models.MentorshipRequest{},
	)
	require.NoError(t, err)

	require.NoError(t, database.SeedRoles(db))

	env := &testEnv{
		db:     db,
		tokens: auth.NewTokenManager("test-secret", time.Hour),
	}
	env.router = env.buildRouter()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return env
}

// buildRouter mirrors the production route table. The tests cannot import the
// router package without an import cycle, so the wiring is repeated here.
func (env *testEnv) buildRouter() *gin.Engine {
	r := gin.New()

	userRepo := repository.NewUserRepository(env.db)
	roleRepo := repository.NewRoleRepository(env.db)
	projectRepo := repository.NewProjectRepository(env.db)
	prizeRepo := repository.NewPrizeRepository(env.db)
	requestRepo := repository.NewMentorshipRequestRepository(env.db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, roleRepo, env.tokens))
	roleHandler := NewRoleHandler(services.NewRoleService(roleRepo, userRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, prizeRepo, userRepo))
	prizeHandler := NewPrizeHandler(services.NewPrizeService(prizeRepo, projectRepo))
	mentorshipHandler := NewMentorshipRequestHandler(services.NewMentorshipService(requestRepo, userRepo))

	requireAuth := middleware.RequireAuth(env.db, env.tokens)

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/create_admin_account", authHandler.CreateAdminAccount)
	authRoutes.GET("/status", requireAuth, authHandler.Status)
	authRoutes.GET("/profile", requireAuth, authHandler.Profile)

	roleRoutes := api.Group("/roles", requireAuth, middleware.RequireRoles(auth.AdminOnly...))
	roleRoutes.GET("", roleHandler.ListRoles)
	roleRoutes.POST("", roleHandler.CreateRole)
	roleRoutes.GET("/:id", roleHandler.GetRole)
	roleRoutes.PUT("/:id", roleHandler.UpdateRole)
	roleRoutes.DELETE("/:id", roleHandler.DeleteRole)
	roleRoutes.POST("/:id/users/:user_id", roleHandler.AssignRole)
	roleRoutes.DELETE("/:id/users/:user_id", roleHandler.UnassignRole)

	projectRoutes := api.Group("/projects", requireAuth)
	projectRoutes.GET("", middleware.RequireRoles(auth.OrganizerOrAbove...), projectHandler.ListProjects)
	projectMembers := projectRoutes.Group("", middleware.RequireRoles(auth.ParticipantOrAbove...))
	projectMembers.POST("", projectHandler.CreateProject)
	projectMembers.GET("/:id", projectHandler.GetProject)
	projectMembers.PUT("/:id", projectHandler.UpdateProject)
	projectMembers.DELETE("/:id", projectHandler.DeleteProject)
	projectMembers.POST("/:id/users/:user_id", projectHandler.AddUser)
	projectMembers.DELETE("/:id/users/:user_id", projectHandler.RemoveUser)
	projectMembers.PUT("/:id/prizes/attempted", projectHandler.AttemptPrizes)

	prizeRoutes := api.Group("/prizes", requireAuth)
	prizeRoutes.GET("", prizeHandler.ListPrizes)
	prizeRoutes.POST("", prizeHandler.CreatePrize)
	prizeRoutes.GET("/:id", prizeHandler.GetPrize)
	prizeRoutes.PUT("/:id", prizeHandler.UpdatePrize)
	prizeRoutes.DELETE("/:id", prizeHandler.DeletePrize)
	prizeCuration := prizeRoutes.Group("", middleware.RequireRoles(auth.OrganizerOrAbove...))
	prizeCuration.POST("/:id/winners/:project_id", prizeHandler.AssignWinner)
	prizeCuration.DELETE("/:id/winners/:project_id", prizeHandler.RemoveWinner)

	requestRoutes := api.Group("/mentorship_requests", requireAuth)
	requestRoutes.GET("", middleware.RequireRoles(auth.OrganizerOrAbove...), mentorshipHandler.ListRequests)
	requestMembers := requestRoutes.Group("", middleware.RequireRoles(auth.ParticipantOrAbove...))
	requestMembers.POST("", mentorshipHandler.CreateRequest)
	requestMembers.GET("/:id", mentorshipHandler.GetRequest)
	requestMembers.PUT("/:id", mentorshipHandler.UpdateRequest)
	requestMembers.DELETE("/:id", mentorshipHandler.DeleteRequest)
	requestCuration := requestRoutes.Group("", middleware.RequireRoles(auth.OrganizerOrAbove...))
	requestCuration.POST("/:id/participant/:user_id", mentorshipHandler.SetParticipant)
	requestCuration.POST("/:id/mentor/:user_id", mentorshipHandler.SetMentor)

	return r
}

// createUser inserts a user directly, bypassing the registration endpoint.
// roleName may be empty for a roleless account.
func (env *testEnv) createUser(t *testing.T, email, roleName string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: string(hash),
	}

	if roleName != "" {
		var role models.Role
		require.NoError(t, env.db.Where("name = ?", roleName).First(&role).Error)
		user.RoleID = &role.ID
	}

	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := env.tokens.Generate(user.Email)
	require.NoError(t, err)
	return token
}

// request sends a JSON request through the router. An empty token leaves the
// Authorization header unset.
func (env *testEnv) request(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
