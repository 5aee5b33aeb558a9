package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/handlers"
	"github.com/hackdash/dashboard-api/internal/middleware"
	"github.com/hackdash/dashboard-api/internal/repository"
	"github.com/hackdash/dashboard-api/internal/services"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers together and registers all
// routes on a fresh gin engine.
func Setup(db *gorm.DB, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	prizeRepo := repository.NewPrizeRepository(db)
	requestRepo := repository.NewMentorshipRequestRepository(db)

	authService := services.NewAuthService(userRepo, roleRepo, tokens)
	roleService := services.NewRoleService(roleRepo, userRepo)
	projectService := services.NewProjectService(projectRepo, prizeRepo, userRepo)
	prizeService := services.NewPrizeService(prizeRepo, projectRepo)
	mentorshipService := services.NewMentorshipService(requestRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	roleHandler := handlers.NewRoleHandler(roleService)
	projectHandler := handlers.NewProjectHandler(projectService)
	prizeHandler := handlers.NewPrizeHandler(prizeService)
	mentorshipHandler := handlers.NewMentorshipRequestHandler(mentorshipService)

	requireAuth := middleware.RequireAuth(db, tokens)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/create_admin_account", authHandler.CreateAdminAccount)
		authRoutes.GET("/status", requireAuth, authHandler.Status)
		authRoutes.GET("/profile", requireAuth, authHandler.Profile)
	}

	roleRoutes := api.Group("/roles", requireAuth, middleware.RequireRoles(auth.AdminOnly...))
	{
		roleRoutes.GET("", roleHandler.ListRoles)
		roleRoutes.POST("", roleHandler.CreateRole)
		roleRoutes.GET("/:id", roleHandler.GetRole)
		roleRoutes.PUT("/:id", roleHandler.UpdateRole)
		roleRoutes.DELETE("/:id", roleHandler.DeleteRole)
		roleRoutes.POST("/:id/users/:user_id", roleHandler.AssignRole)
		roleRoutes.DELETE("/:id/users/:user_id", roleHandler.UnassignRole)
	}

	projectRoutes := api.Group("/projects", requireAuth)
	{
		projectRoutes.GET("", middleware.RequireRoles(auth.OrganizerOrAbove...), projectHandler.ListProjects)

		participant := projectRoutes.Group("", middleware.RequireRoles(auth.ParticipantOrAbove...))
		participant.POST("", projectHandler.CreateProject)
		participant.GET("/:id", projectHandler.GetProject)
		participant.PUT("/:id", projectHandler.UpdateProject)
		participant.DELETE("/:id", projectHandler.DeleteProject)
		participant.POST("/:id/users/:user_id", projectHandler.AddUser)
		participant.DELETE("/:id/users/:user_id", projectHandler.RemoveUser)
		participant.PUT("/:id/prizes/attempted", projectHandler.AttemptPrizes)
	}

	prizeRoutes := api.Group("/prizes", requireAuth)
	{
		prizeRoutes.GET("", prizeHandler.ListPrizes)
		prizeRoutes.POST("", prizeHandler.CreatePrize)
		prizeRoutes.GET("/:id", prizeHandler.GetPrize)
		prizeRoutes.PUT("/:id", prizeHandler.UpdatePrize)
		prizeRoutes.DELETE("/:id", prizeHandler.DeletePrize)

		organizer := prizeRoutes.Group("", middleware.RequireRoles(auth.OrganizerOrAbove...))
		organizer.POST("/:id/winners/:project_id", prizeHandler.AssignWinner)
		organizer.DELETE("/:id/winners/:project_id", prizeHandler.RemoveWinner)
	}

	requestRoutes := api.Group("/mentorship_requests", requireAuth)
	{
		requestRoutes.GET("", middleware.RequireRoles(auth.OrganizerOrAbove...), mentorshipHandler.ListRequests)

		participant := requestRoutes.Group("", middleware.RequireRoles(auth.ParticipantOrAbove...))
		participant.POST("", mentorshipHandler.CreateRequest)
		participant.GET("/:id", mentorshipHandler.GetRequest)
		participant.PUT("/:id", mentorshipHandler.UpdateRequest)
		participant.DELETE("/:id", mentorshipHandler.DeleteRequest)

		organizer := requestRoutes.Group("", middleware.RequireRoles(auth.OrganizerOrAbove...))
		organizer.POST("/:id/participant/:user_id", mentorshipHandler.SetParticipant)
		organizer.POST("/:id/mentor/:user_id", mentorshipHandler.SetMentor)
	}

	return r
}
