package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hackdash/dashboard-api/internal/auth"
	"github.com/hackdash/dashboard-api/internal/config"
	"github.com/hackdash/dashboard-api/internal/database"
	"github.com/hackdash/dashboard-api/internal/router"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedRoles(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenLifetime)

	r := router.Setup(database.GetDB(), tokens)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
