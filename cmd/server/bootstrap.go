package main

import (
	"github.com/hackmatch/hackmatch/internal/config"
	"github.com/hackmatch/hackmatch/internal/handlers"
	"github.com/hackmatch/hackmatch/internal/metrics"
	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/internal/services"
	"github.com/hackmatch/hackmatch/internal/utils"
	"github.com/hackmatch/hackmatch/pkg/logger"
)

// appServices holds all initialized handlers needed by the route table.
type appServices struct {
	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	hackathonHandler   *handlers.HackathonHandler
	applicationHandler *handlers.ApplicationHandler
	teamHandler        *handlers.TeamHandler
	portfolioHandler   *handlers.PortfolioHandler
	systemLogHandler   *handlers.SystemLogHandler
}

// bootstrap initializes all application dependencies: database, metrics,
// schedulers, handlers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	services.InitSystemLogger(db)
	services.StartLogCleanupScheduler(db, cfg.Log.RetentionDays)

	metrics.Register()

	return &appServices{
		authHandler:        handlers.NewAuthHandler(db, cfg),
		userHandler:        handlers.NewUserHandler(db),
		hackathonHandler:   handlers.NewHackathonHandler(db),
		applicationHandler: handlers.NewApplicationHandler(db),
		teamHandler:        handlers.NewTeamHandler(db),
		portfolioHandler:   handlers.NewPortfolioHandler(db),
		systemLogHandler:   handlers.NewSystemLogHandler(db),
	}
}

// shutdown gracefully stops background schedulers.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}
