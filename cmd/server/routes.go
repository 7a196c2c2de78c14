package main

import (
	"github.com/gin-gonic/gin"
	"github.com/hackmatch/hackmatch/internal/middleware"
	"github.com/hackmatch/hackmatch/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "hackmatch"})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Public browse routes
		api.GET("/hackathons", svc.hackathonHandler.List)
		api.GET("/hackathons/:id", svc.hackathonHandler.GetByID)
		api.GET("/users/:id", svc.userHandler.GetByID)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Profile
			protected.PUT("/users/me", svc.userHandler.UpdateMe)

			// Hackathons (create)
			protected.POST("/hackathons", svc.hackathonHandler.Create)

			// Applications (team formation)
			protected.POST("/applications", svc.applicationHandler.Submit)
			protected.PUT("/applications/:id", svc.applicationHandler.Decide)
			protected.GET("/applications/incoming", svc.applicationHandler.ListIncoming)
			protected.GET("/applications/outgoing", svc.applicationHandler.ListOutgoing)

			// Teams
			protected.GET("/teams/mine", svc.teamHandler.Mine)
			protected.POST("/teams/members", svc.teamHandler.AddMember)

			// Portfolio
			protected.POST("/projects", svc.portfolioHandler.CreateProject)
			protected.GET("/projects", svc.portfolioHandler.ListProjects)
			protected.POST("/achievements", svc.portfolioHandler.CreateAchievement)
			protected.GET("/achievements", svc.portfolioHandler.ListAchievements)

			// System logs
			protected.GET("/system-logs", svc.systemLogHandler.List)
		}
	}
}
