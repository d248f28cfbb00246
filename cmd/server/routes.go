package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fxdsilva/alertia/internal/handlers"
	"github.com/fxdsilva/alertia/internal/middleware"
	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for report generation (it hits the analyzer)
	reportLimiter := middleware.NewRateLimiter(svc.reportCfg.RateLimitRPS, svc.reportCfg.RateLimitBurst)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "alertia"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", svc.authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Dashboards
			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard/metrics/:id", dashboardHandler.GetMetrics)
			protected.GET("/dashboard/summary", dashboardHandler.GetSummary)

			// Institutions (read for all users)
			institutionHandler := handlers.NewInstitutionHandler(models.GetDB())
			protected.GET("/institutions", institutionHandler.List)
			protected.GET("/institutions/:id", institutionHandler.GetByID)

			// Trainings
			trainingHandler := handlers.NewTrainingHandler(models.GetDB())
			protected.GET("/trainings/progress", trainingHandler.GetProgress)

			// Reports
			protected.GET("/reports", svc.reportHandler.List)
			protected.POST("/reports/generate", reportLimiter.Middleware(), svc.reportHandler.Generate)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			institutionHandler := handlers.NewInstitutionHandler(models.GetDB())
			admin.PUT("/institutions/:id/active", institutionHandler.SetActive)
		}
	}
}
