package main

import (
	"context"

	"github.com/fxdsilva/alertia/internal/config"
	"github.com/fxdsilva/alertia/internal/handlers"
	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/internal/services"
	"github.com/fxdsilva/alertia/internal/utils"
	"github.com/fxdsilva/alertia/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	reportCfg     *config.ReportConfig
	reportService *services.ReportService
	taskQueue     services.TaskQueue
	worker        *services.Worker
	scheduler     *services.ReportScheduler
	authHandler   *handlers.AuthHandler
	reportHandler *handlers.ReportHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default data
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Report generation: OpenAI-backed analysis when configured, static otherwise
	var analyzer services.Analyzer
	if cfg.OpenAI.APIKey != "" {
		analyzer = services.NewOpenAIAnalyzer(&cfg.OpenAI)
	}
	reportService := services.NewReportService(models.GetDB(), analyzer)

	processReportTask := func(ctx context.Context, task *services.ReportTask) error {
		_, err := reportService.Generate(ctx, task.Scope, task.InstitutionID)
		return err
	}

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(processReportTask)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(processReportTask)
			worker.Start()
		}
	}

	// Start the scheduled network report
	scheduler := services.NewReportScheduler(&cfg.Report, taskQueue)
	if err := scheduler.Start(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start report scheduler")
	}

	// Create default admin user
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.EnsureAdmin(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		reportCfg:     &cfg.Report,
		reportService: reportService,
		taskQueue:     taskQueue,
		worker:        worker,
		scheduler:     scheduler,
		authHandler:   authHandler,
		reportHandler: handlers.NewReportHandler(reportService),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.scheduler.Stop()
	logger.Info().Msg("Scheduler stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
