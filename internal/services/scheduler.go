package services

import (
	"github.com/fxdsilva/alertia/internal/config"
	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/pkg/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ReportScheduler periodically enqueues a network-wide report.
type ReportScheduler struct {
	cfg   *config.ReportConfig
	queue TaskQueue
	cron  *cron.Cron
}

func NewReportScheduler(cfg *config.ReportConfig, queue TaskQueue) *ReportScheduler {
	return &ReportScheduler{cfg: cfg, queue: queue}
}

// Start registers the cron entry and starts the scheduler. No-op when the
// schedule is disabled.
func (s *ReportScheduler) Start() error {
	if !s.cfg.ScheduleEnabled {
		logger.Infof("[Scheduler] Scheduled network report disabled")
		return nil
	}

	s.cron = cron.New()

	_, err := s.cron.AddFunc(s.cfg.ScheduleCron, s.enqueueNetworkReport)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Infof("[Scheduler] Network report scheduled (cron: %s)", s.cfg.ScheduleCron)
	return nil
}

// Stop stops the scheduler.
func (s *ReportScheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *ReportScheduler) enqueueNetworkReport() {
	task := &ReportTask{
		JobID: uuid.NewString(),
		Scope: models.ReportScopeGlobal,
	}

	if err := s.queue.Enqueue(task); err != nil {
		logger.Errorf("[Scheduler] Failed to enqueue network report: %v", err)
		return
	}
	logger.Infof("[Scheduler] Network report enqueued: job=%s", task.JobID)
}
