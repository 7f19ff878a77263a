package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"bankledger-backend/internal/jobs"
	"bankledger-backend/internal/logger"
)

// Scheduler runs the ledger reconciliation jobs on their cron schedules.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.RepairPendingTransfers, s.jobs.RepairStalePendingTransfers)
	if err != nil {
		logger.Error("Failed to register RepairStalePendingTransfers job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SweepRepaidLoans, s.jobs.SweepRepaidLoans)
	if err != nil {
		logger.Error("Failed to register SweepRepaidLoans job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.VerifyBalances, s.jobs.VerifyAccountBalances)
	if err != nil {
		logger.Error("Failed to register VerifyAccountBalances job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
