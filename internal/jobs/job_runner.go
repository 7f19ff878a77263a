package jobs

import (
	"bankledger-backend/internal/config"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository/postgres"
	"bankledger-backend/internal/service"
)

// JobRunner coordinates the scheduled reconciliation jobs.
type JobRunner struct {
	store    *postgres.Store
	accounts service.AccountService
	config   *config.Config
}

func NewJobRunner(store *postgres.Store, accounts service.AccountService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		accounts: accounts,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad job
// cannot take the runner down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllReconciliationJobs runs every job once (for manual execution).
func (jr *JobRunner) RunAllReconciliationJobs() {
	jr.RepairStalePendingTransfers()
	jr.SweepRepaidLoans()
	jr.VerifyAccountBalances()
}
