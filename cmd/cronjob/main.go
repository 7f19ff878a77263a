package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"bankledger-backend/internal/config"
	"bankledger-backend/internal/jobs"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository/postgres"
	"bankledger-backend/internal/scheduler"
	"bankledger-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'repair-transfers', 'sweep-loans', 'verify-balances', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bank Ledger Reconciliation Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	accountSvc := service.NewAccountService(store.AccountRepository, store.TransactionRepository, store.CustomerRepository, cfg.Store.Timeout())
	jobRunner := jobs.NewJobRunner(store, accountSvc, cfg)

	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("Shutdown signal received")
}

func runSingleJob(jr *jobs.JobRunner, name string) {
	switch name {
	case "repair-transfers":
		jr.RepairStalePendingTransfers()
	case "sweep-loans":
		jr.SweepRepaidLoans()
	case "verify-balances":
		jr.VerifyAccountBalances()
	case "all":
		jr.RunAllReconciliationJobs()
	default:
		log.Fatalf("Unknown job: %s", name)
	}
}
