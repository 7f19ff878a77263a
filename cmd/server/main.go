package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "bankledger-backend/internal/api/http"
	"bankledger-backend/internal/config"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository/postgres"
	"bankledger-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bank Ledger Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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

	// Repositories
	store := postgres.NewStore(db)

	// Services
	storeTimeout := cfg.Store.Timeout()
	customerSvc := service.NewCustomerService(store.CustomerRepository, storeTimeout)
	accountSvc := service.NewAccountService(store.AccountRepository, store.TransactionRepository, store.CustomerRepository, storeTimeout)
	transferSvc := service.NewTransferService(accountSvc, store.TransferRepository, storeTimeout)
	loanSvc := service.NewLoanService(store.LoanRepository, store.RepaymentRepository, store.CustomerRepository, storeTimeout)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository, storeTimeout)

	// HTTP handlers
	router := api.NewRouter(
		api.NewCustomerHandler(customerSvc),
		api.NewAccountHandler(accountSvc, transferSvc),
		api.NewLoanHandler(loanSvc),
		api.NewEmployeeHandler(employeeSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
