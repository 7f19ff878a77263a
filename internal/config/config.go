package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Store          StoreConfig          `yaml:"store"`
	Log            LogConfig            `yaml:"log"`
	Scheduler      SchedulerConfig      `yaml:"scheduler"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// StoreConfig bounds the ledger's interaction with the backing store
type StoreConfig struct {
	TimeoutMillis int `yaml:"timeout_millis"`
}

func (s StoreConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMillis) * time.Millisecond
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings for the reconciliation jobs
type SchedulerConfig struct {
	RepairPendingTransfers string `yaml:"repair_pending_transfers"`
	SweepRepaidLoans       string `yaml:"sweep_repaid_loans"`
	VerifyBalances         string `yaml:"verify_balances"`
}

// ReconciliationConfig tunes the transfer repair job
type ReconciliationConfig struct {
	TransferStalenessMinutes int `yaml:"transfer_staleness_minutes"`
}

// TransferStaleness is how long a transfer may sit PENDING before the repair
// job treats its saga as dead.
func (r ReconciliationConfig) TransferStaleness() time.Duration {
	return time.Duration(r.TransferStalenessMinutes) * time.Minute
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Store
	if val := os.Getenv("STORE_TIMEOUT_MILLIS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Store.TimeoutMillis)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.TimeoutMillis == 0 {
		c.Store.TimeoutMillis = 5000
	}
	if c.Reconciliation.TransferStalenessMinutes == 0 {
		c.Reconciliation.TransferStalenessMinutes = 10
	}
	if c.Scheduler.RepairPendingTransfers == "" {
		c.Scheduler.RepairPendingTransfers = "0 */15 * * * *" // every 15 minutes
	}
	if c.Scheduler.SweepRepaidLoans == "" {
		c.Scheduler.SweepRepaidLoans = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.VerifyBalances == "" {
		c.Scheduler.VerifyBalances = "0 0 3 * * *" // 3 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
