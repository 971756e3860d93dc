package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Hard floor on declared monthly income (IDR).
	MinMonthlyIncome float64

	// SLA thresholds per waiting stage, read from the ledger.
	ReviewSLA   time.Duration
	ApprovalSLA time.Duration
	DisburseSLA time.Duration

	// Notification outbox worker.
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvFloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort: getenv("APP_PORT", "8080"),
		AppEnv:  getenv("APP_ENV", "production"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loanflow"),
		MySQLUser: getenv("MYSQL_USER", "loanflow"),
		MySQLPass: getenv("MYSQL_PASS", "loanflow"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		MinMonthlyIncome: getenvFloat("MIN_MONTHLY_INCOME", 3_000_000),

		ReviewSLA:   time.Duration(getenvInt("SLA_REVIEW_HOURS", 24)) * time.Hour,
		ApprovalSLA: time.Duration(getenvInt("SLA_APPROVAL_HOURS", 48)) * time.Hour,
		DisburseSLA: time.Duration(getenvInt("SLA_DISBURSE_HOURS", 72)) * time.Hour,

		OutboxPollInterval: time.Duration(getenvInt("OUTBOX_POLL_SECONDS", 5)) * time.Second,
		OutboxBatchSize:    getenvInt("OUTBOX_BATCH_SIZE", 50),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.MinMonthlyIncome <= 0 {
		return errors.New("MIN_MONTHLY_INCOME must be positive")
	}
	if c.OutboxBatchSize <= 0 {
		return errors.New("OUTBOX_BATCH_SIZE must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
