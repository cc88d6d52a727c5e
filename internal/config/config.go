package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// TaxBase picks which amount the 15% withholding tax applies to. This is a
// deliberate deployment-wide choice, never decided at runtime per call.
type TaxBase string

const (
	TaxBaseGross    TaxBase = "gross"
	TaxBaseNetOfFee TaxBase = "netOfFee"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Business constants. Single source of truth for values the legacy code
	// duplicated at call sites.
	LoanRateModel       string
	TaxBase             TaxBase
	MinLoanContribution decimal.Decimal
	MinContribution     decimal.Decimal
	MinInvestment       decimal.Decimal
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getdecimal(k, d string) decimal.Decimal {
	raw := getenv(k, d)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.RequireFromString(d)
	}
	return v
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "welfare"),
		MySQLUser: getenv("MYSQL_USER", "welfare"),
		MySQLPass: getenv("MYSQL_PASS", "welfare"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,

		LoanRateModel:       getenv("LOAN_RATE_MODEL", "weekly"),
		TaxBase:             TaxBase(getenv("TAX_BASE", string(TaxBaseGross))),
		MinLoanContribution: getdecimal("LOAN_MIN_CONTRIBUTION", "1000"),
		MinContribution:     getdecimal("MIN_CONTRIBUTION_AMOUNT", "100"),
		MinInvestment:       getdecimal("MIN_INVESTMENT_AMOUNT", "10000"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.LoanRateModel != "weekly" && c.LoanRateModel != "monthly" {
		return fmt.Errorf("invalid LOAN_RATE_MODEL %q (weekly|monthly)", c.LoanRateModel)
	}
	if c.TaxBase != TaxBaseGross && c.TaxBase != TaxBaseNetOfFee {
		return fmt.Errorf("invalid TAX_BASE %q (gross|netOfFee)", c.TaxBase)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
