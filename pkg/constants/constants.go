// Package constants provides shared constants for the quote-engine application.
package constants

// DateLayout is the format expected for dates of birth.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Loan policy
const (
	LoanIncomeRatio       = 0.30
	LoanMaxAmount         = 50000.0
	LoanMinAmount         = 5000.0
	LoanRoundingIncrement = 1000.0

	// Terms by approved amount tier (months).
	LoanShortTermCeiling  = 10000.0
	LoanMediumTermCeiling = 25000.0
	LoanShortTerm         = 36
	LoanMediumTerm        = 48
	LoanLongTerm          = 60
)

// Credit card policy
const (
	CardIncomeRatio       = 0.15
	CardMaxLimit          = 25000.0
	CardMinLimit          = 5000.0
	CardRoundingIncrement = 500.0
)

// Insurance policy
const (
	InsuranceIncomeMultiple    = 10.0
	InsuranceMaxCoverage       = 1000000.0
	InsuranceMinCoverage       = 100000.0
	InsuranceRoundingIncrement = 50000.0
	InsuranceRateUnit          = 100000.0
	InsuranceMinPremium        = 15.0
	InsuranceShortTermCeiling  = 250000.0
	InsuranceMediumTermCeiling = 500000.0
	InsuranceShortTermYears    = 10
	InsuranceMediumTermYears   = 20
	InsuranceLongTermYears     = 30
	InsuranceFloorTermYears    = 20
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default applicant configuration file name
	DefaultConfigFile = "applicant.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitRequests is the number of requests a client may make per window
	DefaultRateLimitRequests = 60

	// DefaultRateLimitWindow is the refill window for the rate limiter
	DefaultRateLimitWindow = "1m"

	// DefaultLeadListLimit caps lead listings when no limit is provided
	DefaultLeadListLimit = 50

	// MaxLeadListLimit is the largest accepted listing limit
	MaxLeadListLimit = 500
)

// Lead store drivers
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"

	DefaultSQLitePath     = "leads.db"
	DefaultRedisAddress   = "localhost:6379"
	DefaultRedisKeyPrefix = "quote-engine:lead:"
)
