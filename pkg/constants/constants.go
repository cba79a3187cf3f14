// Package constants provides shared constants for the NovasX pricing and
// valuation engine.
package constants

// Domain constants
const (
	// SupportedPlatforms is the number of platforms carried in the
	// coefficient and ad-volume tables.
	SupportedPlatforms = 4

	// SupportedCategories is the number of content categories with base
	// price curves.
	SupportedCategories = 32

	// FollowersPerWan is the raw-follower count represented by one unit of
	// the ten-thousand (wan) scale used in ad-volume and valuation tables.
	FollowersPerWan = 10000

	// DecimalPrecision is the precision for monetary rounding (2 decimal places)
	DecimalPrecision = 100
)

// Valuation constants
const (
	// RevenueUplift models non-advertising income on top of ad revenue.
	RevenueUplift = 1.2

	// BaseAdValueFactor scales the sqrt-of-followers estimate for a single
	// ad price when the caller supplies none.
	BaseAdValueFactor = 0.1

	// DefaultHorizonYears is the projection horizon.
	DefaultHorizonYears = 5
)

// Development ratio thresholds
const (
	// UnderDevelopedBelow marks ratios considered under-developed.
	UnderDevelopedBelow = 0.8

	// OverDevelopedAbove marks ratios considered fully developed.
	OverDevelopedAbove = 1.2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for monetary comparisons
	CurrencyTolerance = 0.005

	// ContinuityTolerance is the tolerance for curve continuity checks
	ContinuityTolerance = 1e-6
)
