// Package constants provides shared constants for the finance-calculators application.
package constants

// DateTimeLayout is the month format used for labelling projection months.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultCapitalGainsTaxPct is 25% capital gains tax plus 5.5% solidarity surcharge.
	DefaultCapitalGainsTaxPct = 26.375

	// MaxTargetMonths bounds the time-to-target search (1000 years).
	MaxTargetMonths = 12000
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatPDF is the PDF report output format
	OutputFormatPDF = "pdf"
)

// Calculator modes
const (
	// ModeSalary runs only the salary calculator
	ModeSalary = "salary"

	// ModeInvestment runs only the investment projector
	ModeInvestment = "investment"

	// ModeAll runs every calculator configured
	ModeAll = "all"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
