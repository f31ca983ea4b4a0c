// Package config defines the data structures related to configuration and
// includes functions for loading and normalizing the config.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/finance"
	"github.com/iwvelando/finance-calculators/pkg/salary"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected for the projection start month.
const DateTimeLayout = constants.DateTimeLayout

// EnvPrefix prefixes environment variables overriding config keys, e.g.
// FINANCE_INVESTMENT_YEARS.
const EnvPrefix = "FINANCE"

// Configuration holds all configuration for finance-calculators.
type Configuration struct {
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
	Salary     SalaryConfig     `yaml:"salary,omitempty"`
	Investment InvestmentConfig `yaml:"investment,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, pdf
}

// SalarySelection picks one tariff group and its individual settings.
type SalarySelection struct {
	Jahr               int     `yaml:"jahr"`
	Entgeltgruppe      string  `yaml:"entgeltgruppe"`
	Stufe              string  `yaml:"stufe"`
	LeistungszulagePct float64 `yaml:"leistungszulagePct"`
	TGeldAktiv         bool    `yaml:"tGeldAktiv"`
}

// SalaryFactors holds the tariff agreement factors shared by all groups.
type SalaryFactors struct {
	UrlaubsgeldFaktor      float64 `yaml:"urlaubsgeldFaktor"`
	WeihnachtsgeldFaktor   float64 `yaml:"weihnachtsgeldFaktor"`
	TZugAFaktor            float64 `yaml:"tZugAFaktor"`
	TZugB                  float64 `yaml:"tZugB"`
	TGeldFaktor            float64 `yaml:"tGeldFaktor"`
	AbgabenStandard        float64 `yaml:"abgabenStandard"`
	AbgabenSonderzahlungen float64 `yaml:"abgabenSonderzahlungen"`
}

// SalaryConfig configures the salary calculator.
type SalaryConfig struct {
	Enabled         bool `yaml:"enabled,omitempty"`
	SalarySelection `mapstructure:",squash" yaml:",inline"`
	Factors         SalaryFactors    `yaml:"factors,omitempty"`
	CompareYear     bool             `yaml:"compareYear"`
	Compare         *SalarySelection `yaml:"compare,omitempty"`
}

// InvestmentConfig configures the investment projector.
type InvestmentConfig struct {
	Enabled             bool    `yaml:"enabled,omitempty"`
	StartCapital        float64 `yaml:"startCapital"`
	MonthlyContribution float64 `yaml:"monthlyContribution"`
	AnnualInterestPct   float64 `yaml:"annualInterestPct"`
	Years               int     `yaml:"years"`
	TaxRatePct          float64 `yaml:"taxRatePct"`
	Target              float64 `yaml:"target"`
	AfterTax            bool    `yaml:"afterTax"`
	StartDate           string  `yaml:"startDate,omitempty"` // first projected month, defaults to now
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", constants.OutputFormatPretty)

	v.SetDefault("salary.leistungszulagePct", salary.DefaultLeistungszulagePct)
	v.SetDefault("salary.compareYear", true)
	v.SetDefault("salary.factors.urlaubsgeldFaktor", salary.DefaultUrlaubsgeldFaktor)
	v.SetDefault("salary.factors.weihnachtsgeldFaktor", salary.DefaultWeihnachtsgeldFaktor)
	v.SetDefault("salary.factors.tZugAFaktor", salary.DefaultTZugAFaktor)
	v.SetDefault("salary.factors.tZugB", salary.DefaultTZugB)
	v.SetDefault("salary.factors.tGeldFaktor", salary.DefaultTGeldFaktor)
	v.SetDefault("salary.factors.abgabenStandard", salary.DefaultAbgabenStandard)
	v.SetDefault("salary.factors.abgabenSonderzahlungen", salary.DefaultAbgabenSonderzahlungen)

	v.SetDefault("investment.startCapital", 60000)
	v.SetDefault("investment.monthlyContribution", 1500)
	v.SetDefault("investment.annualInterestPct", 10.0)
	v.SetDefault("investment.years", 10)
	v.SetDefault("investment.taxRatePct", finance.DefaultTaxRatePct)
	v.SetDefault("investment.target", 500000)
	v.SetDefault("investment.afterTax", true)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	// A section is active when it appears in the file unless it says otherwise.
	if !v.IsSet("salary.enabled") {
		configuration.Salary.Enabled = v.InConfig("salary")
	}
	if !v.IsSet("investment.enabled") {
		configuration.Investment.Enabled = v.InConfig("investment")
	}

	if cmp := configuration.Salary.Compare; cmp != nil {
		if cmp.Jahr == 0 {
			cmp.Jahr = configuration.Salary.Jahr
		}
		if !v.IsSet("salary.compare.leistungszulagePct") {
			cmp.LeistungszulagePct = configuration.Salary.LeistungszulagePct
		}
		if !v.IsSet("salary.compare.tGeldAktiv") {
			cmp.TGeldAktiv = configuration.Salary.TGeldAktiv
		}
	}

	return &configuration, nil
}

// ProjectionStart returns the first projected month, falling back to now.
func (ic InvestmentConfig) ProjectionStart(now time.Time) (time.Time, error) {
	if ic.StartDate == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.Parse(DateTimeLayout, ic.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid investment startDate %q: %w", ic.StartDate, err)
	}
	return start, nil
}
