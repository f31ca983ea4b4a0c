package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/finance"
	"github.com/iwvelando/finance-calculators/pkg/salary"
)

const fullConfig = `logging:
  level: debug
  format: console
output:
  format: csv
salary:
  jahr: 2025
  entgeltgruppe: EG09
  stufe: B
  leistungszulagePct: 8
  tGeldAktiv: true
  factors:
    tZugB: 700
  compare:
    entgeltgruppe: EG11
    stufe: A
investment:
  startCapital: 10000
  monthlyContribution: 250
  annualInterestPct: 7
  years: 20
  target: 100000
  afterTax: false
  startDate: "2025-01"
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, fullConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("expected csv output, got %s", conf.Output.Format)
	}

	s := conf.Salary
	if !s.Enabled {
		t.Error("expected salary section to be enabled")
	}
	if s.Jahr != 2025 || s.Entgeltgruppe != "EG09" || s.Stufe != "B" {
		t.Errorf("unexpected selection %+v", s.SalarySelection)
	}
	if s.LeistungszulagePct != 8 || !s.TGeldAktiv {
		t.Errorf("unexpected individual settings %+v", s.SalarySelection)
	}
	if s.Factors.TZugB != 700 {
		t.Errorf("expected T-ZUG B override 700, got %v", s.Factors.TZugB)
	}
	if s.Factors.UrlaubsgeldFaktor != salary.DefaultUrlaubsgeldFaktor {
		t.Errorf("expected default Urlaubsgeld factor, got %v", s.Factors.UrlaubsgeldFaktor)
	}
	if !s.CompareYear {
		t.Error("expected year comparison to default to true")
	}

	if s.Compare == nil {
		t.Fatal("expected compare selection")
	}
	if s.Compare.Jahr != 2025 || s.Compare.LeistungszulagePct != 8 || !s.Compare.TGeldAktiv {
		t.Errorf("expected compare selection to inherit year and settings, got %+v", *s.Compare)
	}

	inv := conf.Investment
	if !inv.Enabled {
		t.Error("expected investment section to be enabled")
	}
	if inv.StartCapital != 10000 || inv.MonthlyContribution != 250 || inv.AnnualInterestPct != 7 || inv.Years != 20 {
		t.Errorf("unexpected investment config %+v", inv)
	}
	if inv.TaxRatePct != finance.DefaultTaxRatePct {
		t.Errorf("expected default tax rate, got %v", inv.TaxRatePct)
	}
	if inv.AfterTax {
		t.Error("expected afterTax override to false")
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("salary:\n  jahr: 2026\n  entgeltgruppe: EG10\n  stufe: A\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Output.Format != "pretty" {
		t.Errorf("expected default pretty output, got %q", conf.Output.Format)
	}
	if conf.Salary.LeistungszulagePct != salary.DefaultLeistungszulagePct {
		t.Errorf("expected default Leistungszulage, got %v", conf.Salary.LeistungszulagePct)
	}
	if conf.Salary.Factors.AbgabenSonderzahlungen != salary.DefaultAbgabenSonderzahlungen {
		t.Errorf("expected default one-time deduction rate, got %v", conf.Salary.Factors.AbgabenSonderzahlungen)
	}
	if conf.Salary.Compare != nil {
		t.Errorf("expected no compare selection, got %+v", conf.Salary.Compare)
	}
	if !conf.Salary.Enabled {
		t.Error("expected salary section to be enabled")
	}
	if conf.Investment.Enabled {
		t.Error("expected investment section to be disabled when absent")
	}
}

func TestLoadConfigurationExplicitDisable(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("investment:\n  enabled: false\n  years: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Investment.Enabled {
		t.Error("expected investment section to stay disabled")
	}
	if conf.Investment.Years != 5 {
		t.Errorf("expected years 5, got %d", conf.Investment.Years)
	}
}

func TestLoadConfigurationEnvOverride(t *testing.T) {
	t.Setenv("FINANCE_INVESTMENT_YEARS", "30")

	conf, err := LoadConfigurationFromReader(strings.NewReader("investment:\n  years: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if conf.Investment.Years != 30 {
		t.Errorf("expected env override of 30 years, got %d", conf.Investment.Years)
	}
}

func TestLoadConfigurationErrors(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfigurationFromReader(strings.NewReader("salary: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestProjectionStart(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	start, err := InvestmentConfig{}.ProjectionStart(now)
	if err != nil {
		t.Fatalf("ProjectionStart() error = %v", err)
	}
	if start.Format(DateTimeLayout) != "2026-10" {
		t.Errorf("expected current month, got %s", start.Format(DateTimeLayout))
	}

	start, err = InvestmentConfig{StartDate: "2030-03"}.ProjectionStart(now)
	if err != nil {
		t.Fatalf("ProjectionStart() error = %v", err)
	}
	if start.Year() != 2030 || start.Month() != time.March {
		t.Errorf("unexpected start %v", start)
	}

	if _, err := (InvestmentConfig{StartDate: "March 2030"}).ProjectionStart(now); err == nil {
		t.Error("expected error for invalid start date")
	}
}
