package config

import (
	"testing"

	"github.com/iwvelando/finance-calculators/pkg/salary"
)

func defaultFactors() SalaryFactors {
	return SalaryFactors{
		UrlaubsgeldFaktor:      salary.DefaultUrlaubsgeldFaktor,
		WeihnachtsgeldFaktor:   salary.DefaultWeihnachtsgeldFaktor,
		TZugAFaktor:            salary.DefaultTZugAFaktor,
		TZugB:                  salary.DefaultTZugB,
		TGeldFaktor:            salary.DefaultTGeldFaktor,
		AbgabenStandard:        salary.DefaultAbgabenStandard,
		AbgabenSonderzahlungen: salary.DefaultAbgabenSonderzahlungen,
	}
}

func TestSalarySelectionToParameters(t *testing.T) {
	point := salary.TariffPoint{Entgeltgruppe: "EG09", Stufe: "B", Jahr: 2025, Grundentgelt: 4841}
	selection := SalarySelection{Jahr: 2025, Entgeltgruppe: "EG09", Stufe: "B", LeistungszulagePct: 5.6}

	params := selection.ToParameters(point, defaultFactors())

	if params != salary.DefaultParameters(point) {
		t.Fatalf("expected default parameters, got %+v", params)
	}

	selection.TGeldAktiv = true
	factors := defaultFactors()
	factors.TZugB = 0
	params = selection.ToParameters(point, factors)
	if !params.TGeldAktiv || params.TZugB != 0 {
		t.Errorf("expected overrides to carry over, got %+v", params)
	}
}

func TestInvestmentConfigToParameters(t *testing.T) {
	ic := InvestmentConfig{
		StartCapital:        60000,
		MonthlyContribution: 1500,
		AnnualInterestPct:   10,
		Years:               10,
		TaxRatePct:          26.375,
		Target:              500000,
	}

	p := ic.ToParameters()
	if p.StartCapital != 60000 || p.MonthlyContribution != 1500 || p.AnnualInterestPct != 10 || p.TaxRatePct != 26.375 {
		t.Errorf("unexpected target parameters %+v", p.TargetParameters)
	}
	if p.Years != 10 || p.Months() != 120 {
		t.Errorf("unexpected horizon %d years / %d months", p.Years, p.Months())
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := Configuration{
		Salary: SalaryConfig{
			Enabled:         true,
			SalarySelection: SalarySelection{LeistungszulagePct: 150},
			Factors:         defaultFactors(),
		},
		Investment: InvestmentConfig{
			Enabled:    true,
			Years:      0,
			TaxRatePct: 26.375,
		},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}

	conf.Salary.Enabled = false
	conf.Investment.Enabled = false
	if warnings := conf.ValidateConfiguration(); warnings != nil {
		t.Errorf("expected disabled sections to be skipped, got %v", warnings)
	}
}
