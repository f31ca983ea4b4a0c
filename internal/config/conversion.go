// Package config defines conversion utilities for configuration objects.
package config

import (
	"github.com/iwvelando/finance-calculators/pkg/finance"
	"github.com/iwvelando/finance-calculators/pkg/salary"
	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// ToParameters builds the salary parameters for a selection at the given
// tariff point. Each call returns a fresh value.
func (s SalarySelection) ToParameters(point salary.TariffPoint, factors SalaryFactors) salary.Parameters {
	return salary.Parameters{
		Point:                  point,
		LeistungszulagePct:     s.LeistungszulagePct,
		UrlaubsgeldFaktor:      factors.UrlaubsgeldFaktor,
		WeihnachtsgeldFaktor:   factors.WeihnachtsgeldFaktor,
		TZugAFaktor:            factors.TZugAFaktor,
		TZugB:                  factors.TZugB,
		TGeldFaktor:            factors.TGeldFaktor,
		TGeldAktiv:             s.TGeldAktiv,
		AbgabenStandard:        factors.AbgabenStandard,
		AbgabenSonderzahlungen: factors.AbgabenSonderzahlungen,
	}
}

// ToParameters converts the investment section into projection parameters.
func (ic InvestmentConfig) ToParameters() finance.InvestmentParameters {
	return finance.InvestmentParameters{
		TargetParameters: finance.TargetParameters{
			StartCapital:        ic.StartCapital,
			MonthlyContribution: ic.MonthlyContribution,
			AnnualInterestPct:   ic.AnnualInterestPct,
			TaxRatePct:          ic.TaxRatePct,
		},
		Years: ic.Years,
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	validator := validation.ConfigValidator{}

	if c.Salary.Enabled {
		f := c.Salary.Factors
		validator.Salary = &validation.SalaryInputs{
			LeistungszulagePct:     c.Salary.LeistungszulagePct,
			UrlaubsgeldFaktor:      f.UrlaubsgeldFaktor,
			WeihnachtsgeldFaktor:   f.WeihnachtsgeldFaktor,
			TZugAFaktor:            f.TZugAFaktor,
			TZugB:                  f.TZugB,
			TGeldFaktor:            f.TGeldFaktor,
			AbgabenStandard:        f.AbgabenStandard,
			AbgabenSonderzahlungen: f.AbgabenSonderzahlungen,
		}
	}

	if c.Investment.Enabled {
		inv := c.Investment
		validator.Investment = &validation.InvestmentInputs{
			StartCapital:        inv.StartCapital,
			MonthlyContribution: inv.MonthlyContribution,
			AnnualInterestPct:   inv.AnnualInterestPct,
			TaxRatePct:          inv.TaxRatePct,
			Years:               inv.Years,
			Target:              inv.Target,
		}
	}

	return validator.ValidateAll()
}
