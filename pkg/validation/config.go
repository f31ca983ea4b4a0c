// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
)

// ValidatePercentage warns when a percentage lies outside [0, 100].
func ValidatePercentage(name string, value float64) string {
	if value < 0 || value > 100 {
		return fmt.Sprintf("%s of %.2f%% is outside the range 0-100%%", name, value)
	}
	return ""
}

// ValidateFactor warns when a salary factor or flat amount is negative.
func ValidateFactor(name string, value float64) string {
	if value < 0 {
		return fmt.Sprintf("%s is negative (%.3f) - the payment will reduce the salary", name, value)
	}
	return ""
}

// ValidateDeductionRate warns when a deduction rate is not a fraction in [0, 1).
func ValidateDeductionRate(name string, value float64) string {
	if value < 0 || value >= 1 {
		return fmt.Sprintf("%s of %.3f is not a fraction between 0 and 1", name, value)
	}
	return ""
}

// SalaryInputs carries the salary settings to validate.
type SalaryInputs struct {
	LeistungszulagePct     float64
	UrlaubsgeldFaktor      float64
	WeihnachtsgeldFaktor   float64
	TZugAFaktor            float64
	TZugB                  float64
	TGeldFaktor            float64
	AbgabenStandard        float64
	AbgabenSonderzahlungen float64
}

// InvestmentInputs carries the investment settings to validate.
type InvestmentInputs struct {
	StartCapital        float64
	MonthlyContribution float64
	AnnualInterestPct   float64
	TaxRatePct          float64
	Years               int
	Target              float64
}

// ConfigValidator collects non-fatal warnings for the calculator inputs.
type ConfigValidator struct {
	Salary     *SalaryInputs
	Investment *InvestmentInputs
}

// ValidateAll validates the configured calculators and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string
	add := func(w string) {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	if s := cv.Salary; s != nil {
		add(ValidatePercentage("Leistungszulage", s.LeistungszulagePct))
		add(ValidateFactor("Urlaubsgeld factor", s.UrlaubsgeldFaktor))
		add(ValidateFactor("Weihnachtsgeld factor", s.WeihnachtsgeldFaktor))
		add(ValidateFactor("T-ZUG A factor", s.TZugAFaktor))
		add(ValidateFactor("T-ZUG B", s.TZugB))
		add(ValidateFactor("T-Geld factor", s.TGeldFaktor))
		add(ValidateDeductionRate("Standard deduction rate", s.AbgabenStandard))
		add(ValidateDeductionRate("One-time payment deduction rate", s.AbgabenSonderzahlungen))
	}

	if inv := cv.Investment; inv != nil {
		if inv.StartCapital < 0 {
			add(fmt.Sprintf("Start capital is negative (%.2f)", inv.StartCapital))
		}
		if inv.MonthlyContribution < 0 {
			add(fmt.Sprintf("Monthly contribution is negative (%.2f) - it acts as a withdrawal", inv.MonthlyContribution))
		}
		if inv.AnnualInterestPct < 0 {
			add(fmt.Sprintf("Annual interest of %.2f%% is negative - wealth will shrink", inv.AnnualInterestPct))
		}
		add(ValidatePercentage("Tax rate", inv.TaxRatePct))
		if inv.Years <= 0 {
			add(fmt.Sprintf("Projection horizon of %d years yields only the starting value", inv.Years))
		}
		if inv.Target > 0 && inv.Target <= inv.StartCapital {
			add(fmt.Sprintf("Target %.2f is already covered by the start capital %.2f", inv.Target, inv.StartCapital))
		}
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
