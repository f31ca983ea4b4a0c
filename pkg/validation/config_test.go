package validation

import (
	"strings"
	"testing"
)

func defaultSalaryInputs() *SalaryInputs {
	return &SalaryInputs{
		LeistungszulagePct:     5.6,
		UrlaubsgeldFaktor:      0.7,
		WeihnachtsgeldFaktor:   0.55,
		TZugAFaktor:            0.275,
		TZugB:                  630,
		TGeldFaktor:            0.184,
		AbgabenStandard:        0.38,
		AbgabenSonderzahlungen: 0.395,
	}
}

func TestValidatePercentage(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		expectEmpty bool
	}{
		{"Zero", 0, true},
		{"Typical", 26.375, true},
		{"Upper bound", 100, true},
		{"Negative", -0.1, false},
		{"Above hundred", 100.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidatePercentage("Rate", tt.value)
			if (warning == "") != tt.expectEmpty {
				t.Errorf("ValidatePercentage(%v) = %q", tt.value, warning)
			}
		})
	}
}

func TestValidateDeductionRate(t *testing.T) {
	if w := ValidateDeductionRate("Rate", 0.38); w != "" {
		t.Errorf("unexpected warning %q", w)
	}
	if w := ValidateDeductionRate("Rate", 38); w == "" {
		t.Error("expected warning for percentage given as rate")
	}
	if w := ValidateDeductionRate("Rate", -0.1); w == "" {
		t.Error("expected warning for negative rate")
	}
}

func TestConfigValidator_ValidateAll(t *testing.T) {
	cv := ConfigValidator{
		Salary: defaultSalaryInputs(),
		Investment: &InvestmentInputs{
			StartCapital:        60000,
			MonthlyContribution: 1500,
			AnnualInterestPct:   10,
			TaxRatePct:          26.375,
			Years:               10,
			Target:              500000,
		},
	}

	if warnings := cv.ValidateAll(); warnings != nil {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestConfigValidator_Warnings(t *testing.T) {
	salary := defaultSalaryInputs()
	salary.LeistungszulagePct = 120
	salary.AbgabenStandard = 1.2

	cv := ConfigValidator{
		Salary: salary,
		Investment: &InvestmentInputs{
			StartCapital:        1000,
			MonthlyContribution: -10,
			AnnualInterestPct:   -2,
			TaxRatePct:          26.375,
			Years:               0,
			Target:              500,
		},
	}

	warnings := cv.ValidateAll()
	expected := []string{
		"Leistungszulage",
		"Standard deduction rate",
		"Monthly contribution is negative",
		"Annual interest",
		"Projection horizon",
		"already covered",
	}
	if len(warnings) != len(expected) {
		t.Fatalf("expected %d warnings, got %d: %v", len(expected), len(warnings), warnings)
	}
	for i, fragment := range expected {
		if !strings.Contains(warnings[i], fragment) {
			t.Errorf("warning %d = %q, expected it to contain %q", i, warnings[i], fragment)
		}
	}
}

func TestConfigValidator_EmptyConfiguration(t *testing.T) {
	cv := ConfigValidator{}
	if warnings := cv.ValidateAll(); warnings != nil {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}
