package format

import (
	"testing"

	"github.com/iwvelando/finance-calculators/pkg/salary"
)

func TestEuro(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "0 €"},
		{"Small", 999.4, "999 €"},
		{"Thousands", 60000, "60 000 €"},
		{"Rounds half up", 455420.5, "455 421 €"},
		{"Millions", 1234567.2, "1 234 567 €"},
		{"Negative", -1234.4, "-1 234 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Euro(tt.amount); got != tt.expected {
				t.Errorf("Euro(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestGrouped(t *testing.T) {
	if got := Grouped(69771); got != "69 771" {
		t.Errorf("Grouped(69771) = %q", got)
	}
	if got := Grouped(-100); got != "-100" {
		t.Errorf("Grouped(-100) = %q", got)
	}
}

func TestTagColor(t *testing.T) {
	if c := TagColor(salary.TagPositive); c.G == 0 || c.R != 0 {
		t.Errorf("expected green for positive, got %+v", c)
	}
	if c := TagColor(salary.TagNegative); c.R == 0 || c.G != 0 {
		t.Errorf("expected red for negative, got %+v", c)
	}
	if c := TagColor(salary.TagBaseline); c != (RGB{}) {
		t.Errorf("expected black for baseline, got %+v", c)
	}
	if c := TagColor(salary.TagNeutral); c != (RGB{}) {
		t.Errorf("expected black for neutral, got %+v", c)
	}
}
