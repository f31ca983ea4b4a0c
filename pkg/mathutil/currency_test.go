package mathutil

import (
	"testing"
)

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"Gross salary", 69771.0984, 69771},
		{"Net salary", 43131.691812, 43132},
		{"Half rounds away from zero", 2.5, 3},
		{"Negative half rounds away from zero", -2.5, -3},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := RoundWhole(tt.input); result != tt.expected {
				t.Errorf("RoundWhole(%v) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestMax(t *testing.T) {
	if got := Max(0, -5); got != 0 {
		t.Errorf("Max(0, -5) = %v, expected 0", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %v, expected 7", got)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Performance bonus", 4841, 5.6, 271.096},
		{"Capital gains tax", 1000, 26.375, 263.75},
		{"Zero percent", 1000, 0, 0},
		{"Full amount", 250, 100, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if !WithinTolerance(result, tt.expected, 1e-9) {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v", tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}
