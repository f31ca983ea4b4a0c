// Package finance projects the growth of an investment under monthly
// compounding and a flat tax on cumulative profit.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// DefaultTaxRatePct is the capital gains tax including solidarity surcharge.
const DefaultTaxRatePct = constants.DefaultCapitalGainsTaxPct

var (
	// ErrTargetUnreachable is returned when the target wealth can never be reached.
	ErrTargetUnreachable = errors.New("target unreachable")

	// ErrSearchLimit is returned when a reachable target lies beyond the search horizon.
	ErrSearchLimit = errors.New("target beyond search horizon")
)

// TargetParameters describes an investment without a fixed horizon.
type TargetParameters struct {
	StartCapital        float64 `json:"startCapital"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualInterestPct   float64 `json:"annualInterestPct"`
	TaxRatePct          float64 `json:"taxRatePct"`
}

// InvestmentParameters describes an investment over a horizon of whole years.
type InvestmentParameters struct {
	TargetParameters
	Years int `json:"years"`
}

// Months returns the number of simulated months, zero for negative horizons.
func (p InvestmentParameters) Months() int {
	if p.Years <= 0 {
		return 0
	}
	return p.Years * constants.MonthsPerYear
}

// WealthSeries holds gross and after-tax wealth per month. Index 0 is the
// start capital.
type WealthSeries struct {
	Gross []float64 `json:"gross"`
	Net   []float64 `json:"net"`
}

// Len returns the number of points in the series.
func (s WealthSeries) Len() int {
	return len(s.Gross)
}

// Summary condenses a projection into its headline figures.
type Summary struct {
	FinalAmount float64 `json:"finalAmount"`
	GrossProfit float64 `json:"grossProfit"`
	TaxesPaid   float64 `json:"taxesPaid"`
	NetProfit   float64 `json:"netProfit"`
}

// MonthlyRate converts an annual percentage into the equivalent monthly rate
// under compounding.
func MonthlyRate(annualPct float64) float64 {
	return math.Pow(1+mathutil.PercentToDecimal(annualPct), 1.0/constants.MonthsPerYear) - 1
}

// taxOnProfit is the tax due on the cumulative profit, never negative.
func taxOnProfit(wealth, contributed, taxRate float64) float64 {
	return mathutil.Max(0, (wealth-contributed)*taxRate)
}

// Simulate projects wealth month by month. Tax is recomputed from the whole
// profit at every step rather than accumulated.
func Simulate(p InvestmentParameters) WealthSeries {
	months := p.Months()
	rate := MonthlyRate(p.AnnualInterestPct)
	taxRate := mathutil.PercentToDecimal(p.TaxRatePct)

	series := WealthSeries{
		Gross: make([]float64, 0, months+1),
		Net:   make([]float64, 0, months+1),
	}
	series.Gross = append(series.Gross, p.StartCapital)
	series.Net = append(series.Net, p.StartCapital)

	wealth := p.StartCapital
	for m := 1; m <= months; m++ {
		wealth = wealth*(1+rate) + p.MonthlyContribution
		contributed := p.StartCapital + p.MonthlyContribution*float64(m)
		series.Gross = append(series.Gross, wealth)
		series.Net = append(series.Net, wealth-taxOnProfit(wealth, contributed, taxRate))
	}
	return series
}

// Summarize reports the final amount, profit and tax of a simulated series.
func Summarize(series WealthSeries, p InvestmentParameters) Summary {
	var final float64
	if series.Len() > 0 {
		final = series.Gross[series.Len()-1]
	}
	contributed := p.StartCapital + p.MonthlyContribution*float64(p.Months())
	grossProfit := final - contributed
	taxes := mathutil.Max(0, grossProfit*mathutil.PercentToDecimal(p.TaxRatePct))

	return Summary{
		FinalAmount: final,
		GrossProfit: grossProfit,
		TaxesPaid:   taxes,
		NetProfit:   grossProfit - taxes,
	}
}

// MonthsToTarget simulates forward until gross wealth, or net wealth when
// afterTax is set, reaches target. The result is split into whole years and
// remaining months. Targets that can provably never be reached fail with
// ErrTargetUnreachable before any simulation; a target still not reached
// after constants.MaxTargetMonths fails with ErrSearchLimit.
func MonthsToTarget(p TargetParameters, target float64, afterTax bool) (years, months int, err error) {
	rate := MonthlyRate(p.AnnualInterestPct)
	taxRate := mathutil.PercentToDecimal(p.TaxRatePct)

	if p.StartCapital < target {
		if err := checkReachable(p, rate, taxRate, target, afterTax); err != nil {
			return 0, 0, err
		}
	}

	wealth := p.StartCapital
	for m := 0; m <= constants.MaxTargetMonths; m++ {
		if m > 0 {
			wealth = wealth*(1+rate) + p.MonthlyContribution
		}
		value := wealth
		if afterTax {
			contributed := p.StartCapital + p.MonthlyContribution*float64(m)
			value = wealth - taxOnProfit(wealth, contributed, taxRate)
		}
		if value >= target {
			return m / constants.MonthsPerYear, m % constants.MonthsPerYear, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %.2f not reached within %d months", ErrSearchLimit, target, constants.MaxTargetMonths)
}

// checkReachable rejects parameter sets whose wealth provably never grows to
// the target. Gross wealth follows (start + c/r)(1+r)^m - c/r, or start + c*m
// without interest.
func checkReachable(p TargetParameters, rate, taxRate, target float64, afterTax bool) error {
	c := p.MonthlyContribution

	switch {
	case rate > 0:
		if p.StartCapital+c/rate <= 0 {
			return fmt.Errorf("%w: %.2f while contributions of %.2f never outgrow the start capital of %.2f",
				ErrTargetUnreachable, target, c, p.StartCapital)
		}
	case rate == 0:
		if c <= 0 {
			return fmt.Errorf("%w: %.2f with no contributions and no growth from %.2f",
				ErrTargetUnreachable, target, p.StartCapital)
		}
	default:
		// Shrinking wealth settles at -contribution/rate.
		limit := -c / rate
		if limit <= target {
			return fmt.Errorf("%w: %.2f exceeds the steady state of %.2f",
				ErrTargetUnreachable, target, limit)
		}
	}

	// Taxing the whole profit leaves at most the contributed capital.
	if afterTax && taxRate >= 1 && c <= 0 {
		return fmt.Errorf("%w: %.2f after a tax rate of %.2f%% without contributions",
			ErrTargetUnreachable, target, p.TaxRatePct)
	}
	return nil
}
