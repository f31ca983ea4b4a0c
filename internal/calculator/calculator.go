// Package calculator turns a loaded configuration into salary and investment
// reports by calling the calculation engines.
package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/finance"
	"github.com/iwvelando/finance-calculators/pkg/salary"
	"go.uber.org/zap"
)

// SalaryReport holds the salary of the selected tariff group and its comparisons.
type SalaryReport struct {
	Label          string        `json:"label"`
	Result         salary.Result `json:"result"`
	YearComparison *salary.Table `json:"yearComparison,omitempty"`
	PairComparison *salary.Table `json:"pairComparison,omitempty"`
}

// InvestmentReport holds a wealth projection and its time-to-target answer.
type InvestmentReport struct {
	Parameters finance.InvestmentParameters `json:"parameters"`
	Series     finance.WealthSeries         `json:"series"`
	Months     []string                     `json:"months"`
	YearTicks  []finance.YearTick           `json:"yearTicks"`
	Summary    finance.Summary              `json:"summary"`
	Target     TargetResult                 `json:"target"`
}

// TargetResult answers how long it takes to reach the configured target.
type TargetResult struct {
	Amount    float64 `json:"amount"`
	AfterTax  bool    `json:"afterTax"`
	Reachable bool    `json:"reachable"`
	Years     int     `json:"years"`
	Months    int     `json:"months"`
	Message   string  `json:"message,omitempty"`
}

// Report bundles the results of one run.
type Report struct {
	Salary     *SalaryReport     `json:"salary,omitempty"`
	Investment *InvestmentReport `json:"investment,omitempty"`
}

// RunSalary computes the salary of the configured tariff group and the
// requested comparisons.
func RunSalary(logger *zap.Logger, catalog *salary.Catalog, conf config.SalaryConfig) (*SalaryReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		return nil, fmt.Errorf("tariff catalog cannot be nil")
	}

	point, err := selectPoint(catalog, conf.SalarySelection)
	if err != nil {
		return nil, fmt.Errorf("failed to select tariff group: %w", err)
	}

	params := conf.ToParameters(point, conf.Factors)
	result := salary.ComputeAnnualSalary(params)
	mine := salary.Row{Label: result.Label(), Result: result}

	report := &SalaryReport{Label: mine.Label, Result: result}
	logger.Debug("salary computed",
		zap.String("op", "calculator.RunSalary"),
		zap.String("group", mine.Label),
		zap.Int("gross", result.Jahresbrutto),
		zap.Int("net", result.Jahresnetto),
	)

	if conf.CompareYear {
		rows, err := salary.CompareYear(catalog, conf.Jahr, params)
		if err != nil {
			return nil, fmt.Errorf("failed to compare year %d: %w", conf.Jahr, err)
		}
		table, err := salary.Compare(rows, mine.Label)
		if err != nil {
			return nil, fmt.Errorf("failed to compare year %d: %w", conf.Jahr, err)
		}
		report.YearComparison = &table
	}

	if conf.Compare != nil {
		cmpPoint, err := selectPoint(catalog, *conf.Compare)
		if err != nil {
			return nil, fmt.Errorf("failed to select comparison tariff group: %w", err)
		}
		cmpResult := salary.ComputeAnnualSalary(conf.Compare.ToParameters(cmpPoint, conf.Factors))
		table := salary.ComparePair(mine, salary.Row{Label: cmpResult.Label(), Result: cmpResult})
		report.PairComparison = &table

		logger.Debug("comparison computed",
			zap.String("op", "calculator.RunSalary"),
			zap.String("group", cmpResult.Label()),
		)
	}

	return report, nil
}

// selectPoint looks up a tariff point and, when it is missing, names the
// choices the catalog offers at the first level that did not match.
func selectPoint(catalog *salary.Catalog, sel config.SalarySelection) (salary.TariffPoint, error) {
	point, err := catalog.Lookup(sel.Jahr, sel.Entgeltgruppe, sel.Stufe)
	if err == nil {
		return point, nil
	}

	groups := catalog.Groups(sel.Jahr)
	if len(groups) == 0 {
		return point, fmt.Errorf("%w (available years: %s)", err, joinYears(catalog.Years()))
	}
	steps := catalog.Steps(sel.Jahr, sel.Entgeltgruppe)
	if len(steps) == 0 {
		return point, fmt.Errorf("%w (available groups in %d: %s)", err, sel.Jahr, strings.Join(groups, ", "))
	}
	return point, fmt.Errorf("%w (available steps for %s in %d: %s)", err, sel.Entgeltgruppe, sel.Jahr, strings.Join(steps, ", "))
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, ", ")
}

// RunInvestment projects the configured investment. A target that is
// unreachable or beyond the search horizon is reported in the result rather
// than failing the run.
func RunInvestment(logger *zap.Logger, conf config.InvestmentConfig, now time.Time) (*InvestmentReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	start, err := conf.ProjectionStart(now)
	if err != nil {
		return nil, err
	}

	params := conf.ToParameters()
	series := finance.Simulate(params)

	report := &InvestmentReport{
		Parameters: params,
		Series:     series,
		Months:     series.MonthLabels(start),
		YearTicks:  series.YearTicks(start.Year()),
		Summary:    finance.Summarize(series, params),
		Target:     TargetResult{Amount: conf.Target, AfterTax: conf.AfterTax},
	}

	years, months, err := finance.MonthsToTarget(params.TargetParameters, conf.Target, conf.AfterTax)
	switch {
	case errors.Is(err, finance.ErrTargetUnreachable), errors.Is(err, finance.ErrSearchLimit):
		report.Target.Message = err.Error()
		logger.Warn("investment target not reached",
			zap.String("op", "calculator.RunInvestment"),
			zap.Float64("target", conf.Target),
			zap.Error(err),
		)
	case err != nil:
		return nil, err
	default:
		report.Target.Reachable = true
		report.Target.Years = years
		report.Target.Months = months
	}

	logger.Debug("investment projected",
		zap.String("op", "calculator.RunInvestment"),
		zap.Int("months", params.Months()),
		zap.Float64("finalAmount", report.Summary.FinalAmount),
	)

	return report, nil
}

// Run executes the calculators enabled in conf and selected by mode.
func Run(logger *zap.Logger, catalog *salary.Catalog, conf config.Configuration, runSalary, runInvestment bool, now time.Time) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var report Report
	if runSalary && conf.Salary.Enabled {
		s, err := RunSalary(logger, catalog, conf.Salary)
		if err != nil {
			return nil, err
		}
		report.Salary = s
	} else {
		logger.Debug("skipping salary calculator",
			zap.String("op", "calculator.Run"),
		)
	}

	if runInvestment && conf.Investment.Enabled {
		inv, err := RunInvestment(logger, conf.Investment, now)
		if err != nil {
			return nil, err
		}
		report.Investment = inv
	} else {
		logger.Debug("skipping investment calculator",
			zap.String("op", "calculator.Run"),
		)
	}

	if report.Salary == nil && report.Investment == nil {
		return nil, fmt.Errorf("no calculator configured: add a salary or investment section")
	}
	return &report, nil
}
