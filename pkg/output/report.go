package output

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/salary"
)

type salaryLine struct {
	Name   string
	Amount int
}

// salaryLines lists the salary components in display order.
func salaryLines(r salary.Result) []salaryLine {
	lines := []salaryLine{
		{Name: "Grundgehalt", Amount: r.Grundgehalt},
		{Name: "Leistungszulage", Amount: r.Leistungszulage},
		{Name: "Urlaubsgeld", Amount: r.Urlaubsgeld},
		{Name: "Weihnachtsgeld", Amount: r.Weihnachtsgeld},
		{Name: "T-ZUG A", Amount: r.TZugA},
		{Name: "T-ZUG B", Amount: r.TZugB},
	}
	if r.TGeld != 0 {
		lines = append(lines, salaryLine{Name: "T-Geld", Amount: r.TGeld})
	}
	return append(lines,
		salaryLine{Name: salary.FieldJahresbrutto, Amount: r.Jahresbrutto},
		salaryLine{Name: salary.FieldJahresnetto, Amount: r.Jahresnetto},
		salaryLine{Name: salary.FieldMonatsnetto, Amount: r.MonatsnettoDurchschnitt},
	)
}

type yearlyRow struct {
	Month string
	Gross float64
	Net   float64
}

// yearlyRows samples the projection at every year tick plus the final month.
func yearlyRows(inv *calculator.InvestmentReport) []yearlyRow {
	var rows []yearlyRow
	last := inv.Series.Len() - 1
	for _, tick := range inv.YearTicks {
		rows = append(rows, yearlyRow{Month: inv.Months[tick.Index], Gross: inv.Series.Gross[tick.Index], Net: inv.Series.Net[tick.Index]})
	}
	if last >= 0 && (len(inv.YearTicks) == 0 || inv.YearTicks[len(inv.YearTicks)-1].Index != last) {
		rows = append(rows, yearlyRow{Month: inv.Months[last], Gross: inv.Series.Gross[last], Net: inv.Series.Net[last]})
	}
	return rows
}

func targetText(t calculator.TargetResult) string {
	basis := "before tax"
	if t.AfterTax {
		basis = "after tax"
	}
	if !t.Reachable {
		return fmt.Sprintf("Target %s (%s) not reached: %s", format.Euro(t.Amount), basis, t.Message)
	}
	return fmt.Sprintf("Target %s (%s) reached after %d years %d months", format.Euro(t.Amount), basis, t.Years, t.Months)
}
