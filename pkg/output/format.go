// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/salary"
)

// Write renders report to w in the requested output format.
func Write(w io.Writer, outputFormat string, report *calculator.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, report)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, report)
	case constants.OutputFormatJSON:
		return JSONFormat(w, report)
	case constants.OutputFormatPDF:
		return PDFFormat(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report *calculator.Report) {
	if s := report.Salary; s != nil {
		_, _ = fmt.Fprintf(w, "--- Salary for %s ---\n", s.Label)
		for _, line := range salaryLines(s.Result) {
			_, _ = fmt.Fprintf(w, "%-20s | %s\n", line.Name, format.Euro(float64(line.Amount)))
		}
		if s.YearComparison != nil {
			_, _ = fmt.Fprintf(w, "\n--- Tariff groups %d ---\n", s.Result.Point.Jahr)
			prettyTable(w, *s.YearComparison)
		}
		if s.PairComparison != nil {
			_, _ = fmt.Fprintf(w, "\n--- Comparison ---\n")
			prettyTable(w, *s.PairComparison)
		}
		if report.Investment != nil {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}

	if inv := report.Investment; inv != nil {
		_, _ = fmt.Fprintf(w, "--- Investment over %d years ---\n", inv.Parameters.Years)
		_, _ = fmt.Fprintf(w, "Final amount (gross)     | %s\n", format.Euro(inv.Summary.FinalAmount))
		_, _ = fmt.Fprintf(w, "Gross profit             | %s\n", format.Euro(inv.Summary.GrossProfit))
		_, _ = fmt.Fprintf(w, "Taxes paid               | %s\n", format.Euro(inv.Summary.TaxesPaid))
		_, _ = fmt.Fprintf(w, "Net profit               | %s\n", format.Euro(inv.Summary.NetProfit))
		_, _ = fmt.Fprintf(w, "%s\n\n", targetText(inv.Target))
		_, _ = fmt.Fprintf(w, "Date    | Gross           | Net\n")
		_, _ = fmt.Fprintf(w, "____    | _____________   | _____________\n")
		for _, row := range yearlyRows(inv) {
			_, _ = fmt.Fprintf(w, "%s | %-15s | %s\n", row.Month, format.Euro(row.Gross), format.Euro(row.Net))
		}
	}
}

func prettyTable(w io.Writer, table salary.Table) {
	_, _ = fmt.Fprintf(w, "%-20s", "Group")
	for _, column := range table.Columns {
		_, _ = fmt.Fprintf(w, " | %18s", column)
	}
	_, _ = fmt.Fprintf(w, "\n")
	for _, row := range table.Rows {
		_, _ = fmt.Fprintf(w, "%-20s", row.Label)
		for _, cell := range row.Cells {
			_, _ = fmt.Fprintf(w, " | %18s", cell.Display)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}
}

// CsvFormat outputs in comma-separated value format. Salary and investment
// sections are separated by an empty line.
func CsvFormat(w io.Writer, report *calculator.Report) error {
	cw := csv.NewWriter(w)

	if s := report.Salary; s != nil {
		_ = cw.Write([]string{"component", "amount (" + s.Label + ")"})
		for _, line := range salaryLines(s.Result) {
			_ = cw.Write([]string{line.Name, strconv.Itoa(line.Amount)})
		}
		for _, table := range []*salary.Table{s.YearComparison, s.PairComparison} {
			if table == nil {
				continue
			}
			_ = cw.Write(nil)
			_ = cw.Write([]string{"label", "field", "value", "display", "tag"})
			for _, row := range table.Rows {
				for _, cell := range row.Cells {
					_ = cw.Write([]string{row.Label, cell.Field, strconv.Itoa(cell.Value), cell.Display, string(cell.Tag)})
				}
			}
		}
		if report.Investment != nil {
			_ = cw.Write(nil)
		}
	}

	if inv := report.Investment; inv != nil {
		_ = cw.Write([]string{"date", "gross", "net"})
		for i := 0; i < inv.Series.Len(); i++ {
			_ = cw.Write([]string{
				inv.Months[i],
				strconv.FormatFloat(inv.Series.Gross[i], 'f', 2, 64),
				strconv.FormatFloat(inv.Series.Net[i], 'f', 2, 64),
			})
		}
	}

	cw.Flush()
	return cw.Error()
}
