package output

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/format"
	"github.com/iwvelando/finance-calculators/pkg/salary"
)

const (
	pdfMargin       = 15.0
	pdfContentWidth = 210.0 - 2*pdfMargin
	pdfLineHeight   = 7.0
)

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// PDFFormat renders the report as an A4 PDF document. Comparison deltas are
// coloured green when positive and red when negative.
func PDFFormat(w io.Writer, report *calculator.Report) error {
	r := pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	r.pdf.SetAutoPageBreak(true, pdfMargin)

	if report.Salary != nil {
		r.addSalary(report.Salary)
	}
	if report.Investment != nil {
		r.addInvestment(report.Investment)
	}

	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return r.pdf.Output(w)
}

func (r *pdfReport) heading(text string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *pdfReport) subheading(text string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
}

func (r *pdfReport) keyValue(key, value string) {
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(pdfContentWidth/2, pdfLineHeight, r.tr(key), "B", 0, "L", false, 0, "")
	r.pdf.CellFormat(pdfContentWidth/2, pdfLineHeight, r.tr(value), "B", 1, "R", false, 0, "")
}

func (r *pdfReport) addSalary(s *calculator.SalaryReport) {
	r.pdf.AddPage()
	r.heading("Salary " + s.Label)
	for _, line := range salaryLines(s.Result) {
		r.keyValue(line.Name, format.Euro(float64(line.Amount)))
	}

	if s.YearComparison != nil {
		r.subheading(fmt.Sprintf("Tariff groups %d", s.Result.Point.Jahr))
		r.comparisonTable(*s.YearComparison)
	}
	if s.PairComparison != nil {
		r.subheading("Comparison")
		r.comparisonTable(*s.PairComparison)
	}
}

func (r *pdfReport) comparisonTable(table salary.Table) {
	labelWidth := pdfContentWidth * 0.34
	colWidth := (pdfContentWidth - labelWidth) / float64(len(table.Columns))

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(labelWidth, pdfLineHeight, r.tr("Group"), "1", 0, "L", true, 0, "")
	for _, column := range table.Columns {
		r.pdf.CellFormat(colWidth, pdfLineHeight, r.tr(column), "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	for _, row := range table.Rows {
		style := ""
		if row.Baseline {
			style = "B"
		}
		r.pdf.SetFont("Arial", style, 10)
		r.pdf.SetTextColor(0, 0, 0)
		r.pdf.CellFormat(labelWidth, pdfLineHeight, r.tr(row.Label), "1", 0, "L", false, 0, "")
		for _, cell := range row.Cells {
			c := format.TagColor(cell.Tag)
			r.pdf.SetTextColor(c.R, c.G, c.B)
			r.pdf.CellFormat(colWidth, pdfLineHeight, cell.Display, "1", 0, "R", false, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReport) addInvestment(inv *calculator.InvestmentReport) {
	r.pdf.AddPage()
	r.heading(fmt.Sprintf("Investment over %d years", inv.Parameters.Years))
	r.keyValue("Start capital", format.Euro(inv.Parameters.StartCapital))
	r.keyValue("Monthly contribution", format.Euro(inv.Parameters.MonthlyContribution))
	r.keyValue("Annual interest", fmt.Sprintf("%.2f %%", inv.Parameters.AnnualInterestPct))
	r.keyValue("Tax rate", fmt.Sprintf("%.3f %%", inv.Parameters.TaxRatePct))

	r.subheading("Summary")
	r.keyValue("Final amount (gross)", format.Euro(inv.Summary.FinalAmount))
	r.keyValue("Gross profit", format.Euro(inv.Summary.GrossProfit))
	r.keyValue("Taxes paid", format.Euro(inv.Summary.TaxesPaid))
	r.keyValue("Net profit", format.Euro(inv.Summary.NetProfit))
	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.MultiCell(pdfContentWidth, pdfLineHeight, r.tr(targetText(inv.Target)), "", "L", false)

	r.subheading("Projection")
	colWidth := pdfContentWidth / 3
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetTextColor(0, 51, 102)
	for _, header := range []string{"Date", "Gross", "Net"} {
		r.pdf.CellFormat(colWidth, pdfLineHeight, header, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(0, 0, 0)
	for _, row := range yearlyRows(inv) {
		r.pdf.CellFormat(colWidth, pdfLineHeight, row.Month, "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(colWidth, pdfLineHeight, r.tr(format.Euro(row.Gross)), "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(colWidth, pdfLineHeight, r.tr(format.Euro(row.Net)), "1", 1, "R", false, 0, "")
	}
}
