package salary

import (
	"fmt"
	"strconv"
)

// Comparison fields, in display order.
const (
	FieldJahresbrutto = "Jahresbruttogehalt"
	FieldJahresnetto  = "Nettojahresgehalt"
	FieldMonatsnetto  = "Ø Monatsnetto"
)

// ComparisonFields lists the headline fields shown in comparison tables.
var ComparisonFields = []string{FieldJahresbrutto, FieldJahresnetto, FieldMonatsnetto}

// duplicateSuffix disambiguates the second row of a pair comparison.
const duplicateSuffix = " (cmp)"

// Tag tells the rendering layer how to present a cell.
type Tag string

const (
	TagBaseline Tag = "baseline"
	TagPositive Tag = "positive"
	TagNegative Tag = "negative"
	TagNeutral  Tag = "neutral"
)

// Row is a labelled salary result taking part in a comparison.
type Row struct {
	Label  string
	Result Result
}

// Cell is one displayed value of a comparison table.
type Cell struct {
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Display string `json:"display"`
	Tag     Tag    `json:"tag"`
}

// TableRow is one row of a comparison table.
type TableRow struct {
	Label    string `json:"label"`
	Baseline bool   `json:"baseline"`
	Cells    []Cell `json:"cells"`
}

// Table is a comparison of salary results against a baseline row.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// FlatCell is a (label, field, display value) triple.
type FlatCell struct {
	Label   string
	Field   string
	Display string
	Tag     Tag
}

// Cells flattens the table row by row.
func (t Table) Cells() []FlatCell {
	var cells []FlatCell
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			cells = append(cells, FlatCell{Label: row.Label, Field: cell.Field, Display: cell.Display, Tag: cell.Tag})
		}
	}
	return cells
}

// Row returns the table row with the given label.
func (t Table) Row(label string) (TableRow, bool) {
	for _, row := range t.Rows {
		if row.Label == label {
			return row, true
		}
	}
	return TableRow{}, false
}

// Compare shows the baseline row with absolute values and every other row as
// the signed difference to the baseline.
func Compare(rows []Row, baseline string) (Table, error) {
	seen := make(map[string]struct{}, len(rows))
	var base *Result
	for i := range rows {
		if _, dup := seen[rows[i].Label]; dup {
			return Table{}, fmt.Errorf("%w: %q", ErrDuplicateLabel, rows[i].Label)
		}
		seen[rows[i].Label] = struct{}{}
		if rows[i].Label == baseline {
			base = &rows[i].Result
		}
	}
	if base == nil {
		return Table{}, fmt.Errorf("%w: %q", ErrLabelNotFound, baseline)
	}

	table := Table{Columns: append([]string(nil), ComparisonFields...)}
	for _, row := range rows {
		if row.Label == baseline {
			table.Rows = append(table.Rows, baselineRow(row.Label, row.Result))
			continue
		}
		table.Rows = append(table.Rows, deltaRow(row.Label, row.Result, *base))
	}
	return table, nil
}

// ComparePair compares exactly one other group against mine. The other row
// gets a suffixed label when both labels are equal.
func ComparePair(mine, other Row) Table {
	otherLabel := other.Label
	if otherLabel == mine.Label {
		otherLabel += duplicateSuffix
	}

	return Table{
		Columns: append([]string(nil), ComparisonFields...),
		Rows: []TableRow{
			baselineRow(mine.Label, mine.Result),
			deltaRow(otherLabel, other.Result, mine.Result),
		},
	}
}

func headline(r Result) []int {
	return []int{r.Jahresbrutto, r.Jahresnetto, r.MonatsnettoDurchschnitt}
}

func baselineRow(label string, r Result) TableRow {
	values := headline(r)
	row := TableRow{Label: label, Baseline: true, Cells: make([]Cell, len(values))}
	for i, v := range values {
		row.Cells[i] = Cell{
			Field:   ComparisonFields[i],
			Value:   v,
			Display: strconv.Itoa(v),
			Tag:     TagBaseline,
		}
	}
	return row
}

func deltaRow(label string, r, base Result) TableRow {
	values := headline(r)
	baseValues := headline(base)
	row := TableRow{Label: label, Cells: make([]Cell, len(values))}
	for i := range values {
		delta := values[i] - baseValues[i]
		row.Cells[i] = Cell{
			Field:   ComparisonFields[i],
			Value:   delta,
			Display: signed(delta),
			Tag:     tagFor(delta),
		}
	}
	return row
}

func signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func tagFor(delta int) Tag {
	switch {
	case delta > 0:
		return TagPositive
	case delta < 0:
		return TagNegative
	default:
		return TagNeutral
	}
}
