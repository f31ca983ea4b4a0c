package output

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/iwvelando/finance-calculators/internal/calculator"
)

// JSONFormat outputs the full report, including every projected month, as
// indented JSON.
func JSONFormat(w io.Writer, report *calculator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
