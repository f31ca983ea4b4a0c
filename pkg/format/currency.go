// Package format renders amounts and comparison tags for display.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/salary"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Euro returns a whole-euro amount with space thousands separators (e.g. "-1 234 €").
func Euro(amount float64) string {
	return Grouped(int(math.Round(amount))) + " €"
}

var germanPrinter = message.NewPrinter(language.German)

// Grouped returns an integer with space thousands separators (e.g. "60 000").
func Grouped(value int) string {
	return strings.ReplaceAll(germanPrinter.Sprintf("%d", value), ".", " ")
}

// RGB is a colour used by report renderers.
type RGB struct {
	R, G, B int
}

// TagColor maps a comparison tag to its display colour.
func TagColor(tag salary.Tag) RGB {
	switch tag {
	case salary.TagPositive:
		return RGB{R: 0, G: 128, B: 0}
	case salary.TagNegative:
		return RGB{R: 200, G: 0, B: 0}
	default:
		return RGB{R: 0, G: 0, B: 0}
	}
}
