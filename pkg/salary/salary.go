// Package salary estimates annual gross and net pay for a collective-bargaining
// tariff group and compares tariff groups with each other.
package salary

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/mathutil"
)

// Default factors of the tariff agreement.
const (
	DefaultLeistungszulagePct     = 5.6
	DefaultUrlaubsgeldFaktor      = 0.7
	DefaultWeihnachtsgeldFaktor   = 0.55
	DefaultTZugAFaktor            = 0.275
	DefaultTZugB                  = 630.0
	DefaultTGeldFaktor            = 0.184
	DefaultAbgabenStandard        = 0.38
	DefaultAbgabenSonderzahlungen = 0.395
)

// Parameters holds everything needed to compute one annual salary.
type Parameters struct {
	Point                  TariffPoint
	LeistungszulagePct     float64
	UrlaubsgeldFaktor      float64
	WeihnachtsgeldFaktor   float64
	TZugAFaktor            float64
	TZugB                  float64
	TGeldFaktor            float64
	TGeldAktiv             bool
	AbgabenStandard        float64 // deduction rate on recurring pay
	AbgabenSonderzahlungen float64 // deduction rate on one-time payments
}

// DefaultParameters returns a fresh parameter set with the agreement defaults.
func DefaultParameters(point TariffPoint) Parameters {
	return Parameters{
		Point:                  point,
		LeistungszulagePct:     DefaultLeistungszulagePct,
		UrlaubsgeldFaktor:      DefaultUrlaubsgeldFaktor,
		WeihnachtsgeldFaktor:   DefaultWeihnachtsgeldFaktor,
		TZugAFaktor:            DefaultTZugAFaktor,
		TZugB:                  DefaultTZugB,
		TGeldFaktor:            DefaultTGeldFaktor,
		AbgabenStandard:        DefaultAbgabenStandard,
		AbgabenSonderzahlungen: DefaultAbgabenSonderzahlungen,
	}
}

// Result is the computed salary of one tariff group. Amounts are whole euros.
type Result struct {
	Point              TariffPoint
	LeistungszulagePct float64

	Grundgehalt     int // monthly base pay including the performance bonus
	Leistungszulage int // monthly performance bonus
	Urlaubsgeld     int
	Weihnachtsgeld  int
	TZugA           int
	TZugB           int
	TGeld           int

	Jahresbrutto            int
	Jahresnetto             int
	MonatsnettoDurchschnitt int
}

// Label identifies a result in comparison tables, e.g. "EG09 B 2025 5.60%".
func (r Result) Label() string {
	return BuildLabel(r.Point, r.LeistungszulagePct)
}

// BuildLabel formats the row label for a tariff point and performance bonus.
func BuildLabel(p TariffPoint, leistungszulagePct float64) string {
	return fmt.Sprintf("%s %s %d %.2f%%", p.Entgeltgruppe, p.Stufe, p.Jahr, leistungszulagePct)
}

// ComputeAnnualSalary computes gross and net annual pay. One-time payments
// are taxed at AbgabenSonderzahlungen, recurring pay at AbgabenStandard.
// Rounding happens only on the returned amounts.
func ComputeAnnualSalary(p Parameters) Result {
	leistungszulage := mathutil.ApplyPercentage(p.Point.Grundentgelt, p.LeistungszulagePct)
	grundgehalt := p.Point.Grundentgelt + leistungszulage

	urlaubsgeld := p.UrlaubsgeldFaktor * grundgehalt
	weihnachtsgeld := p.WeihnachtsgeldFaktor * grundgehalt
	tZugA := p.TZugAFaktor * grundgehalt
	tZugB := p.TZugB
	tGeld := 0.0
	if p.TGeldAktiv {
		tGeld = p.TGeldFaktor * grundgehalt
	}

	jahresgrundgehalt := grundgehalt * constants.MonthsPerYear
	sonderzahlungen := urlaubsgeld + weihnachtsgeld + tZugA + tZugB + tGeld
	jahresbrutto := jahresgrundgehalt + sonderzahlungen

	jahresnetto := jahresgrundgehalt*(1-p.AbgabenStandard) + sonderzahlungen*(1-p.AbgabenSonderzahlungen)

	return Result{
		Point:                   p.Point,
		LeistungszulagePct:      p.LeistungszulagePct,
		Grundgehalt:             mathutil.RoundWhole(grundgehalt),
		Leistungszulage:         mathutil.RoundWhole(leistungszulage),
		Urlaubsgeld:             mathutil.RoundWhole(urlaubsgeld),
		Weihnachtsgeld:          mathutil.RoundWhole(weihnachtsgeld),
		TZugA:                   mathutil.RoundWhole(tZugA),
		TZugB:                   mathutil.RoundWhole(tZugB),
		TGeld:                   mathutil.RoundWhole(tGeld),
		Jahresbrutto:            mathutil.RoundWhole(jahresbrutto),
		Jahresnetto:             mathutil.RoundWhole(jahresnetto),
		MonatsnettoDurchschnitt: mathutil.RoundWhole(jahresnetto / constants.MonthsPerYear),
	}
}

// CompareYear computes a result for every tariff group of a year. All groups
// share the settings of template; only its tariff point is replaced.
func CompareYear(catalog *Catalog, jahr int, template Parameters) ([]Row, error) {
	points := catalog.ForYear(jahr)
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no tariff groups for year %d", ErrTariffPointNotFound, jahr)
	}

	rows := make([]Row, 0, len(points))
	for _, point := range points {
		params := template
		params.Point = point
		result := ComputeAnnualSalary(params)
		rows = append(rows, Row{Label: result.Label(), Result: result})
	}
	return rows, nil
}
