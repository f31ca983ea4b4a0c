package finance

import (
	"strconv"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
)

// YearTick marks the first month of a calendar year on a chart axis.
type YearTick struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// YearTicks returns one tick every twelve months, labelled with the calendar
// year counted from startYear.
func (s WealthSeries) YearTicks(startYear int) []YearTick {
	var ticks []YearTick
	for i := 0; i < s.Len(); i += constants.MonthsPerYear {
		ticks = append(ticks, YearTick{
			Index: i,
			Label: strconv.Itoa(startYear + i/constants.MonthsPerYear),
		})
	}
	return ticks
}

// MonthLabels returns a month label (e.g. "2025-01") for every point of the
// series, starting at start.
func (s WealthSeries) MonthLabels(start time.Time) []string {
	first := start.Format(constants.DateTimeLayout)
	labels := make([]string, s.Len())
	for i := range labels {
		label, err := datetime.OffsetDate(first, constants.DateTimeLayout, i)
		if err != nil {
			label = strconv.Itoa(i)
		}
		labels[i] = label
	}
	return labels
}
