package charts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"crossdash/internal/crossfilter"
)

// lineCountries is the fixed cohort the GDP chart tracks.
var lineCountries = []string{"United States", "China", "India", "Germany", "Brazil"}

// GDPLine renders GDP per capita over the selected years, one braille
// series per cohort country.
func GDPLine(ctx Context, value crossfilter.FilterValue) (string, error) {
	width, height := ctx.size(32, 10)
	rows := ctx.Table.Countries(lineCountries...).FilterYears(value.Lower, value.Upper)
	if len(rows) == 0 {
		return "", fmt.Errorf("no observations between %d and %d", value.Lower, value.Upper)
	}

	lo, hi, _ := rows.YearBounds()
	start := yearStart(lo)
	end := yearStart(hi)
	if lo == hi {
		end = start.AddDate(0, 6, 0)
	}

	var maxGDP float64
	for _, r := range rows {
		if r.GDPPercap > maxGDP {
			maxGDP = r.GDPPercap
		}
	}
	step, ceil := axisScale(maxGDP, 4)

	chart := tslc.New(width, height-1)
	chart.AxisStyle = axisStyle
	chart.LabelStyle = labelStyle
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, ceil)
	chart.SetViewYRange(0, ceil)
	chart.Model.XLabelFormatter = yearLabelFormatter(start, end, lo, hi)
	chart.Model.YLabelFormatter = tickLabelFormatter(step, yTickTolerance(ceil, height-1))

	for _, name := range lineCountries {
		chart.SetDataSetStyle(name, lipgloss.NewStyle().Foreground(countryColor(name)))
	}
	for _, r := range rows {
		chart.PushDataSet(r.Country, tslc.TimePoint{Time: yearStart(r.Year), Value: r.GDPPercap})
	}
	chart.DrawBrailleAll()

	return chart.View() + "\n" + lineLegend(width), nil
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// yearLabelFormatter marks only the two ends of the x axis. Column values
// fall within a day of the range bounds at the edge columns alone, so no
// interior column picks up a duplicate label.
func yearLabelFormatter(start, end time.Time, lo, hi int) linechart.LabelFormatter {
	const day = int64(24 * time.Hour / time.Second)
	return func(_ int, v float64) string {
		ts := int64(v)
		if ts <= start.Unix()+day {
			return strconv.Itoa(lo)
		}
		if hi > lo && ts >= end.Unix()-day {
			return strconv.Itoa(hi)
		}
		return ""
	}
}

func lineLegend(width int) string {
	parts := make([]string, 0, len(lineCountries))
	for _, name := range lineCountries {
		sty := lipgloss.NewStyle().Foreground(countryColor(name))
		parts = append(parts, sty.Render("─ "+name))
	}
	return truncate(strings.Join(parts, "  "), width)
}
