package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/x/ansi"
)

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	norm := v / mag
	var nice float64
	switch {
	case norm <= 1:
		nice = 1
	case norm <= 2:
		nice = 2
	case norm <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * mag
}

// axisScale picks a tick step and axis ceiling so that max fits under
// roughly ticks rounded intervals.
func axisScale(max float64, ticks int) (step, ceil float64) {
	if ticks < 1 {
		ticks = 4
	}
	if max <= 0 {
		return 1, float64(ticks)
	}
	step = niceCeil(max / float64(ticks))
	ceil = step * math.Ceil(max/step)
	return step, ceil
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1_000_000_000:
		return fmt.Sprintf("%.1fb", v/1_000_000_000)
	case av >= 1_000_000:
		return fmt.Sprintf("%.0fm", v/1_000_000)
	case av >= 10_000:
		return fmt.Sprintf("%.0fk", v/1_000)
	case av >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func formatCount(n int64) string {
	return formatTick(float64(n))
}

// tickLabelFormatter labels the row nearest each multiple of step. Rows
// rarely hit tick values exactly, so tol should be half the row spacing.
func tickLabelFormatter(step, tol float64) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		if step <= 0 {
			return ""
		}
		snapped := math.Round(v/step) * step
		if math.Abs(v-snapped) > tol {
			return ""
		}
		if snapped <= 0 {
			return ""
		}
		return formatTick(snapped)
	}
}

// yTickTolerance is half the value spanned by one graph row. The axis and
// label rows eat two of the chart's rows.
func yTickTolerance(span float64, chartHeight int) float64 {
	rows := chartHeight - 2
	if rows < 1 {
		rows = 1
	}
	return span / float64(rows) / 2
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
