package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"crossdash/internal/crossfilter"
	"crossdash/internal/dataset"
)

// LifeExpScatter plots life expectancy against GDP per capita on a log10
// x axis for the latest year inside the selected range. Marker size
// tracks population, marker color the continent.
func LifeExpScatter(ctx Context, value crossfilter.FilterValue) (string, error) {
	width, height := ctx.size(32, 10)
	inRange := ctx.Table.FilterYears(value.Lower, value.Upper)
	if len(inRange) == 0 {
		return "", fmt.Errorf("no observations between %d and %d", value.Lower, value.Upper)
	}
	year := inRange.LatestYear()
	points := inRange.ForYear(year)

	minX, maxX, minY, maxY := scatterBounds(points)

	lc := linechart.New(width, height-1, minX, maxX, minY, maxY)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.SetXStep(1)
	lc.SetYStep(1)
	lc.XLabelFormatter = logTickFormatter(minX, maxX, width)
	lc.YLabelFormatter = tickLabelFormatter(10, yTickTolerance(maxY-minY, height-1))
	lc.DrawXYAxisAndLabel()

	origin := lc.Origin()
	topY := origin.Y - lc.GraphHeight()
	if topY < 0 {
		topY = 0
	}
	for _, r := range points {
		if r.GDPPercap <= 0 {
			continue
		}
		point := canvas.Float64Point{X: math.Log10(r.GDPPercap), Y: r.LifeExp}
		scaled := lc.ScaleFloat64Point(point)
		p := canvas.CanvasPointFromFloat64Point(origin, scaled)
		if lc.YStep() > 0 {
			p.X++
		}
		if lc.XStep() > 0 {
			p.Y--
		}
		if p.X <= origin.X || p.X >= lc.Width() {
			continue
		}
		if p.Y < topY || p.Y >= origin.Y {
			continue
		}
		style := lipgloss.NewStyle().Foreground(continentColor(r.Continent))
		lc.Canvas.SetRuneWithStyle(p, popRune(r.Pop), style)
	}

	return lc.View() + "\n" + scatterLegend(width, year, points.Continents()), nil
}

func scatterBounds(points dataset.Table) (minX, maxX, minY, maxY float64) {
	first := true
	var loGDP, hiGDP, loLife, hiLife float64
	for _, r := range points {
		if r.GDPPercap <= 0 {
			continue
		}
		if first {
			loGDP, hiGDP = r.GDPPercap, r.GDPPercap
			loLife, hiLife = r.LifeExp, r.LifeExp
			first = false
			continue
		}
		loGDP = math.Min(loGDP, r.GDPPercap)
		hiGDP = math.Max(hiGDP, r.GDPPercap)
		loLife = math.Min(loLife, r.LifeExp)
		hiLife = math.Max(hiLife, r.LifeExp)
	}
	if first {
		return 2, 5, 0, 90
	}
	minX = math.Floor(math.Log10(loGDP))
	maxX = math.Ceil(math.Log10(hiGDP))
	if maxX <= minX {
		maxX = minX + 1
	}
	minY = 10 * math.Floor(loLife/10)
	if minY < 0 {
		minY = 0
	}
	maxY = 10 * math.Ceil(hiLife/10)
	if maxY <= minY {
		maxY = minY + 10
	}
	return minX, maxX, minY, maxY
}

// logTickFormatter labels integer powers of ten on a log10 axis. The
// tolerance is half a column so each power lands on at most one column.
func logTickFormatter(minX, maxX float64, width int) linechart.LabelFormatter {
	cols := float64(width - 4)
	if cols < 1 {
		cols = 1
	}
	tol := (maxX - minX) / cols / 2
	return func(_ int, v float64) string {
		k := math.Round(v)
		if math.Abs(v-k) > tol {
			return ""
		}
		return formatTick(math.Pow(10, k))
	}
}

func popRune(pop int64) rune {
	switch {
	case pop >= 200_000_000:
		return '●'
	case pop >= 50_000_000:
		return '•'
	default:
		return '·'
	}
}

func scatterLegend(width, year int, continents []string) string {
	parts := make([]string, 0, len(continents)+1)
	for _, c := range continents {
		sty := lipgloss.NewStyle().Foreground(continentColor(c))
		parts = append(parts, sty.Render("● "+c))
	}
	parts = append(parts, labelStyle.Render(strconv.Itoa(year)))
	return truncate(strings.Join(parts, "  "), width)
}
