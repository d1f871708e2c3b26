package charts

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"crossdash/internal/crossfilter"
)

// PopulationBar renders total population per continent for the latest
// year inside the selected range, largest first.
func PopulationBar(ctx Context, value crossfilter.FilterValue) (string, error) {
	width, height := ctx.size(28, 7)
	inRange := ctx.Table.FilterYears(value.Lower, value.Upper)
	if len(inRange) == 0 {
		return "", fmt.Errorf("no observations between %d and %d", value.Lower, value.Upper)
	}
	year := inRange.LatestYear()
	sums := inRange.ForYear(year).SumPopByContinent()

	type slice struct {
		name string
		pop  int64
	}
	display := make([]slice, 0, len(sums))
	var total, maxPop int64
	for name, pop := range sums {
		display = append(display, slice{name, pop})
		total += pop
		if pop > maxPop {
			maxPop = pop
		}
	}
	sort.Slice(display, func(i, j int) bool {
		if display[i].pop != display[j].pop {
			return display[i].pop > display[j].pop
		}
		return display[i].name < display[j].name
	})
	if len(display) > height-1 {
		display = display[:height-1]
	}

	const pctW = 4
	amtW := 0
	nameW := 0
	for _, s := range display {
		if w := len(formatCount(s.pop)); w > amtW {
			amtW = w
		}
		if w := len(s.name); w > nameW {
			nameW = w
		}
	}
	nameW++
	barW := width - nameW - 1 - pctW - 1 - amtW
	if barW < 1 {
		barW = 1
	}

	var lines []string
	for _, s := range display {
		ratio := 0.0
		if maxPop > 0 {
			ratio = float64(s.pop) / float64(maxPop)
		}
		filled := int(math.Round(float64(barW) * ratio))
		if filled < 1 && s.pop > 0 {
			filled = 1
		}
		if filled > barW {
			filled = barW
		}
		empty := barW - filled

		color := continentColor(s.name)
		nameText := padRight(lipgloss.NewStyle().Foreground(color).Render(truncate(s.name, nameW-1)), nameW)
		barFilled := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
		barEmpty := lipgloss.NewStyle().Foreground(chartColorSurface2).Render(strings.Repeat("░", empty))
		pct := 0.0
		if total > 0 {
			pct = float64(s.pop) / float64(total) * 100
		}
		pctText := labelStyle.Render(fmt.Sprintf("%3.0f%%", pct))
		amtText := fmt.Sprintf("%*s", amtW, formatCount(s.pop))
		lines = append(lines, padRight(nameText+barFilled+barEmpty+" "+pctText+" "+amtText, width))
	}
	lines = append(lines, labelStyle.Render(fmt.Sprintf("total %s, %d", formatCount(total), year)))
	return strings.Join(lines, "\n"), nil
}
