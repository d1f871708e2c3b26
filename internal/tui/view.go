package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/charmbracelet/bubbles/key"
)

const appName = "crossdash"

var (
	headerAppStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Background(colorSurface0).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Padding(0, 1)
	tabSepStyle      = lipgloss.NewStyle().Foreground(colorSurface1)

	controlLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	controlValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	chipStyle         = lipgloss.NewStyle().Foreground(colorSubtext1).Padding(0, 1)
	chipCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorFocus).Padding(0, 1)
	promptStyle       = lipgloss.NewStyle().Foreground(colorWarning)
	inputStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface0)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorInfo)
	panelDimStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	panelErrStyle   = lipgloss.NewStyle().Foreground(colorError)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	helpKeyStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	helpDescStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	p := a.activePage()
	if p == nil {
		b.WriteString(panelDimStyle.Render("no pages configured"))
	} else {
		b.WriteString(a.renderControl(p))
		b.WriteString("\n\n")
		b.WriteString(a.renderPanels(p))
	}
	return a.placeWithFooter(b.String(), a.renderStatus(), a.renderFooter())
}

func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(a.pages))
	for i, p := range a.pages {
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Render(p.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(p.title))
		}
	}
	line := headerAppStyle.Render(appName) + " " + strings.Join(tabs, tabSepStyle.Render("│"))
	return truncateLine(line, a.width)
}

func (a *App) renderControl(p *page) string {
	c := p.control
	label := controlLabelStyle.Render("Years ")
	switch {
	case c.editing:
		prompt := "start year"
		if c.editStage == 1 {
			prompt = "end year"
		}
		typed := c.editInput + strings.Repeat("_", 4-len(c.editInput))
		line := label + promptStyle.Render(prompt+": ") + inputStyle.Render(typed)
		if c.editStage == 1 {
			line += controlLabelStyle.Render(fmt.Sprintf("  (from %d)", c.editLower))
		}
		return truncateLine(line, a.width)
	case c.focused:
		chips := make([]string, 0, c.slots())
		for i, lbl := range c.chipLabels() {
			if i == c.cursor {
				chips = append(chips, chipCursorStyle.Render(lbl))
			} else {
				chips = append(chips, chipStyle.Render(lbl))
			}
		}
		return truncateLine(label+strings.Join(chips, " "), a.width)
	default:
		line := label + controlValueStyle.Render(c.value.String()) +
			controlLabelStyle.Render("  (y to change)")
		return truncateLine(line, a.width)
	}
}

// renderPanels draws every chart panel. A panel keeps showing its last
// body while a fresh result is in flight; a stale error does not, since
// the recompute usually clears it.
func (a *App) renderPanels(p *page) string {
	blocks := make([]string, 0, len(p.panels))
	for i := range p.panels {
		pn := &p.panels[i]
		title := panelTitleStyle.Render(pn.title)
		switch {
		case pn.errMsg != "" && !pn.pending:
			blocks = append(blocks, title+"\n"+panelErrStyle.Render("error: "+pn.errMsg))
		case pn.body == "":
			blocks = append(blocks, title+"\n"+panelDimStyle.Render("computing..."))
		default:
			blocks = append(blocks, title+"\n"+pn.body)
		}
	}
	if len(blocks) == 0 {
		return panelDimStyle.Render("no charts on this page")
	}
	return strings.Join(blocks, "\n")
}

func (a *App) renderStatus() string {
	s := strings.ReplaceAll(a.status, "\n", " ")
	if a.statusIsErr {
		return truncateLine(statusErrStyle.Render(s), a.width)
	}
	return truncateLine(statusStyle.Render(s), a.width)
}

func (a *App) renderFooter() string {
	bindings := a.footerBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return truncateLine(strings.Join(parts, "  "), a.width)
}

func (a *App) footerBindings() []key.Binding {
	p := a.activePage()
	if p == nil {
		return []key.Binding{a.keys.Quit}
	}
	if p.control.editing {
		return a.keys.editBindings()
	}
	if p.control.focused {
		return a.keys.rangeBindings()
	}
	return a.keys.browseBindings()
}

// placeWithFooter pins the status and footer to the last two rows and
// pads every body line to full width so previous frames never ghost
// through.
func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - statusRows - footerRows
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func padLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncateLine(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
