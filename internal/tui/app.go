package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/charmbracelet/bubbles/key"

	"crossdash/internal/charts"
	"crossdash/internal/crossfilter"
	"crossdash/internal/dataset"
	"crossdash/internal/layout"
)

// page is one dashboard tab: its year-range control, the adapter
// binding that control to the shared cell, and a panel per chart
// target.
type page struct {
	id      string
	title   string
	control *rangeControl
	adapter *crossfilter.PageAdapter
	panels  []panel
}

// panel holds the latest output of one chart computation.
type panel struct {
	computationID string
	parameter     string
	title         string
	body          string
	errMsg        string
	pending       bool
}

// chartMsg carries one chart result back to the update loop together
// with the cell version the computation ran under.
type chartMsg struct {
	pageID        string
	computationID string
	version       uint64
	body          string
	err           error
}

// App is the bubbletea model for the whole dashboard.
type App struct {
	cell     *crossfilter.SharedCell
	resolver *crossfilter.TargetResolver
	invoker  *crossfilter.ComputationInvoker[charts.Context]
	table    dataset.Table
	logger   *zap.Logger

	pages     []*page
	activeTab int

	width  int
	height int

	status      string
	statusIsErr bool

	keys keyMap
}

// New wires the dashboard: one tab per layout page, each with its own
// adapter on the shared cell. The caller has already registered the
// chart computations and every page's targets.
func New(pages []layout.Page, cell *crossfilter.SharedCell, resolver *crossfilter.TargetResolver, invoker *crossfilter.ComputationInvoker[charts.Context], table dataset.Table, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		cell:     cell,
		resolver: resolver,
		invoker:  invoker,
		table:    table,
		logger:   logger,
		width:    80,
		height:   24,
		keys:     newKeyMap(),
	}
	value, _ := cell.Read()
	lo, hi, ok := table.YearBounds()
	if !ok {
		lo, hi = value.Lower, value.Upper
	}
	for _, pg := range pages {
		ctrl := newRangeControl(lo, hi)
		adapter := crossfilter.NewPageAdapter(pg.ID, pg.Control, cell, ctrl)
		targets := resolver.Resolve(pg.ID, value)
		panels := make([]panel, 0, len(targets))
		for _, t := range targets {
			panels = append(panels, panel{
				computationID: t.ComputationID,
				parameter:     t.Parameter,
				title:         charts.Title(t.ComputationID),
				pending:       true,
			})
		}
		a.pages = append(a.pages, &page{
			id:      pg.ID,
			title:   pg.Title,
			control: ctrl,
			adapter: adapter,
			panels:  panels,
		})
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.recomputeAll()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, a.recomputeAll()
	case chartMsg:
		a.applyChart(m)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	p := a.activePage()
	if p == nil {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}
	if p.control.editing {
		return a.updateEditing(msg, p)
	}
	if p.control.focused {
		return a.updateFocused(msg, p)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(a.pages)
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(a.pages)) % len(a.pages)
	case key.Matches(msg, a.keys.Range):
		p.control.focus()
		a.setStatus("Pick a year range.")
	}
	return a, nil
}

func (a *App) updateFocused(msg tea.KeyMsg, p *page) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Left):
		p.control.moveCursor(-1)
	case key.Matches(msg, a.keys.Right):
		p.control.moveCursor(1)
	case key.Matches(msg, a.keys.Select):
		if p.control.cursorOnCustom() {
			p.control.startEditing()
			a.setStatus("Custom range: type the start year.")
			return a, nil
		}
		v := p.control.presetValue()
		p.control.blur()
		return a, a.commitRange(p, v)
	case key.Matches(msg, a.keys.Close), key.Matches(msg, a.keys.Range):
		p.control.blur()
		a.setStatus("Range selection cancelled.")
	}
	return a, nil
}

func (a *App) updateEditing(msg tea.KeyMsg, p *page) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		p.control.blur()
		a.setStatus("Custom range cancelled.")
	case isBackspaceKey(msg):
		p.control.deleteDigit()
	case key.Matches(msg, a.keys.Select):
		done, v, errMsg := p.control.confirmStage()
		if errMsg != "" {
			a.setError(errMsg)
			return a, nil
		}
		if !done {
			a.setStatus("Custom range: type the end year.")
			return a, nil
		}
		return a, a.commitRange(p, v)
	default:
		p.control.typeDigit(msg.String())
	}
	return a, nil
}

// commitRange pushes a user-chosen range through the page adapter. A
// rejected value has already reverted the control by the time the error
// comes back; an accepted one bumped the cell version and synced every
// other page's control, so all panels recompute.
func (a *App) commitRange(p *page, v crossfilter.FilterValue) tea.Cmd {
	_, before := a.cell.Read()
	if err := p.adapter.OnLocalChange(v); err != nil {
		a.setError(err.Error())
		a.logger.Warn("range rejected",
			zap.String("page", p.id),
			zap.Stringer("value", v),
			zap.Error(err))
		return nil
	}
	value, version := a.cell.Read()
	if version == before {
		a.setStatus("Year range unchanged.")
		return nil
	}
	a.setStatusf("Years %s.", value)
	a.logger.Info("range applied",
		zap.String("page", p.id),
		zap.Stringer("value", value),
		zap.Uint64("version", version))
	return a.recomputeAll()
}

// recomputeAll re-runs every page's chart targets against the current
// cell value. Each command captures the version it started under so a
// result overtaken by a newer write can be discarded on receipt.
func (a *App) recomputeAll() tea.Cmd {
	value, version := a.cell.Read()
	var cmds []tea.Cmd
	for _, p := range a.pages {
		ctx := charts.Context{
			Table:  a.table,
			Width:  a.panelWidth(),
			Height: a.panelHeight(len(p.panels)),
		}
		pageID := p.id
		for _, t := range a.resolver.Resolve(p.id, value) {
			for i := range p.panels {
				if p.panels[i].computationID == t.ComputationID {
					p.panels[i].pending = true
				}
			}
			cmds = append(cmds, func() tea.Msg {
				body, err := a.invoker.Invoke(t.ComputationID, t.Parameter, t.Value, ctx)
				return chartMsg{
					pageID:        pageID,
					computationID: t.ComputationID,
					version:       version,
					body:          body,
					err:           err,
				}
			})
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyChart lands one chart result. A result carrying a version older
// than the cell's current one was computed for a superseded range and
// is dropped; the command for the newer version is already in flight.
func (a *App) applyChart(m chartMsg) {
	if m.version != a.cell.Version() {
		a.logger.Debug("stale chart result dropped",
			zap.String("computation", m.computationID),
			zap.Uint64("resultVersion", m.version),
			zap.Uint64("cellVersion", a.cell.Version()))
		return
	}
	for _, p := range a.pages {
		if p.id != m.pageID {
			continue
		}
		for i := range p.panels {
			pn := &p.panels[i]
			if pn.computationID != m.computationID {
				continue
			}
			pn.pending = false
			if m.err != nil {
				pn.errMsg = m.err.Error()
				pn.body = ""
				a.logger.Warn("chart computation failed",
					zap.String("page", p.id),
					zap.String("computation", m.computationID),
					zap.Error(m.err))
				continue
			}
			pn.errMsg = ""
			pn.body = m.body
		}
	}
}

func (a *App) activePage() *page {
	if len(a.pages) == 0 {
		return nil
	}
	return a.pages[a.activeTab]
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusIsErr = false
}

func (a *App) setStatusf(format string, args ...any) {
	a.setStatus(fmt.Sprintf(format, args...))
}

func (a *App) setError(s string) {
	a.status = s
	a.statusIsErr = true
}

const (
	headerRows  = 1
	controlRows = 2
	statusRows  = 1
	footerRows  = 1
)

func (a *App) panelWidth() int {
	w := a.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

// panelHeight divides the rows left under the chrome between n panels,
// one heading row each.
func (a *App) panelHeight(n int) int {
	if n < 1 {
		n = 1
	}
	avail := a.height - headerRows - controlRows - statusRows - footerRows
	per := avail/n - 1
	if per < 8 {
		per = 8
	}
	return per
}
