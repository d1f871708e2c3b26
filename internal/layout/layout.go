package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"crossdash/internal/crossfilter"
)

// Page declares one dashboard page: the control it renders and the
// computation parameters that control drives.
type Page struct {
	ID      string   `toml:"id"`
	Title   string   `toml:"title"`
	Control string   `toml:"control"`
	Targets []string `toml:"targets"`
}

// layoutFile is the top-level TOML structure.
type layoutFile struct {
	Page []Page `toml:"page"`
}

const defaultLayoutTOML = `# Crossdash page layout.
# Each [[page]] renders one year-range control. All controls share a
# single value; targets name the "computation.parameter" pairs the
# control drives on its own page.

[[page]]
id = "economic"
title = "Economic"
control = "economicYear"
targets = ["lineChart.year"]

[[page]]
id = "global"
title = "Global"
control = "globalYear"
targets = ["scatterChart.year", "barChart.year"]
`

// Default returns the built-in two-page layout.
func Default() []Page {
	return []Page{
		{
			ID:      "economic",
			Title:   "Economic",
			Control: "economicYear",
			Targets: []string{"lineChart.year"},
		},
		{
			ID:      "global",
			Title:   "Global",
			Control: "globalYear",
			Targets: []string{"scatterChart.year", "barChart.year"},
		},
	}
}

// Load reads the layout file at path, creating it with the default
// layout when missing.
func Load(path string) ([]Page, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return nil, fmt.Errorf("create layout dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultLayoutTOML), 0644); wErr != nil {
			return nil, fmt.Errorf("write default layout: %w", wErr)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML bytes into pages and validates them.
func Parse(data []byte) ([]Page, error) {
	var f layoutFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layout.toml: %w", err)
	}
	if len(f.Page) == 0 {
		return nil, fmt.Errorf("no pages defined in layout")
	}
	ids := make(map[string]bool)
	controls := make(map[string]bool)
	for i, p := range f.Page {
		if p.ID == "" {
			return nil, fmt.Errorf("page[%d]: id is required", i)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("page[%d] %q: duplicate id", i, p.ID)
		}
		ids[p.ID] = true
		if p.Control == "" {
			return nil, fmt.Errorf("page[%d] %q: control is required", i, p.ID)
		}
		if controls[p.Control] {
			return nil, fmt.Errorf("page[%d] %q: control %q already used", i, p.ID, p.Control)
		}
		controls[p.Control] = true
		if len(p.Targets) == 0 {
			return nil, fmt.Errorf("page[%d] %q: at least one target is required", i, p.ID)
		}
		if p.Title == "" {
			f.Page[i].Title = p.ID
		}
	}
	return f.Page, nil
}

// ParseTargets converts "computation.parameter" strings into specs.
func ParseTargets(raw []string) ([]crossfilter.TargetSpec, error) {
	specs := make([]crossfilter.TargetSpec, 0, len(raw))
	for _, s := range raw {
		id, param, ok := strings.Cut(s, ".")
		if !ok || id == "" || param == "" {
			return nil, fmt.Errorf("target %q: want \"computation.parameter\"", s)
		}
		specs = append(specs, crossfilter.TargetSpec{ComputationID: id, Parameter: param})
	}
	return specs, nil
}

// Apply registers every page's targets against the invoker's known
// computations. The first bad page aborts startup.
func Apply[D any](pages []Page, res *crossfilter.TargetResolver, inv *crossfilter.ComputationInvoker[D]) error {
	available := inv.IDs()
	for _, p := range pages {
		specs, err := ParseTargets(p.Targets)
		if err != nil {
			return fmt.Errorf("page %q: %w", p.ID, err)
		}
		if err := res.Register(p.ID, specs, available); err != nil {
			return err
		}
	}
	return nil
}
