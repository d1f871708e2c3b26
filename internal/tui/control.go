package tui

import (
	"strconv"

	"crossdash/internal/crossfilter"
)

// rangeControl is the year-range selector shown on every page: a row of
// preset chips plus a custom slot that opens a two-stage year entry.
// It implements crossfilter.ControlSurface, so the page adapter seeds
// it, repaints it on writes from other pages and reverts it when a
// commit is rejected.
type rangeControl struct {
	value crossfilter.FilterValue

	presets []crossfilter.FilterValue

	focused bool
	cursor  int

	editing   bool
	editStage int
	editInput string
	editLower int
}

// newRangeControl derives the presets from the dataset's year bounds:
// the full span plus each half when the span allows it.
func newRangeControl(lo, hi int) *rangeControl {
	presets := []crossfilter.FilterValue{{Lower: lo, Upper: hi}}
	if hi > lo+1 {
		mid := (lo + hi) / 2
		presets = append(presets,
			crossfilter.FilterValue{Lower: lo, Upper: mid},
			crossfilter.FilterValue{Lower: mid + 1, Upper: hi},
		)
	}
	return &rangeControl{presets: presets}
}

func (c *rangeControl) Value() crossfilter.FilterValue { return c.value }

// SetValue is the adapter's programmatic path. It repaints the applied
// value and never dispatches.
func (c *rangeControl) SetValue(v crossfilter.FilterValue) { c.value = v }

func (c *rangeControl) focus() {
	c.focused = true
	c.cursor = c.presetIndex(c.value)
}

func (c *rangeControl) blur() {
	c.focused = false
	c.editing = false
	c.editStage = 0
	c.editInput = ""
}

// presetIndex returns the chip matching v, or the custom slot when no
// preset does.
func (c *rangeControl) presetIndex(v crossfilter.FilterValue) int {
	for i, p := range c.presets {
		if p.Equal(v) {
			return i
		}
	}
	return len(c.presets)
}

func (c *rangeControl) slots() int { return len(c.presets) + 1 }

func (c *rangeControl) moveCursor(delta int) {
	n := c.slots()
	c.cursor = (c.cursor + delta + n) % n
}

func (c *rangeControl) cursorOnCustom() bool { return c.cursor == len(c.presets) }

func (c *rangeControl) presetValue() crossfilter.FilterValue {
	return c.presets[c.cursor]
}

func (c *rangeControl) startEditing() {
	c.editing = true
	c.editStage = 0
	c.editInput = ""
	c.editLower = 0
}

func (c *rangeControl) typeDigit(key string) bool {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return false
	}
	if len(c.editInput) >= 4 {
		return false
	}
	c.editInput += key
	return true
}

func (c *rangeControl) deleteDigit() bool {
	if c.editInput == "" {
		return false
	}
	c.editInput = c.editInput[:len(c.editInput)-1]
	return true
}

// confirmStage advances the two-stage year entry. The first confirm
// stores the start year, the second returns the candidate range and
// leaves editing. A non-empty errMsg is a status-line message and the
// entry stays where it is. Bound order is deliberately not checked
// here; the page adapter owns that boundary and reverts the control
// when it rejects.
func (c *rangeControl) confirmStage() (done bool, v crossfilter.FilterValue, errMsg string) {
	year, err := strconv.Atoi(c.editInput)
	if err != nil || len(c.editInput) != 4 {
		return false, crossfilter.FilterValue{}, "Invalid year. Type four digits, e.g. 1987."
	}
	if c.editStage == 0 {
		c.editLower = year
		c.editStage = 1
		c.editInput = ""
		return false, crossfilter.FilterValue{}, ""
	}
	v = crossfilter.FilterValue{Lower: c.editLower, Upper: year}
	c.blur()
	return true, v, ""
}

// chipLabels returns one label per cursor slot, custom last.
func (c *rangeControl) chipLabels() []string {
	labels := make([]string, 0, c.slots())
	for _, p := range c.presets {
		labels = append(labels, p.String())
	}
	return append(labels, "custom")
}
