package crossfilter

import "testing"

// fakeControl records programmatic updates the way a real range control
// would receive them.
type fakeControl struct {
	value    FilterValue
	setCalls int
	history  []FilterValue
}

func (c *fakeControl) Value() FilterValue { return c.value }

func (c *fakeControl) SetValue(v FilterValue) {
	c.value = v
	c.setCalls++
	c.history = append(c.history, v)
}

func newTestAdapter(t *testing.T) (*SharedCell, *PageAdapter, *fakeControl) {
	t.Helper()
	cell := NewSharedCell(FilterValue{Lower: 1952, Upper: 2007})
	ctrl := &fakeControl{}
	a := NewPageAdapter("economic", "economicYear", cell, ctrl)
	ctrl.setCalls = 0
	ctrl.history = nil
	return cell, a, ctrl
}

func TestAdapterSeedsControl(t *testing.T) {
	cell := NewSharedCell(FilterValue{Lower: 1952, Upper: 2007})
	ctrl := &fakeControl{}
	a := NewPageAdapter("economic", "economicYear", cell, ctrl)
	if !ctrl.value.Equal(FilterValue{Lower: 1952, Upper: 2007}) {
		t.Errorf("control seeded with %v, want cell default", ctrl.value)
	}
	value, version := a.LastSeen()
	if !value.Equal(FilterValue{Lower: 1952, Upper: 2007}) || version != 1 {
		t.Errorf("LastSeen() = %v/%d, want 1952-2007/1", value, version)
	}
	if a.State() != StateIdle {
		t.Errorf("state = %v, want idle", a.State())
	}
}

func TestAdapterLocalChangeWritesCell(t *testing.T) {
	cell, a, _ := newTestAdapter(t)
	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("OnLocalChange: %v", err)
	}
	value, version := cell.Read()
	if !value.Equal(FilterValue{Lower: 1980, Upper: 2000}) {
		t.Errorf("cell value = %v, want 1980-2000", value)
	}
	_, seen := a.LastSeen()
	if seen != version {
		t.Errorf("adapter lastSeen = %d, want cell version %d", seen, version)
	}
}

func TestAdapterOriginatorNotReupdated(t *testing.T) {
	_, a, ctrl := newTestAdapter(t)
	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("OnLocalChange: %v", err)
	}
	if ctrl.setCalls != 0 {
		t.Errorf("originator control updated %d times, want 0", ctrl.setCalls)
	}
}

func TestAdapterRemoteChangeUpdatesControl(t *testing.T) {
	cell := NewSharedCell(FilterValue{Lower: 1952, Upper: 2007})
	ctrlA := &fakeControl{}
	ctrlB := &fakeControl{}
	a := NewPageAdapter("economic", "economicYear", cell, ctrlA)
	b := NewPageAdapter("global", "globalYear", cell, ctrlB)
	ctrlA.setCalls = 0
	ctrlB.setCalls = 0

	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("OnLocalChange: %v", err)
	}
	if ctrlB.setCalls != 1 {
		t.Fatalf("remote control updated %d times, want 1", ctrlB.setCalls)
	}
	if !ctrlB.value.Equal(FilterValue{Lower: 1980, Upper: 2000}) {
		t.Errorf("remote control value = %v, want 1980-2000", ctrlB.value)
	}
	valueB, seenB := b.LastSeen()
	valueA, seenA := a.LastSeen()
	if !valueA.Equal(valueB) || seenA != seenB {
		t.Errorf("adapters diverged: %v/%d vs %v/%d", valueA, seenA, valueB, seenB)
	}
}

func TestAdapterProgrammaticRedeliveryIgnored(t *testing.T) {
	cell, a, _ := newTestAdapter(t)
	writes := 0
	cell.Subscribe(func(FilterValue, uint64) { writes++ })

	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("OnLocalChange: %v", err)
	}
	// The UI layer re-delivers a programmatic SetValue as a change event;
	// the value matches what the adapter last applied, so nothing happens.
	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("re-delivered OnLocalChange: %v", err)
	}
	if writes != 1 {
		t.Errorf("cell writes = %d, want 1", writes)
	}
}

func TestAdapterRejectsMalformedAndReverts(t *testing.T) {
	cell, a, ctrl := newTestAdapter(t)
	if err := a.OnLocalChange(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("OnLocalChange: %v", err)
	}
	ctrl.setCalls = 0

	err := a.OnLocalChange(FilterValue{Lower: 2010, Upper: 1990})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	if !IsValidation(err) {
		t.Errorf("error = %T, want ValidationError", err)
	}
	if ctrl.setCalls != 1 {
		t.Errorf("revert SetValue calls = %d, want 1", ctrl.setCalls)
	}
	if !ctrl.value.Equal(FilterValue{Lower: 1980, Upper: 2000}) {
		t.Errorf("control after revert = %v, want last valid 1980-2000", ctrl.value)
	}
	value, version := cell.Read()
	if !value.Equal(FilterValue{Lower: 1980, Upper: 2000}) || version != 2 {
		t.Errorf("cell after rejected edit = %v/%d, want 1980-2000/2", value, version)
	}
}

func TestAdapterStaleVersionIgnored(t *testing.T) {
	_, a, ctrl := newTestAdapter(t)
	// Version 1 was applied at attach time; delivering it again must not
	// touch the control.
	a.OnCellChange(FilterValue{Lower: 1952, Upper: 2007}, 1)
	if ctrl.setCalls != 0 {
		t.Errorf("control updated on stale version: calls = %d", ctrl.setCalls)
	}
}

func TestAdapterSyncingDuringProgrammaticUpdate(t *testing.T) {
	cell := NewSharedCell(FilterValue{Lower: 1952, Upper: 2007})
	ctrl := &fakeControl{}
	a := NewPageAdapter("global", "globalYear", cell, ctrl)

	var seen []AdapterState
	probe := &stateProbe{adapter: func() *PageAdapter { return a }, record: func(s AdapterState) { seen = append(seen, s) }}
	a.control = probe

	a.OnCellChange(FilterValue{Lower: 1980, Upper: 2000}, 5)
	if len(seen) != 1 || seen[0] != StateSyncing {
		t.Errorf("state during SetValue = %v, want [syncing]", seen)
	}
	if a.State() != StateIdle {
		t.Errorf("state after update = %v, want idle", a.State())
	}
}

type stateProbe struct {
	adapter func() *PageAdapter
	record  func(AdapterState)
	value   FilterValue
}

func (p *stateProbe) Value() FilterValue { return p.value }

func (p *stateProbe) SetValue(v FilterValue) {
	p.value = v
	p.record(p.adapter().State())
}

func TestAdapterClose(t *testing.T) {
	cell := NewSharedCell(FilterValue{Lower: 1952, Upper: 2007})
	ctrl := &fakeControl{}
	a := NewPageAdapter("economic", "economicYear", cell, ctrl)
	ctrl.setCalls = 0

	a.Close()
	if _, err := cell.Write(FilterValue{Lower: 1980, Upper: 2000}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if ctrl.setCalls != 0 {
		t.Errorf("closed adapter still updated its control %d times", ctrl.setCalls)
	}
}

func TestAdapterIdentity(t *testing.T) {
	_, a, _ := newTestAdapter(t)
	if a.PageID() != "economic" {
		t.Errorf("PageID() = %q, want %q", a.PageID(), "economic")
	}
	if a.ControlID() != "economicYear" {
		t.Errorf("ControlID() = %q, want %q", a.ControlID(), "economicYear")
	}
}
