package crossfilter

// ControlSurface is the contract a page-local range control exposes to
// its adapter. SetValue is the programmatic path and must not feed back
// into PageAdapter.OnLocalChange.
type ControlSurface interface {
	Value() FilterValue
	SetValue(FilterValue)
}

// AdapterState tracks where an adapter is in its sync cycle.
type AdapterState int

const (
	StateIdle AdapterState = iota
	StateSyncing
)

func (s AdapterState) String() string {
	if s == StateSyncing {
		return "syncing"
	}
	return "idle"
}

// PageAdapter binds one page's control to the shared cell in both
// directions. Echo suppression is by version: the adapter records the
// cell version it last applied (or originated) and ignores deliveries
// carrying that version, so one user edit produces exactly one cell
// write and at most one programmatic update per other page.
type PageAdapter struct {
	pageID    string
	controlID string
	cell      *SharedCell
	control   ControlSurface
	subID     SubscriptionID

	lastSeen    uint64
	lastApplied FilterValue
	state       AdapterState
}

// NewPageAdapter attaches a control to the cell. The control is seeded
// with the cell's current value and the adapter subscribes for
// subsequent writes.
func NewPageAdapter(pageID, controlID string, cell *SharedCell, control ControlSurface) *PageAdapter {
	a := &PageAdapter{
		pageID:    pageID,
		controlID: controlID,
		cell:      cell,
		control:   control,
	}
	value, version := cell.Read()
	a.state = StateSyncing
	control.SetValue(value)
	a.lastApplied = value
	a.lastSeen = version
	a.state = StateIdle
	a.subID = cell.Subscribe(a.OnCellChange)
	return a
}

// OnLocalChange handles a user edit of this page's control. A malformed
// range is rejected here: the control is reverted to the last applied
// value and the error returned for the status line, with no cell write.
// A value equal to the last applied one is the UI layer re-delivering a
// programmatic update and is ignored.
func (a *PageAdapter) OnLocalChange(newValue FilterValue) error {
	if newValue.Lower > newValue.Upper {
		a.control.SetValue(a.lastApplied)
		return &ValidationError{
			Field: a.controlID,
			Msg:   "lower bound exceeds upper bound",
		}
	}
	if newValue.Equal(a.lastApplied) {
		return nil
	}

	a.state = StateSyncing
	version, err := a.cell.Write(newValue)
	if err != nil {
		a.state = StateIdle
		a.control.SetValue(a.lastApplied)
		return err
	}
	a.lastApplied = newValue
	a.lastSeen = version
	a.state = StateIdle
	return nil
}

// OnCellChange handles a cell notification. A delivery while this
// adapter is mid-write is its own write echoing back synchronously and
// is dropped, as is any delivery carrying the version it last recorded;
// anything newer is applied to the control programmatically. No path
// here re-enters OnLocalChange.
func (a *PageAdapter) OnCellChange(value FilterValue, version uint64) {
	if a.state == StateSyncing {
		return
	}
	if version == a.lastSeen {
		return
	}
	a.state = StateSyncing
	a.control.SetValue(value)
	a.lastApplied = value
	a.lastSeen = version
	a.state = StateIdle
}

// Close detaches the adapter from the cell. The control keeps its last
// value; page teardown owns the rest.
func (a *PageAdapter) Close() {
	a.cell.Unsubscribe(a.subID)
}

func (a *PageAdapter) PageID() string      { return a.pageID }
func (a *PageAdapter) ControlID() string   { return a.controlID }
func (a *PageAdapter) State() AdapterState { return a.state }

// LastSeen exposes the applied value/version pair, mainly for
// convergence checks.
func (a *PageAdapter) LastSeen() (FilterValue, uint64) {
	return a.lastApplied, a.lastSeen
}
