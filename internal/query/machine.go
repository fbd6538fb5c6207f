// Package query holds the query/action selection state machine and the
// session that couples it to the ranked action list.
package query

// State is the phase of the current query.
type State int

const (
	Editing State = iota
	Submitted
	Done
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitted:
		return "submitted"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// NoIndex marks an empty highlighted or selected index.
const NoIndex = -1

// Snapshot is an immutable copy of the machine state.
type Snapshot struct {
	State       State
	Query       string
	Highlighted int
	Selected    int
	Length      int
}

func (s Snapshot) HasHighlight() bool { return s.Highlighted != NoIndex }
func (s Snapshot) HasSelection() bool { return s.Selected != NoIndex }

// Machine tracks the query text and list navigation:
//
//	editing --SubmitOrRun--> submitted --SubmitOrRun--> done
//	submitted|done --Unsubmit/SetQuery--> editing
//
// highlighted is only set while submitted and selected only while done.
// Every operation is total and notifies the observer after each mutation.
type Machine struct {
	state       State
	query       string
	highlighted int
	selected    int
	length      int
	observer    func(Snapshot)
}

// NewMachine returns a machine in the editing state over a list of length
// actions.
func NewMachine(length int) *Machine {
	if length < 0 {
		length = 0
	}
	return &Machine{
		state:       Editing,
		highlighted: NoIndex,
		selected:    NoIndex,
		length:      length,
	}
}

// Observe registers fn to receive a snapshot after every mutation.
func (m *Machine) Observe(fn func(Snapshot)) {
	m.observer = fn
}

func (m *Machine) State() State  { return m.state }
func (m *Machine) Query() string { return m.query }

func (m *Machine) Highlighted() (int, bool) {
	return m.highlighted, m.highlighted != NoIndex
}

func (m *Machine) Selected() (int, bool) {
	return m.selected, m.selected != NoIndex
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		State:       m.state,
		Query:       m.query,
		Highlighted: m.highlighted,
		Selected:    m.selected,
		Length:      m.length,
	}
}

// setLength updates the number of navigable actions without notifying. A
// highlight past the new end is pulled back to the last action.
func (m *Machine) setLength(n int) {
	if n < 0 {
		n = 0
	}
	m.length = n
	if m.highlighted != NoIndex && m.highlighted >= n {
		m.highlighted = n - 1
		if n == 0 {
			m.highlighted = NoIndex
		}
	}
}

// AdvanceHighlight moves the highlight one action down while submitted. It
// stops at the last action and reports whether the highlight moved.
func (m *Machine) AdvanceHighlight() bool {
	if m.state != Submitted || m.highlighted == NoIndex {
		return false
	}
	if m.highlighted >= m.length-1 {
		return false
	}
	m.highlighted++
	m.notify()
	return true
}

// SubmitOrRun submits the query while editing and confirms the highlighted
// action while submitted. It does nothing once done.
func (m *Machine) SubmitOrRun() State {
	switch m.state {
	case Editing:
		m.state = Submitted
		m.highlighted = 0
		if m.length == 0 {
			m.highlighted = NoIndex
		}
		m.notify()
	case Submitted:
		m.state = Done
		m.selected = m.highlighted
		m.highlighted = NoIndex
		m.notify()
	}
	return m.state
}

// Unsubmit forces the machine back to editing and clears both indices.
func (m *Machine) Unsubmit() {
	m.state = Editing
	m.highlighted = NoIndex
	m.selected = NoIndex
	m.notify()
}

// SetQuery replaces the query text. Any text change returns to editing.
func (m *Machine) SetQuery(text string) {
	m.query = text
	m.Unsubmit()
}

// Reset returns to editing with an empty query.
func (m *Machine) Reset() {
	m.SetQuery("")
}

func (m *Machine) notify() {
	if m.observer != nil {
		m.observer(m.Snapshot())
	}
}
