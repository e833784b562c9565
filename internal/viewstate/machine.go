package viewstate

import "airops/internal/util/logx"

// Machine holds one screen's view state and exposes the UI callbacks.
type Machine struct {
	env   Env
	state State
}

// NewMachine starts in Idle on the default tab.
func NewMachine(env Env) *Machine {
	return &Machine{env: env, state: Initial(env)}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Env returns the environment the machine was built with.
func (m *Machine) Env() Env { return m.env }

// Dispatch applies ev and reports whether the state changed.
func (m *Machine) Dispatch(ev Event) bool {
	next := Reduce(m.state, ev, m.env)
	if next == m.state {
		return false
	}
	logx.Debugf("viewstate: %T %s/%q tab=%q -> %s/%q tab=%q", ev, m.state.Mode, m.state.RecordID, m.state.Tab, next.Mode, next.RecordID, next.Tab)
	m.state = next
	return true
}

func (m *Machine) OnOpenAddDialog() { m.Dispatch(OpenAdd{}) }

// OnSelectRecord opens the detail dialog for id. It returns false and leaves
// the state alone when id is not in the collection.
func (m *Machine) OnSelectRecord(id string) bool {
	m.Dispatch(SelectRecord{ID: id})
	return m.state.Mode == DetailDialogOpen && m.state.RecordID == id
}

func (m *Machine) OnFocusRecord(id string) { m.Dispatch(FocusRecord{ID: id}) }

func (m *Machine) OnCloseDialog() { m.Dispatch(CloseDialog{}) }

func (m *Machine) OnSaveDialog() { m.Dispatch(SaveDialog{}) }

// OnSelectTab returns false when the tab is unknown or still disabled.
func (m *Machine) OnSelectTab(name string) bool {
	m.Dispatch(SelectTab{Name: name})
	return m.state.Tab == name
}

// Reconcile closes dialogs bound to records that no longer exist.
func (m *Machine) Reconcile() bool { return m.Dispatch(Reconcile{}) }

// TabEnabled reports whether name is selectable right now.
func (m *Machine) TabEnabled(name string) bool { return m.env.TabEnabled(m.state, name) }
