// Package viewstate tracks which dialog of a screen is open, which record it
// is bound to and which detail tab is active.
//
// Dialogs are mutually exclusive: opening one replaces any other. The active
// tab is orthogonal and survives dialogs opening and closing. All transitions
// go through Reduce, which is pure; Machine is a small stateful wrapper for
// callers that prefer callbacks.
package viewstate

import "fmt"

// Mode is the dialog state of a screen.
type Mode int

const (
	Idle Mode = iota
	AddDialogOpen
	DetailDialogOpen
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case AddDialogOpen:
		return "add"
	case DetailDialogOpen:
		return "detail"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the complete view state of one screen.
type State struct {
	Mode     Mode
	RecordID string // bound record, only set in DetailDialogOpen
	Tab      string
	// Selected is the record chosen for inspection. It gates tabs that
	// require a selection and outlives the detail dialog.
	Selected string
}

// DialogOpen reports whether any dialog is visible.
func (s State) DialogOpen() bool { return s.Mode != Idle }

// TabSpec is what the reducer needs to know about a tab.
type TabSpec struct {
	Name              string
	RequiresSelection bool
}

// Env carries the screen-specific facts transitions depend on.
type Env struct {
	Tabs       []TabSpec
	DefaultTab string
	// Exists reports whether a record id is present in the collection. A nil
	// Exists treats every id as present.
	Exists func(id string) bool
}

func (env Env) exists(id string) bool {
	if id == "" {
		return false
	}
	if env.Exists == nil {
		return true
	}
	return env.Exists(id)
}

func (env Env) tab(name string) (TabSpec, bool) {
	for _, t := range env.Tabs {
		if t.Name == name {
			return t, true
		}
	}
	return TabSpec{}, false
}

// TabEnabled reports whether name can be selected in s.
func (env Env) TabEnabled(s State, name string) bool {
	t, ok := env.tab(name)
	if !ok {
		return false
	}
	return !t.RequiresSelection || s.Selected != ""
}

// Initial is the state a screen starts in.
func Initial(env Env) State {
	return State{Mode: Idle, Tab: env.DefaultTab}
}

// Event is a user action or collection change fed to Reduce.
type Event interface{ event() }

type (
	// OpenAdd shows the creation form.
	OpenAdd struct{}
	// SelectRecord opens the detail dialog bound to ID.
	SelectRecord struct{ ID string }
	// FocusRecord marks ID as selected without opening a dialog.
	FocusRecord struct{ ID string }
	// CloseDialog dismisses whatever dialog is open.
	CloseDialog struct{}
	// SaveDialog closes the add form. Nothing is persisted.
	SaveDialog struct{}
	// SelectTab activates a detail tab.
	SelectTab struct{ Name string }
	// Reconcile rechecks bound ids after the collection changed.
	Reconcile struct{}
)

func (OpenAdd) event()      {}
func (SelectRecord) event() {}
func (FocusRecord) event()  {}
func (CloseDialog) event()  {}
func (SaveDialog) event()   {}
func (SelectTab) event()    {}
func (Reconcile) event()    {}

// Reduce applies ev to s. Invalid events leave the state unchanged.
func Reduce(s State, ev Event, env Env) State {
	switch ev := ev.(type) {
	case OpenAdd:
		s.Mode = AddDialogOpen
		s.RecordID = ""
	case SelectRecord:
		if !env.exists(ev.ID) {
			return s
		}
		s.Mode = DetailDialogOpen
		s.RecordID = ev.ID
		s.Selected = ev.ID
	case FocusRecord:
		if ev.ID == "" {
			s.Selected = ""
			return fallbackTab(s, env)
		}
		if env.exists(ev.ID) {
			s.Selected = ev.ID
		}
	case CloseDialog, SaveDialog:
		s.Mode = Idle
		s.RecordID = ""
	case SelectTab:
		if env.TabEnabled(s, ev.Name) {
			s.Tab = ev.Name
		}
	case Reconcile:
		if s.Mode == DetailDialogOpen && !env.exists(s.RecordID) {
			s.Mode = Idle
			s.RecordID = ""
		}
		if s.Selected != "" && !env.exists(s.Selected) {
			s.Selected = ""
			s = fallbackTab(s, env)
		}
	}
	return s
}

// fallbackTab moves off a tab that the current selection no longer enables.
func fallbackTab(s State, env Env) State {
	if s.Tab != "" && !env.TabEnabled(s, s.Tab) {
		s.Tab = env.DefaultTab
	}
	return s
}
