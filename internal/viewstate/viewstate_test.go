package viewstate

import "testing"

func testEnv(ids ...string) Env {
	present := map[string]bool{}
	for _, id := range ids {
		present[id] = true
	}
	return Env{
		Tabs: []TabSpec{
			{Name: "search"},
			{Name: "details", RequiresSelection: true},
			{Name: "history", RequiresSelection: true},
		},
		DefaultTab: "search",
		Exists:     func(id string) bool { return present[id] },
	}
}

func TestInitial(t *testing.T) {
	s := Initial(testEnv())
	if s.Mode != Idle || s.RecordID != "" || s.Tab != "search" || s.DialogOpen() {
		t.Fatalf("Initial = %+v", s)
	}
}

func TestAddThenSelectIsExclusive(t *testing.T) {
	m := NewMachine(testEnv("1", "2"))
	m.OnOpenAddDialog()
	if got := m.State().Mode; got != AddDialogOpen {
		t.Fatalf("Mode = %s, want add", got)
	}
	if !m.OnSelectRecord("2") {
		t.Fatalf("OnSelectRecord(2) = false")
	}
	s := m.State()
	if s.Mode != DetailDialogOpen || s.RecordID != "2" {
		t.Fatalf("state = %+v, want detail bound to 2", s)
	}
	m.OnOpenAddDialog()
	if s := m.State(); s.Mode != AddDialogOpen || s.RecordID != "" {
		t.Fatalf("state = %+v, want add with no bound record", s)
	}
}

func TestCloseFromAnyDialog(t *testing.T) {
	env := testEnv("1")
	starts := []State{
		{Mode: AddDialogOpen, Tab: "search"},
		{Mode: DetailDialogOpen, RecordID: "1", Selected: "1", Tab: "details"},
		{Mode: Idle, Tab: "search"},
	}
	for _, s := range starts {
		got := Reduce(s, CloseDialog{}, env)
		if got.Mode != Idle || got.RecordID != "" {
			t.Fatalf("Close from %s = %+v, want idle", s.Mode, got)
		}
		if got.Tab != s.Tab {
			t.Fatalf("Close changed tab %q -> %q", s.Tab, got.Tab)
		}
	}
}

func TestSaveIsNoOpClose(t *testing.T) {
	m := NewMachine(testEnv())
	m.OnOpenAddDialog()
	m.OnSaveDialog()
	if s := m.State(); s != Initial(testEnv()) {
		t.Fatalf("after save state = %+v", s)
	}
}

func TestSelectUnknownStaysIdle(t *testing.T) {
	m := NewMachine(testEnv("1"))
	if m.OnSelectRecord("404") {
		t.Fatalf("OnSelectRecord(404) = true")
	}
	if s := m.State(); s.Mode != Idle || s.Selected != "" {
		t.Fatalf("state = %+v, want idle", s)
	}
	if m.OnSelectRecord("") {
		t.Fatalf("OnSelectRecord(\"\") = true")
	}
}

func TestTabGating(t *testing.T) {
	m := NewMachine(testEnv("1"))
	if m.OnSelectTab("details") {
		t.Fatalf("details tab selectable without selection")
	}
	if m.OnSelectTab("nope") {
		t.Fatalf("unknown tab selectable")
	}
	m.OnFocusRecord("1")
	if !m.TabEnabled("details") || !m.OnSelectTab("details") {
		t.Fatalf("details tab disabled after focusing a record")
	}
	// Tabs persist across dialogs.
	m.OnSelectRecord("1")
	m.OnCloseDialog()
	if got := m.State().Tab; got != "details" {
		t.Fatalf("Tab = %q after dialog round trip, want details", got)
	}
	// Clearing the selection moves off a gated tab.
	m.OnFocusRecord("")
	if got := m.State().Tab; got != "search" {
		t.Fatalf("Tab = %q after clearing selection, want search", got)
	}
}

func TestReconcileClosesStaleDetail(t *testing.T) {
	present := map[string]bool{"1": true, "2": true}
	env := testEnv()
	env.Exists = func(id string) bool { return present[id] }
	m := NewMachine(env)
	m.OnSelectRecord("2")
	m.OnSelectTab("history")

	if m.Reconcile() {
		t.Fatalf("Reconcile changed state while record exists")
	}
	delete(present, "2")
	if !m.Reconcile() {
		t.Fatalf("Reconcile reported no change after removal")
	}
	s := m.State()
	if s.Mode != Idle || s.RecordID != "" || s.Selected != "" || s.Tab != "search" {
		t.Fatalf("state after removal = %+v", s)
	}
}

func TestReconcileKeepsAddDialog(t *testing.T) {
	m := NewMachine(testEnv())
	m.OnOpenAddDialog()
	m.Reconcile()
	if m.State().Mode != AddDialogOpen {
		t.Fatalf("Reconcile closed the add dialog")
	}
}

func TestNilExistsAcceptsAnyID(t *testing.T) {
	s := Reduce(Initial(Env{}), SelectRecord{ID: "x"}, Env{})
	if s.Mode != DetailDialogOpen || s.RecordID != "x" {
		t.Fatalf("state = %+v", s)
	}
}

func TestModeString(t *testing.T) {
	cases := map[Mode]string{Idle: "idle", AddDialogOpen: "add", DetailDialogOpen: "detail", Mode(9): "mode(9)"}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
