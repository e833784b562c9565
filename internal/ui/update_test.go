package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"airops/internal/config"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/seed"
	"airops/internal/viewstate"
)

func newTestModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{Screen: "crew", Theme: config.ThemeDark}
	}
	m := initialModel(context.Background(), cfg)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m.Update(seedLoadedMsg{set: seed.Builtin()})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func rowIDs(m *Model) []string {
	ids := make([]string, len(m.rows))
	for i, r := range m.rows {
		ids[i] = r.ID
	}
	return ids
}

func TestLoadingUntilSeed(t *testing.T) {
	m := initialModel(context.Background(), &config.Config{Screen: "crew", Theme: config.ThemeDark})
	if !m.sess.Loading() {
		t.Fatalf("Loading() = false before seed")
	}
	if !strings.Contains(m.View(), "loading records") {
		t.Fatalf("loading view missing spinner text")
	}
	m.Update(seedLoadedMsg{set: seed.Builtin()})
	if m.sess.Loading() || len(m.rows) != 8 {
		t.Fatalf("after seed: loading=%v rows=%d", m.sess.Loading(), len(m.rows))
	}
}

func TestSearchAppliesPerKeystroke(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "/", "m", "a")
	if got := m.sess.Filter().SearchTerm; got != "ma" {
		t.Fatalf("SearchTerm = %q, want %q", got, "ma")
	}
	press(m, "r")
	if got := rowIDs(m); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Fatalf("rows for mar = %v", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.inlineMode != inlineNone || m.sess.Filter().SearchTerm != "mar" {
		t.Fatalf("esc should leave input and keep the term")
	}
}

func TestEmptyResultView(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "/", "z", "z", "z")
	if !m.sess.Empty() || !strings.Contains(m.View(), "no records found") {
		t.Fatalf("empty view not rendered")
	}
}

func TestCycleFacetAndClear(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "f")
	if got := rowIDs(m); len(got) != 3 || got[0] != "1" || got[1] != "4" || got[2] != "7" {
		t.Fatalf("pilots = %v", got)
	}
	press(m, "v", "f")
	if got := m.sess.Filter().Categorical["status"]; got != "active" {
		t.Fatalf("status select = %q, want active", got)
	}
	press(m, "F")
	if !m.sess.Filter().IsEmpty() || len(m.rows) != 8 {
		t.Fatalf("clear filters left %+v", m.sess.Filter())
	}
}

func TestExpressionInput(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "=")
	for _, r := range "flightHours >= 10000" {
		press(m, string(r))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := rowIDs(m); len(got) != 2 || got[0] != "1" || got[1] != "7" {
		t.Fatalf("rows = %v", got)
	}
}

func TestDetailDialogAndTabs(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	r, ok := m.sess.Detail()
	if !ok || r.ID != "1" {
		t.Fatalf("detail = %+v, %v", r, ok)
	}
	press(m, "3")
	if got := m.sess.View().Tab; got != "schedule" {
		t.Fatalf("Tab = %q, want schedule", got)
	}
	if !strings.Contains(m.detailVP.View(), "12450") {
		t.Fatalf("schedule tab does not show flight hours")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	v := m.sess.View()
	if v.Mode != viewstate.Idle || v.Selected != "1" {
		t.Fatalf("after esc view = %+v", v)
	}
}

func TestGatedTabNeedsSelection(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "2")
	if got := m.sess.View().Tab; got != "profile" {
		t.Fatalf("Tab = %q, want profile", got)
	}
	if !strings.Contains(m.lastMsg, "select a record first") {
		t.Fatalf("lastMsg = %q", m.lastMsg)
	}
	press(m, " ", "2")
	if got := m.sess.View().Tab; got != "qualifications" {
		t.Fatalf("Tab = %q after selecting a row", got)
	}
}

func TestAddDialogSaveIsNoop(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "a")
	if m.sess.View().Mode != viewstate.AddDialogOpen || len(m.form) != 3 {
		t.Fatalf("add dialog not open: mode=%s form=%d", m.sess.View().Mode, len(m.form))
	}
	press(m, "X", "q")
	if got := m.form[0].Value(); got != "Xq" {
		t.Fatalf("form[0] = %q", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.formIdx != 1 {
		t.Fatalf("enter did not advance: formIdx = %d", m.formIdx)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.sess.View().Mode != viewstate.Idle || m.sess.Collection().Len() != 8 {
		t.Fatalf("save changed data or left dialog open")
	}
}

func TestDialogsAreExclusive(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "a")
	// Keys go to the form while it is open.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.sess.View().Mode != viewstate.DetailDialogOpen {
		t.Fatalf("mode = %s", m.sess.View().Mode)
	}
	press(m, "a")
	if m.sess.View().Mode != viewstate.DetailDialogOpen {
		t.Fatalf("add opened on top of detail")
	}
}

func TestFeedRemovalClosesDetail(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(changeMsg{change: ingest.Change{Screen: "crew", Op: ingest.OpRemove, Record: model.Record{ID: "1"}}})
	v := m.sess.View()
	if v.Mode != viewstate.Idle || v.RecordID != "" {
		t.Fatalf("view after removal = %+v", v)
	}
	if len(m.rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(m.rows))
	}
}

func TestFeedChangeForOtherScreen(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(changeMsg{change: ingest.Change{Screen: "aircraft", Op: ingest.OpRemove, Record: model.Record{ID: "AC003"}}})
	if got := m.collections["aircraft"].Len(); got != 4 {
		t.Fatalf("aircraft = %d, want 4", got)
	}
	if len(m.rows) != 8 {
		t.Fatalf("crew rows changed: %d", len(m.rows))
	}
}

func TestScreenSwitchStartsFreshSession(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, "/", "m")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	press(m, " ")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.currentName() != "aircraft" {
		t.Fatalf("screen = %s", m.currentName())
	}
	if !m.sess.Filter().IsEmpty() || m.sess.View().Selected != "" || m.sess.View().Tab != "summary" {
		t.Fatalf("new session not fresh: %+v %+v", m.sess.Filter(), m.sess.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.currentName() != "crew" || len(m.rows) != 8 {
		t.Fatalf("back on %s with %d rows", m.currentName(), len(m.rows))
	}
}

func TestStartupFilters(t *testing.T) {
	m := newTestModel(t, &config.Config{
		Screen:  "crew",
		Theme:   config.ThemeLight,
		Search:  "mar",
		Filters: map[string]string{"role": "pilot"},
	})
	if got := rowIDs(m); len(got) != 1 || got[0] != "4" {
		t.Fatalf("rows = %v", got)
	}
	if m.search.Value() != "mar" {
		t.Fatalf("search input = %q", m.search.Value())
	}
}

func TestFindMovesCursor(t *testing.T) {
	m := newTestModel(t, nil)
	press(m, ":", "c", "a", "r")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if r, _ := m.cursorRecord(); r.ID != "7" {
		t.Fatalf("cursor on %s, want 7 (Carlos)", r.ID)
	}
	if len(m.rows) != 8 {
		t.Fatalf("find filtered rows")
	}
}

func TestExportCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "crew.csv")
	m := newTestModel(t, &config.Config{Screen: "crew", Theme: config.ThemeDark, ExportOut: out})
	press(m, "f")
	msg := m.exportCmd()()
	done, ok := msg.(exportDoneMsg)
	if !ok || done.err != nil || done.rows != 3 {
		t.Fatalf("export = %+v", msg)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Carlos Mendes") || strings.Contains(string(data), "Maria Santos") {
		t.Fatalf("export content = %s", data)
	}
}

func TestFeedFromFile(t *testing.T) {
	feed := filepath.Join(t.TempDir(), "feed.jsonl")
	body := `{"screen":"crew","id":"9","name":"Nova Pessoa","role":"pilot","status":"active"}
{"screen":"crew","op":"remove","id":"3"}
`
	if err := os.WriteFile(feed, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := &config.Config{Screen: "crew", Theme: config.ThemeDark, FeedPath: feed}
	m := initialModel(context.Background(), cfg)
	_, cmd := m.Update(seedLoadedMsg{set: seed.Builtin()})
	for cmd != nil {
		msg := cmd()
		if _, done := msg.(feedDoneMsg); done {
			m.Update(msg)
			break
		}
		_, cmd = m.Update(msg)
	}
	m.stopFeed()
	if m.applied != 2 || m.sess.Collection().Has("3") || !m.sess.Collection().Has("9") {
		t.Fatalf("applied=%d has3=%v has9=%v", m.applied, m.sess.Collection().Has("3"), m.sess.Collection().Has("9"))
	}
}
