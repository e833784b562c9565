package screen

import (
	"testing"

	"airops/internal/filter"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/seed"
	"airops/internal/viewstate"
)

func newCrew(t *testing.T) *Session {
	t.Helper()
	def, err := seed.Screen("crew")
	if err != nil {
		t.Fatalf("Screen: %v", err)
	}
	rs, err := seed.Records("crew")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	return New(def, model.NewCollection(rs))
}

func visibleIDs(s *Session) []string {
	var out []string
	for _, r := range s.Visible() {
		out = append(out, r.ID)
	}
	return out
}

func TestNew_Defaults(t *testing.T) {
	s := newCrew(t)
	if !s.Filter().IsEmpty() {
		t.Fatalf("initial filter not empty: %+v", s.Filter())
	}
	v := s.View()
	if v.Mode != viewstate.Idle || v.Tab != "profile" {
		t.Fatalf("initial view = %+v", v)
	}
	if got := len(s.Visible()); got != s.Collection().Len() {
		t.Fatalf("Visible = %d records, want all %d", got, s.Collection().Len())
	}
}

func TestSearchAndFilterCallbacks(t *testing.T) {
	s := newCrew(t)
	s.OnSearchChange("mar")
	if got := visibleIDs(s); len(got) != 2 || got[0] != "2" || got[1] != "4" {
		t.Fatalf("search mar = %v", got)
	}
	if !s.OnFilterChange("role", "copilot") {
		t.Fatalf("OnFilterChange(role, copilot) = false")
	}
	if got := visibleIDs(s); len(got) != 1 || got[0] != "2" {
		t.Fatalf("mar + copilot = %v", got)
	}
	s.OnSearchChange("")
	s.OnFilterChange("role", filter.All)
	if got := len(visibleIDs(s)); got != s.Collection().Len() {
		t.Fatalf("after reset visible = %d", got)
	}
}

func TestOnFilterChange_RejectsUnknown(t *testing.T) {
	s := newCrew(t)
	if s.OnFilterChange("base", "GRU") {
		t.Fatalf("accepted undeclared field")
	}
	if s.OnFilterChange("role", "Pilot") {
		t.Fatalf("accepted value outside vocabulary")
	}
	if !s.Filter().IsEmpty() {
		t.Fatalf("rejected change altered the state")
	}
}

func TestEmptyResult(t *testing.T) {
	s := newCrew(t)
	s.OnSearchChange("nobody-by-this-name")
	if !s.Empty() {
		t.Fatalf("Empty() = false")
	}
	if s.View().Mode != viewstate.Idle {
		t.Fatalf("empty result changed view state")
	}
}

func TestExprChange(t *testing.T) {
	s := newCrew(t)
	if err := s.OnExprChange("flightHours >= 10000"); err != nil {
		t.Fatalf("OnExprChange: %v", err)
	}
	if got := visibleIDs(s); len(got) != 2 || got[0] != "1" || got[1] != "7" {
		t.Fatalf("flightHours >= 10000 = %v", got)
	}
	if err := s.OnExprChange("flightHours >="); err == nil {
		t.Fatalf("bad expression accepted")
	}
	if s.ExprError() == nil || s.Filter().Expr != "flightHours >=" {
		t.Fatalf("bad expression not kept for display")
	}
	if got := len(visibleIDs(s)); got != s.Collection().Len() {
		t.Fatalf("bad expression filtered rows: %d", got)
	}
	s.ClearFilters()
	if s.ExprError() != nil || !s.Filter().IsEmpty() {
		t.Fatalf("ClearFilters left %+v / %v", s.Filter(), s.ExprError())
	}
}

func TestCycleFilter(t *testing.T) {
	s := newCrew(t)
	want := []string{"pilot", "copilot", "attendant", "engineer", filter.All}
	for _, w := range want {
		if got := s.CycleFilter("role"); got != w {
			t.Fatalf("CycleFilter = %q, want %q", got, w)
		}
	}
	if got := s.CycleFilter("base"); got != "" {
		t.Fatalf("CycleFilter(base) = %q", got)
	}
}

func TestDialogFlow(t *testing.T) {
	s := newCrew(t)
	s.OnOpenAddDialog()
	if s.View().Mode != viewstate.AddDialogOpen {
		t.Fatalf("mode = %s", s.View().Mode)
	}
	if !s.OnSelectRecord("2") {
		t.Fatalf("OnSelectRecord(2) = false")
	}
	r, ok := s.Detail()
	if !ok || r.ID != "2" {
		t.Fatalf("Detail = %+v, %v", r, ok)
	}
	s.OnCloseDialog()
	if _, ok := s.Detail(); ok || s.View().Mode != viewstate.Idle {
		t.Fatalf("dialog still open after close")
	}
	if sel, ok := s.Selected(); !ok || sel.ID != "2" {
		t.Fatalf("selection lost on close: %+v", sel)
	}
	if s.OnSelectRecord("999") {
		t.Fatalf("selected unknown record")
	}
	if s.View().Mode != viewstate.Idle {
		t.Fatalf("unknown select left idle")
	}
}

func TestSelectRecordHiddenByFilter(t *testing.T) {
	s := newCrew(t)
	s.OnFilterChange("role", "attendant")
	// Existence is checked against the collection, not the visible rows.
	if !s.OnSelectRecord("1") {
		t.Fatalf("OnSelectRecord of filtered-out record = false")
	}
}

func TestApply_RemoveClosesDialog(t *testing.T) {
	s := newCrew(t)
	s.OnSelectRecord("3")
	s.OnSelectTab("schedule")

	s.Apply(ingest.Change{Screen: "crew", Op: ingest.OpPut, Record: model.Record{ID: "3", Fields: map[string]any{"name": "Ana Costa", "status": "vacation"}}})
	r, ok := s.Detail()
	if !ok || r.Fields["status"] != "vacation" {
		t.Fatalf("update not visible in detail: %+v", r)
	}

	s.Apply(ingest.Change{Screen: "crew", Op: ingest.OpRemove, Record: model.Record{ID: "3"}})
	v := s.View()
	if v.Mode != viewstate.Idle || v.RecordID != "" || v.Selected != "" {
		t.Fatalf("view after removal = %+v", v)
	}
	if v.Tab != "profile" {
		t.Fatalf("Tab = %q, want fallback to profile", v.Tab)
	}
	if s.Collection().Has("3") {
		t.Fatalf("record 3 still present")
	}
}

func TestApply_PutAppends(t *testing.T) {
	s := newCrew(t)
	n := s.Collection().Len()
	s.Apply(ingest.Change{Op: ingest.OpPut, Record: model.Record{ID: "99", Fields: map[string]any{"name": "Nova Pessoa", "role": "pilot"}}})
	got := visibleIDs(s)
	if len(got) != n+1 || got[len(got)-1] != "99" {
		t.Fatalf("visible after put = %v", got)
	}
}

func TestFacetsFollowFilters(t *testing.T) {
	s := newCrew(t)
	s.OnFilterChange("status", "active")
	for _, fc := range s.Facets() {
		if fc.Field == "role" && fc.Counts["pilot"] != 2 {
			t.Fatalf("active pilots = %d, want 2", fc.Counts["pilot"])
		}
	}
}

func TestConfigure(t *testing.T) {
	s := newCrew(t)
	if err := s.Configure("mar", map[string]string{"role": "pilot"}, ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := visibleIDs(s); len(got) != 1 || got[0] != "4" {
		t.Fatalf("mar + pilot = %v", got)
	}
	if err := s.Configure("", map[string]string{"role": "captain"}, ""); err == nil {
		t.Fatalf("Configure accepted value outside vocabulary")
	}
	if err := s.Configure("", nil, "flightHours >"); err == nil {
		t.Fatalf("Configure accepted bad expression")
	}
}
