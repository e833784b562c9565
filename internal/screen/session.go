// Package screen binds one screen's collection, filter state and view state
// together and exposes the callbacks a rendering layer drives.
//
// Data flows one way: collection -> filter engine -> visible rows. User
// actions only touch the filter state and the view-state machine. A Session
// belongs to a single screen; it is created with defaults when the screen
// opens and dropped when it closes.
package screen

import (
	"fmt"
	"sort"

	"airops/internal/filter"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/util/logx"
	"airops/internal/viewstate"
)

// Session is the live state of one screen.
type Session struct {
	def     model.Screen
	records *model.Collection
	state   filter.State
	engine  *filter.Engine
	view    *viewstate.Machine
	exprErr error
	loading bool
}

// New opens a session over records with an empty filter and no dialog.
func New(def model.Screen, records *model.Collection) *Session {
	if records == nil {
		records = model.NewCollection(nil)
	}
	s := &Session{def: def, records: records, state: filter.NewState(def)}
	tabs := make([]viewstate.TabSpec, len(def.Tabs))
	for i, t := range def.Tabs {
		tabs[i] = viewstate.TabSpec{Name: t.Name, RequiresSelection: t.RequiresSelection}
	}
	s.view = viewstate.NewMachine(viewstate.Env{
		Tabs:       tabs,
		DefaultTab: def.DefaultTab(),
		Exists:     records.Has,
	})
	s.rebuild()
	return s
}

func (s *Session) Screen() model.Screen          { return s.def }
func (s *Session) Collection() *model.Collection { return s.records }
func (s *Session) Filter() filter.State          { return s.state.Clone() }
func (s *Session) View() viewstate.State         { return s.view.State() }
func (s *Session) ExprError() error              { return s.exprErr }
func (s *Session) TabEnabled(name string) bool   { return s.view.TabEnabled(name) }
func (s *Session) Loading() bool                 { return s.loading }
func (s *Session) SetLoading(on bool)            { s.loading = on }

// rebuild recompiles the engine after the filter state changed. A bad
// expression is kept for display but not applied.
func (s *Session) rebuild() {
	e, err := filter.NewEngine(s.def, s.state)
	if err != nil {
		s.exprErr = err
		st := s.state.Clone()
		st.Expr = ""
		e, _ = filter.NewEngine(s.def, st)
	} else {
		s.exprErr = nil
	}
	s.engine = e
}

// OnSearchChange sets the search term verbatim.
func (s *Session) OnSearchChange(value string) {
	s.state.SearchTerm = value
	s.rebuild()
}

// OnFilterChange sets one categorical select. Undeclared fields and values
// outside the field's vocabulary are ignored.
func (s *Session) OnFilterChange(field, value string) bool {
	f, ok := s.def.Facet(field)
	if !ok {
		logx.Debugf("screen %s: ignoring filter on undeclared field %q", s.def.Name, field)
		return false
	}
	if value != filter.All && !f.Vocabulary.Contains(value) {
		logx.Debugf("screen %s: ignoring %s=%q outside vocabulary", s.def.Name, field, value)
		return false
	}
	s.state.Categorical[field] = value
	s.rebuild()
	return true
}

// OnExprChange sets the advanced expression filter. The expression is kept
// even when it does not compile; the returned error explains why it is not
// applied.
func (s *Session) OnExprChange(expr string) error {
	s.state.Expr = expr
	s.rebuild()
	return s.exprErr
}

// ClearFilters resets search, selects and expression to their defaults.
func (s *Session) ClearFilters() {
	s.state = filter.NewState(s.def)
	s.rebuild()
}

// Configure applies a starting search, selects and expression, typically
// taken from command-line flags. It stops at the first rejected select or
// expression that does not compile.
func (s *Session) Configure(search string, selects map[string]string, expr string) error {
	s.OnSearchChange(search)
	fields := make([]string, 0, len(selects))
	for f := range selects {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		if !s.OnFilterChange(f, selects[f]) {
			return fmt.Errorf("filter %s=%q: not a filter of screen %s", f, selects[f], s.def.Name)
		}
	}
	if expr != "" {
		if err := s.OnExprChange(expr); err != nil {
			return fmt.Errorf("expr %q: %w", expr, err)
		}
	}
	return nil
}

// CycleFilter advances a select through "all" and its vocabulary and
// returns the new value.
func (s *Session) CycleFilter(field string) string {
	f, ok := s.def.Facet(field)
	if !ok {
		return ""
	}
	values := append([]string{filter.All}, f.Vocabulary.Values()...)
	cur := s.state.Categorical[field]
	next := values[0]
	for i, v := range values {
		if v == cur {
			next = values[(i+1)%len(values)]
			break
		}
	}
	s.OnFilterChange(field, next)
	return next
}

func (s *Session) OnOpenAddDialog() { s.view.OnOpenAddDialog() }

// OnSelectRecord opens the detail dialog for id when it exists.
func (s *Session) OnSelectRecord(id string) bool { return s.view.OnSelectRecord(id) }

// OnFocusRecord marks id as the selected record without opening a dialog.
func (s *Session) OnFocusRecord(id string) { s.view.OnFocusRecord(id) }

func (s *Session) OnCloseDialog() { s.view.OnCloseDialog() }

// OnSaveDialog closes the add form. There is no backend, so nothing is kept.
func (s *Session) OnSaveDialog() {
	logx.Infof("screen %s: add form submitted (not persisted)", s.def.Name)
	s.view.OnSaveDialog()
}

func (s *Session) OnSelectTab(name string) bool { return s.view.OnSelectTab(name) }

// Visible is the filtered collection in collection order.
func (s *Session) Visible() []model.Record {
	return s.engine.Apply(s.records.Records())
}

// Empty reports the "no records found" state.
func (s *Session) Empty() bool { return len(s.Visible()) == 0 }

// Facets returns per-value counts for every select.
func (s *Session) Facets() []filter.FacetCount {
	return s.engine.Facets(s.records.Records())
}

// Detail returns the record bound to the open detail dialog.
func (s *Session) Detail() (model.Record, bool) {
	st := s.view.State()
	if st.Mode != viewstate.DetailDialogOpen {
		return model.Record{}, false
	}
	return s.records.Get(st.RecordID)
}

// Selected returns the record selected for inspection, if any.
func (s *Session) Selected() (model.Record, bool) {
	id := s.view.State().Selected
	if id == "" {
		return model.Record{}, false
	}
	return s.records.Get(id)
}

// Apply folds a feed change into the collection and closes any dialog whose
// record disappeared.
func (s *Session) Apply(ch ingest.Change) {
	switch ch.Op {
	case ingest.OpRemove:
		if s.records.Remove(ch.Record.ID) {
			logx.Infof("screen %s: removed %s", s.def.Name, ch.Record.ID)
		}
	default:
		s.records.Put(ch.Record)
	}
	if s.view.Reconcile() {
		logx.Infof("screen %s: closed view bound to removed record", s.def.Name)
	}
}
