package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"airops/internal/model"
	"airops/internal/screen"
	"airops/internal/seed"
	"airops/internal/util/logx"
)

func (m *Model) currentName() string { return m.names[m.screenIdx] }

// openScreen drops the current session and opens a fresh one for the
// screen at idx, with default filters and no dialog.
func (m *Model) openScreen(idx int) {
	n := len(m.names)
	idx = ((idx % n) + n) % n
	loading := m.sess != nil && m.sess.Loading()

	m.screenIdx = idx
	name := m.names[idx]
	def, err := seed.Screen(name)
	if err != nil {
		logx.Errorf("ui: %v", err)
		return
	}
	m.sess = screen.New(def, m.collections[name])
	m.sess.SetLoading(loading)

	m.inlineMode = inlineNone
	m.facetIdx = 0
	m.findTerm = ""
	for _, in := range []*textinput.Model{&m.search, &m.find, &m.expr} {
		in.SetValue("")
		in.Blur()
	}
	m.form = nil
	// Rows of the previous screen may be wider than the new columns.
	m.tbl.SetRows(nil)
	m.tbl.SetCursor(0)
	m.refreshRows()
	logx.Debugf("ui: opened screen %s (%d records)", name, m.sess.Collection().Len())
}

// configure applies the startup search, selects and expression once.
func (m *Model) configure() {
	if m.configured {
		return
	}
	m.configured = true
	if err := m.sess.Configure(m.cfg.Search, m.cfg.Filters, m.cfg.Expr); err != nil {
		logx.Warnf("ui: %v", err)
		m.lastMsg = err.Error()
	}
	st := m.sess.Filter()
	m.search.SetValue(st.SearchTerm)
	m.expr.SetValue(st.Expr)
	m.refreshRows()
}

// refreshRows recomputes the visible rows and pushes them to the table.
func (m *Model) refreshRows() {
	def := m.sess.Screen()
	m.rows = m.sess.Visible()
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(columnsFor(def, m.rows, m.termWidth))
	m.tbl.SetRows(rowsFor(def, m.rows))
	switch cur := m.tbl.Cursor(); {
	case cur < 0:
		m.tbl.SetCursor(0)
	case cur >= len(m.rows):
		m.tbl.SetCursor(len(m.rows) - 1)
	}
	m.refreshDetail()
}

func (m *Model) cursorRecord() (model.Record, bool) {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return model.Record{}, false
	}
	return m.rows[idx], true
}

func (m *Model) currentFacet() (model.Facet, bool) {
	facets := m.sess.Screen().Categorical
	if len(facets) == 0 {
		return model.Facet{}, false
	}
	return facets[m.facetIdx%len(facets)], true
}
