package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"airops/internal/util"
	"airops/internal/util/logx"
	"airops/internal/viewstate"
)

func (m *Model) buildHelpItems() []helpItem {
	km := m.keymap
	return []helpItem{
		{group: "Navigation", text: "Previous row", key: tea.Key{Type: tea.KeyUp}},
		{group: "Navigation", text: "Next row", key: tea.Key{Type: tea.KeyDown}},
		{group: "Navigation", text: "Go to top", key: km.Top},
		{group: "Navigation", text: "Go to bottom", key: km.Bottom},
		{group: "Navigation", text: "Next screen", key: km.NextScreen},
		{group: "Navigation", text: "Previous screen", key: km.PrevScreen},

		{group: "Filter", text: "Search", key: km.Search},
		{group: "Filter", text: "Cycle focused select", key: km.CycleFacet},
		{group: "Filter", text: "Focus next select", key: km.NextFacet},
		{group: "Filter", text: "Expression filter", key: km.Expr},
		{group: "Filter", text: "Clear filters", key: km.ClearFilter},

		{group: "Find", text: "Find in rows", key: km.Find},
		{group: "Find", text: "Find next", key: km.FindNext},
		{group: "Find", text: "Find prev", key: km.FindPrev},

		{group: "Records", text: "Open detail", key: km.Detail},
		{group: "Records", text: "Select / unselect row", key: km.Focus},
		{group: "Records", text: "Add record", key: km.Add},
		{group: "Records", text: "Copy row (redacted)", key: km.Copy},

		{group: "Views", text: "Select counts", key: km.Facets},
		{group: "Views", text: "Application logs", key: km.AppLogs},

		{group: "Control", text: "Export view", key: km.Export},
		{group: "Control", text: "Help", key: km.Help},
		{group: "Control", text: "Quit", key: km.Quit},
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.tbl.SetHeight(m.tableHeight())
		m.tbl.SetWidth(msg.Width)
		m.refreshRows()
		m.resizeDetail()
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil
	case seedLoadedMsg:
		m.applySeed(msg)
		m.sess.SetLoading(false)
		m.configure()
		return m, m.startFeed()
	case changeMsg:
		m.applyChange(msg.change)
		m.refreshRows()
		return m, m.waitForFeed()
	case feedErrMsg:
		logx.Warnf("feed: %v", msg.err)
		m.lastMsg = "feed: " + msg.err.Error()
		return m, m.waitForFeed()
	case feedDoneMsg:
		logx.Infof("feed: done, %d changes applied", m.applied)
		m.changes, m.feedErrs = nil, nil
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			logx.Errorf("export: %v", msg.err)
			m.lastMsg = "export failed: " + msg.err.Error()
		} else {
			logx.Infof("export: wrote %d rows to %s", msg.rows, msg.path)
			m.lastMsg = fmt.Sprintf("exported %d rows to %s", msg.rows, msg.path)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.sess.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.sess.View().Mode {
	case viewstate.AddDialogOpen:
		return m.handleAddKey(msg)
	case viewstate.DetailDialogOpen:
		return m.handleDetailKey(msg)
	}
	if m.modalActive {
		return m.handleModalKey(msg)
	}
	if m.inlineMode != inlineNone {
		return m.handleInlineKey(msg)
	}
	if m.sess.Loading() && !keyMatches(msg, m.keymap.Quit) {
		return m, nil
	}

	km := m.keymap
	switch {
	case keyMatches(msg, km.Quit):
		return m, tea.Quit
	case keyMatches(msg, km.Search):
		return m, m.startInline(inlineSearch, &m.search)
	case keyMatches(msg, km.Find):
		return m, m.startInline(inlineFind, &m.find)
	case keyMatches(msg, km.Expr):
		return m, m.startInline(inlineExpr, &m.expr)
	case keyMatches(msg, km.FindNext):
		m.findNext()
		return m, nil
	case keyMatches(msg, km.FindPrev):
		m.findPrev()
		return m, nil
	case keyMatches(msg, km.CycleFacet):
		if f, ok := m.currentFacet(); ok {
			v := m.sess.CycleFilter(f.Field)
			m.lastMsg = fmt.Sprintf("%s: %s", f.Label, labelOrAll(f, v))
			m.refreshRows()
		}
		return m, nil
	case keyMatches(msg, km.NextFacet):
		if n := len(m.sess.Screen().Categorical); n > 0 {
			m.facetIdx = (m.facetIdx + 1) % n
		}
		return m, nil
	case keyMatches(msg, km.ClearFilter):
		m.sess.ClearFilters()
		m.search.SetValue("")
		m.expr.SetValue("")
		m.lastMsg = "filters cleared"
		m.refreshRows()
		return m, nil
	case keyMatches(msg, km.Facets):
		m.openFacetsModal()
		return m, nil
	case keyMatches(msg, km.Add):
		m.sess.OnOpenAddDialog()
		return m, m.openAddForm()
	case keyMatches(msg, km.Detail):
		if r, ok := m.cursorRecord(); ok && m.sess.OnSelectRecord(r.ID) {
			m.resizeDetail()
			m.refreshDetail()
		}
		return m, nil
	case keyMatches(msg, km.Focus):
		if r, ok := m.cursorRecord(); ok {
			if m.sess.View().Selected == r.ID {
				m.sess.OnFocusRecord("")
			} else {
				m.sess.OnFocusRecord(r.ID)
			}
		}
		return m, nil
	case keyMatches(msg, km.NextScreen):
		m.openScreen(m.screenIdx + 1)
		return m, nil
	case keyMatches(msg, km.PrevScreen):
		m.openScreen(m.screenIdx - 1)
		return m, nil
	case keyMatches(msg, km.Top):
		m.tbl.GotoTop()
		return m, nil
	case keyMatches(msg, km.Bottom):
		m.tbl.GotoBottom()
		return m, nil
	case keyMatches(msg, km.Export):
		m.lastMsg = "exporting..."
		return m, m.exportCmd()
	case keyMatches(msg, km.Copy):
		if r, ok := m.cursorRecord(); ok {
			copyToClipboard(util.RedactRecord(r).PrettyJSON())
			m.lastMsg = "copied " + r.ID
		}
		return m, nil
	case keyMatches(msg, km.AppLogs):
		m.openLogsModal()
		return m, nil
	case keyMatches(msg, km.Help):
		m.openHelpModal()
		return m, nil
	}
	if i, ok := tabDigit(msg); ok {
		m.selectTabIndex(i)
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) startInline(mode inlineMode, in *textinput.Model) tea.Cmd {
	m.inlineMode = mode
	in.CursorEnd()
	return in.Focus()
}

// handleInlineKey drives the bottom input line. Search applies on every
// keystroke; find and expression apply on enter.
func (m *Model) handleInlineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var in *textinput.Model
	switch m.inlineMode {
	case inlineSearch:
		in = &m.search
	case inlineFind:
		in = &m.find
	default:
		in = &m.expr
	}
	switch msg.Type {
	case tea.KeyEsc:
		if m.inlineMode == inlineExpr {
			in.SetValue(m.sess.Filter().Expr)
		}
		m.inlineMode = inlineNone
		in.Blur()
		return m, nil
	case tea.KeyEnter:
		switch m.inlineMode {
		case inlineFind:
			m.findTerm = in.Value()
			m.findNext()
		case inlineExpr:
			if err := m.sess.OnExprChange(strings.TrimSpace(in.Value())); err != nil {
				m.lastMsg = "expr: " + err.Error()
			} else {
				m.lastMsg = ""
			}
			m.refreshRows()
		}
		m.inlineMode = inlineNone
		in.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if m.inlineMode == inlineSearch && in.Value() != m.sess.Filter().SearchTerm {
		m.sess.OnSearchChange(in.Value())
		m.refreshRows()
	}
	return m, cmd
}

func (m *Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.sess.OnCloseDialog()
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.focusFormField(m.formIdx + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.focusFormField(m.formIdx - 1)
	case tea.KeyEnter, tea.KeyCtrlS:
		if msg.Type == tea.KeyEnter && m.formIdx < len(m.form)-1 {
			return m, m.focusFormField(m.formIdx + 1)
		}
		m.sess.OnSaveDialog()
		m.form = nil
		m.lastMsg = "form closed; records are not persisted"
		return m, nil
	}
	if len(m.form) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.form[m.formIdx], cmd = m.form[m.formIdx].Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || keyMatches(msg, m.keymap.Quit):
		m.sess.OnCloseDialog()
		return m, nil
	case msg.Type == tea.KeyLeft:
		m.selectTabIndex(m.tabIndex() - 1)
		return m, nil
	case msg.Type == tea.KeyRight:
		m.selectTabIndex(m.tabIndex() + 1)
		return m, nil
	case keyMatches(msg, m.keymap.Copy):
		if r, ok := m.sess.Detail(); ok {
			copyToClipboard(util.RedactRecord(r).PrettyJSON())
			m.lastMsg = "copied " + r.ID
		}
		return m, nil
	}
	if i, ok := tabDigit(msg); ok {
		m.selectTabIndex(i)
		return m, nil
	}
	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalKind == modalHelp {
		switch {
		case msg.Type == tea.KeyUp:
			if m.helpSel > 0 {
				m.helpSel--
			}
			return m, nil
		case msg.Type == tea.KeyDown:
			if m.helpSel+1 < len(m.helpItems) {
				m.helpSel++
			}
			return m, nil
		case msg.Type == tea.KeyEnter:
			m.modalActive = false
			if len(m.helpItems) > 0 {
				return m, keyCmd(m.helpItems[m.helpSel].key)
			}
			return m, nil
		case msg.Type == tea.KeyEsc || keyMatches(msg, m.keymap.Quit) || keyMatches(msg, m.keymap.Help):
			m.modalActive = false
			return m, nil
		}
		return m, nil
	}
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter || keyMatches(msg, m.keymap.Quit) {
		m.modalActive = false
		return m, nil
	}
	if keyMatches(msg, m.keymap.Copy) {
		copyToClipboard(m.modalBody)
		m.lastMsg = "copied to clipboard"
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

// selectTabIndex activates the i-th tab of the screen. Tabs gated on a
// selection stay put until a record is selected.
func (m *Model) selectTabIndex(i int) {
	tabs := m.sess.Screen().Tabs
	if i < 0 || i >= len(tabs) {
		return
	}
	if !m.sess.OnSelectTab(tabs[i].Name) {
		m.lastMsg = tabs[i].Label + ": select a record first (space)"
		return
	}
	m.lastMsg = ""
	m.refreshDetail()
}

func (m *Model) tabIndex() int {
	cur := m.sess.View().Tab
	for i, t := range m.sess.Screen().Tabs {
		if t.Name == cur {
			return i
		}
	}
	return 0
}
