package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airops/internal/filter"
	"airops/internal/model"
	"airops/internal/seed"
	"airops/internal/util/logx"
	"airops/internal/version"
	"airops/internal/viewstate"
)

// Lines around the table: screen bar, filter bar, panel, input and status.
const (
	panelLines  = 6
	chromeLines = 2 + panelLines + 2 + 1
)

func (m *Model) tableHeight() int {
	h := m.termHeight - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) View() string {
	v := m.renderMain()
	dim := func(s string) string { return lipgloss.NewStyle().Faint(true).Render(s) }
	switch m.sess.View().Mode {
	case viewstate.AddDialogOpen:
		return overlay(dim(v), m.renderBox("New "+strings.ToLower(m.sess.Screen().Title)+" record", m.renderAddForm()+"\n[tab]=next field  [enter]=save  [esc]=cancel"))
	case viewstate.DetailDialogOpen:
		return overlay(dim(v), m.renderBox(m.detailTitle(), m.renderTabBar()+"\n\n"+m.detailVP.View()+"\n[1-9/←→]=tab  [c]=copy  [esc]=close"))
	}
	if m.modalActive {
		return overlay(dim(v), m.renderModal())
	}
	return v
}

func (m *Model) renderMain() string {
	parts := []string{m.renderScreenBar(), m.renderFilterBar()}
	switch {
	case m.sess.Loading():
		parts = append(parts, m.styles.Empty.Render(m.spin.View()+" loading records..."), strings.Repeat("\n", max(m.tableHeight()-2, 0)))
	case m.sess.Empty():
		parts = append(parts, m.styles.Empty.Render("no records found"), strings.Repeat("\n", max(m.tableHeight()-2, 0)))
	default:
		parts = append(parts, m.tbl.View())
	}
	parts = append(parts, m.renderPanel(), m.renderInputLine(), m.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderScreenBar() string {
	items := make([]string, 0, len(m.names)+1)
	items = append(items, m.styles.PopupTitle.Render("airops"))
	for i, n := range m.names {
		title := n
		if def, err := seed.Screen(n); err == nil {
			title = def.Title
		}
		if c := m.collections[n]; c != nil {
			title = fmt.Sprintf("%s (%d)", title, c.Len())
		}
		if i == m.screenIdx {
			items = append(items, m.styles.TabActive.Render("["+title+"]"))
		} else {
			items = append(items, m.styles.TabInactive.Render(" "+title+" "))
		}
	}
	return strings.Join(items, " ")
}

func (m *Model) renderFilterBar() string {
	st := m.sess.Filter()
	items := []string{}
	for i, f := range m.sess.Screen().Categorical {
		txt := fmt.Sprintf("%s: %s", f.Label, labelOrAll(f, st.Categorical[f.Field]))
		if i == m.facetIdx%len(m.sess.Screen().Categorical) {
			items = append(items, m.styles.FacetFocus.Render("‹"+txt+"›"))
		} else {
			items = append(items, m.styles.Facet.Render(" "+txt+" "))
		}
	}
	if st.SearchTerm != "" {
		items = append(items, m.styles.Facet.Render(fmt.Sprintf("search: %q", st.SearchTerm)))
	}
	if st.Expr != "" {
		if err := m.sess.ExprError(); err != nil {
			items = append(items, m.styles.Error.Render("expr (ignored): "+st.Expr))
		} else {
			items = append(items, m.styles.Facet.Render("expr: "+st.Expr))
		}
	}
	return strings.Join(items, "  ")
}

// renderTabBar draws the screen's detail tabs; gated tabs are dimmed until
// a record is selected.
func (m *Model) renderTabBar() string {
	cur := m.sess.View().Tab
	items := []string{}
	for i, t := range m.sess.Screen().Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		switch {
		case t.Name == cur:
			items = append(items, m.styles.TabActive.Render("["+label+"]"))
		case !m.sess.TabEnabled(t.Name):
			items = append(items, m.styles.TabDisabled.Render(" "+label+" "))
		default:
			items = append(items, m.styles.TabInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(items, " ")
}

// renderPanel shows the selected record in the active tab.
func (m *Model) renderPanel() string {
	w := m.termWidth
	if w <= 0 {
		w = 80
	}
	body := m.styles.Help.Render("no record selected  [space]=select row  [enter]=open")
	if r, ok := m.sess.Selected(); ok {
		t, _ := m.sess.Screen().Tab(m.sess.View().Tab)
		items := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			items = append(items, m.styles.JSONKey.Render(m.fieldTitle(f)+":")+" "+m.styledValue(r, f))
		}
		body = m.styles.Base.Render(r.ID) + "  " + strings.Join(items, "   ")
	}
	content := m.renderTabBar() + "\n" + lipgloss.NewStyle().Width(w).MaxHeight(panelLines-2).Render(body)
	return m.styles.Panel.Width(w).Height(panelLines - 1).Render(content)
}

func (m *Model) renderInputLine() string {
	switch m.inlineMode {
	case inlineSearch:
		return m.search.View() + m.styles.Help.Render("    [enter/esc]=done")
	case inlineFind:
		return m.find.View() + m.styles.Help.Render("    [enter]=find [esc]=cancel")
	case inlineExpr:
		return m.expr.View() + m.styles.Help.Render("    [enter]=apply [esc]=cancel")
	}
	if m.lastMsg != "" {
		return m.lastMsg
	}
	return " "
}

func (m *Model) renderStatus() string {
	cur, total := 0, len(m.rows)
	if c := m.tbl.Cursor(); c >= 0 && total > 0 {
		cur = c + 1
	}
	feed := "off"
	if m.cfg.FeedPath != "" {
		feed = fmt.Sprintf("%d changes", m.applied)
		if m.cfg.Follow {
			feed += " (following)"
		}
	}
	status := fmt.Sprintf("%s | row:%d/%d of %d | mode:%s | feed:%s | [?]=help | %s",
		m.sess.Screen().Title, cur, total, m.sess.Collection().Len(),
		m.sess.View().Mode, feed, version.String())
	if m.termWidth > 0 {
		status = truncateRunes(status, m.termWidth)
	}
	return m.styles.Status.Render(status)
}

func (m *Model) detailTitle() string {
	r, ok := m.sess.Detail()
	if !ok {
		return m.sess.Screen().Title
	}
	return fmt.Sprintf("%s · %s", m.sess.Screen().Title, r.ID)
}

// refreshDetail re-renders the detail viewport for the open dialog.
func (m *Model) refreshDetail() {
	r, ok := m.sess.Detail()
	if !ok {
		return
	}
	t, _ := m.sess.Screen().Tab(m.sess.View().Tab)
	if len(t.Fields) == 0 {
		m.detailVP.SetContent(colorizeFields(r.Fields, m.styles))
		return
	}
	labelW := 0
	for _, f := range t.Fields {
		if w := runeLen(m.fieldTitle(f)); w > labelW {
			labelW = w
		}
	}
	lines := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		key := m.styles.JSONKey.Render(padRight(m.fieldTitle(f), labelW))
		v, ok := r.Get(f)
		switch v.(type) {
		case []any, map[string]any:
			var b strings.Builder
			renderJSON(&b, v, m.styles, 0)
			lines = append(lines, key+"  "+b.String())
		default:
			if !ok {
				lines = append(lines, key+"  "+m.styles.JSONNull.Render("-"))
				continue
			}
			lines = append(lines, key+"  "+m.styledValue(r, f))
		}
	}
	m.detailVP.SetContent(strings.Join(lines, "\n"))
	m.detailVP.GotoTop()
}

func (m *Model) resizeDetail() {
	w, h := m.termWidth-14, m.termHeight-12
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.detailVP = viewport.New(w, h)
	m.refreshDetail()
}

// fieldTitle prefers the column title, then the facet label, then the raw
// field name.
func (m *Model) fieldTitle(field string) string {
	def := m.sess.Screen()
	for _, c := range def.Columns {
		if c.Field == field {
			return c.Title
		}
	}
	if f, ok := def.Facet(field); ok {
		return f.Label
	}
	return field
}

func (m *Model) styledValue(r model.Record, field string) string {
	cell := m.sess.Screen().Cell(r, field)
	raw, _ := r.Text(field)
	if st, ok := m.styles.Value[raw]; ok {
		return st.Render(cell)
	}
	return cell
}

func (m *Model) openAddForm() tea.Cmd {
	fields := m.sess.Screen().AddFields
	m.form = make([]textinput.Model, len(fields))
	labelW := 0
	for _, f := range fields {
		if w := runeLen(m.fieldTitle(f)); w > labelW {
			labelW = w
		}
	}
	for i, f := range fields {
		in := newInput(padRight(m.fieldTitle(f), labelW)+" ", "")
		if fc, ok := m.sess.Screen().Facet(f); ok {
			in.Placeholder = strings.Join(fc.Vocabulary.Values(), "|")
		}
		m.form[i] = in
	}
	m.formIdx = 0
	return m.focusFormField(0)
}

func (m *Model) focusFormField(i int) tea.Cmd {
	if len(m.form) == 0 {
		return nil
	}
	i = ((i % len(m.form)) + len(m.form)) % len(m.form)
	m.form[m.formIdx].Blur()
	m.formIdx = i
	return m.form[i].Focus()
}

func (m *Model) renderAddForm() string {
	lines := make([]string, 0, len(m.form)+1)
	for _, in := range m.form {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderBox(title, content string) string {
	boxW := m.termWidth - 6
	if boxW < 20 {
		boxW = 20
	}
	body := m.styles.PopupBox.Width(boxW).Render(m.styles.PopupTitle.Render(title) + "\n" + content)
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderHelp() string {
	if len(m.helpItems) == 0 {
		m.helpItems = m.buildHelpItems()
	}
	if m.helpSel >= len(m.helpItems) {
		m.helpSel = len(m.helpItems) - 1
	}
	if m.helpSel < 0 {
		m.helpSel = 0
	}
	lines := []string{"Shortcuts:"}
	group := ""
	selLine := 0
	for i, it := range m.helpItems {
		if it.group != group {
			group = it.group
			lines = append(lines, "", group+":")
		}
		prefix := "  "
		if i == m.helpSel {
			prefix = "> "
			selLine = len(lines)
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, keyLabel(it.key), it.text))
	}
	lines = append(lines, "", "[1-9] detail tab   [ctrl+s] save add form")
	// Keep the selection inside the viewport.
	if h := m.modalVP.Height; h > 0 {
		if selLine < m.modalVP.YOffset+1 {
			m.modalVP.YOffset = max(selLine-1, 0)
		} else if selLine >= m.modalVP.YOffset+h-1 {
			m.modalVP.YOffset = max(selLine-h+2, 0)
		}
	}
	return m.styles.Help.Render(strings.Join(lines, "\n"))
}

func (m *Model) openHelpModal() {
	m.modalActive = true
	m.modalKind = modalHelp
	m.modalTitle = "Help"
	m.helpItems = m.buildHelpItems()
	m.helpSel = 0
	m.modalBody = m.renderHelp()
	m.resizeModal()
}

func (m *Model) openFacetsModal() {
	m.modalActive = true
	m.modalKind = modalFacets
	m.modalTitle = "Counts: " + m.sess.Screen().Title
	m.modalBody = renderFacetCounts(m.sess.Screen(), m.sess.Facets(), m.sess.Filter(), m.termWidth-14)
	m.resizeModal()
}

func (m *Model) openLogsModal() {
	m.modalActive = true
	m.modalKind = modalLogs
	m.modalTitle = "Application logs"
	m.modalBody = strings.Join(logx.Lines(), "\n")
	m.resizeModal()
	m.modalVP.GotoBottom()
}

func (m *Model) resizeModal() {
	w, h := m.termWidth-6, m.termHeight-6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	var content string
	switch m.modalKind {
	case modalHelp:
		m.modalVP.SetContent(m.renderHelp())
		content = m.modalVP.View() + "\n[esc]=close  [enter]=run"
	case modalLogs:
		header := m.styles.Help.Render(fmt.Sprintf("screen: %s  records: %d  visible: %d  feed changes: %d",
			m.currentName(), m.sess.Collection().Len(), len(m.rows), m.applied))
		content = header + "\n" + m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	default:
		content = m.modalVP.View() + "\n[esc/enter]=close  [c]=copy"
	}
	return m.renderBox(m.modalTitle, content)
}

func labelOrAll(f model.Facet, value string) string {
	if value == "" || value == filter.All {
		return "all"
	}
	return f.Vocabulary.Label(value)
}
