package ui

import (
	"airops/internal/filter"
	"airops/internal/model"
)

type stepFunc func(def model.Screen, rows []model.Record, from int, term string) int

// findNext moves the cursor to the next visible row containing the find
// term. Unlike search, find never hides rows.
func (m *Model) findNext() { m.findStep(filter.Next) }

func (m *Model) findPrev() { m.findStep(filter.Prev) }

func (m *Model) findStep(step stepFunc) {
	if m.findTerm == "" {
		return
	}
	idx := step(m.sess.Screen(), m.rows, m.tbl.Cursor(), m.findTerm)
	if idx < 0 {
		m.lastMsg = "no match for " + m.findTerm
		return
	}
	m.tbl.SetCursor(idx)
	m.lastMsg = ""
}
