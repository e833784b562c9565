package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"airops/internal/model"
)

const minColWidth = 4

// columnsFor sizes the screen's columns to the terminal. Declared widths are
// kept when they fit; otherwise the spare width is spread evenly.
func columnsFor(def model.Screen, rows []model.Record, termWidth int) []table.Column {
	cols := make([]table.Column, len(def.Columns))
	total := 0
	for i, c := range def.Columns {
		w := c.Width
		if w <= 0 {
			w = runewidth.StringWidth(c.Title)
			for _, r := range rows {
				if cw := runewidth.StringWidth(def.Cell(r, c.Field)); cw > w {
					w = cw
				}
			}
		}
		if w < minColWidth {
			w = minColWidth
		}
		cols[i] = table.Column{Title: c.Title, Width: w}
		total += w + 1
	}
	if termWidth <= 0 || total <= termWidth || len(cols) == 0 {
		return cols
	}
	// Shrink the widest column until the row fits.
	for total > termWidth {
		widest := 0
		for i := range cols {
			if cols[i].Width > cols[widest].Width {
				widest = i
			}
		}
		if cols[widest].Width <= minColWidth {
			break
		}
		cols[widest].Width--
		total--
	}
	return cols
}

func rowsFor(def model.Screen, records []model.Record) []table.Row {
	out := make([]table.Row, len(records))
	for i, r := range records {
		row := make(table.Row, len(def.Columns))
		for j, c := range def.Columns {
			row[j] = def.Cell(r, c.Field)
		}
		out[i] = row
	}
	return out
}

func truncateRunes(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}
