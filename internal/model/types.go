package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one row of a screen's collection. Fields hold primitive values
// (string, number, bool, date string) or categorical tags.
type Record struct {
	ID     string         `json:"id" yaml:"id"`
	Fields map[string]any `json:"fields" yaml:"fields"`
}

// Text renders a field as display text. Missing or nil fields report false.
func (r Record) Text(field string) (string, bool) {
	if field == "id" {
		return r.ID, r.ID != ""
	}
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return "", false
	}
	return anyToString(v), true
}

// Get returns the raw value of a field.
func (r Record) Get(field string) (any, bool) {
	if field == "id" {
		return r.ID, r.ID != ""
	}
	v, ok := r.Fields[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// PrettyJSON renders the record for the detail view.
func (r Record) PrettyJSON() string {
	b, _ := json.MarshalIndent(r.Fields, "", "  ")
	return string(b)
}

func anyToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int, int32, int64, uint, uint32, uint64, bool:
		return fmt.Sprint(t)
	case time.Time:
		return t.Format("2006-01-02 15:04")
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// Category is one allowed value of a closed categorical field.
type Category struct {
	Value string
	Label string
}

// Vocabulary is the ordered, closed set of values a categorical field may take.
type Vocabulary []Category

// Values lists the raw values in declaration order.
func (v Vocabulary) Values() []string {
	out := make([]string, len(v))
	for i, c := range v {
		out[i] = c.Value
	}
	return out
}

// Contains reports whether value belongs to the vocabulary (case-sensitive).
func (v Vocabulary) Contains(value string) bool {
	for _, c := range v {
		if c.Value == value {
			return true
		}
	}
	return false
}

// Label maps a raw value to its display label, falling back to the value itself.
func (v Vocabulary) Label(value string) string {
	for _, c := range v {
		if c.Value == value {
			if c.Label == "" {
				return c.Value
			}
			return c.Label
		}
	}
	return value
}

// Facet declares a categorical select on a screen.
type Facet struct {
	Field      string
	Label      string
	Vocabulary Vocabulary
}

// Column is a table column of a screen.
type Column struct {
	Field string
	Title string
	Width int
}

// Tab is a detail tab of a screen. Tabs with RequiresSelection stay
// disabled until a record is selected.
type Tab struct {
	Name              string
	Label             string
	Fields            []string
	RequiresSelection bool
}

// Screen describes how one collection is displayed and filtered.
type Screen struct {
	Name        string
	Title       string
	Columns     []Column
	Searchable  []string
	Categorical []Facet
	Tabs        []Tab
	// AddFields are the inputs of the "new record" form.
	AddFields []string
}

// Facet looks up a declared categorical filter by field name.
func (s Screen) Facet(field string) (Facet, bool) {
	for _, f := range s.Categorical {
		if f.Field == field {
			return f, true
		}
	}
	return Facet{}, false
}

// Tab looks up a tab by name.
func (s Screen) Tab(name string) (Tab, bool) {
	for _, t := range s.Tabs {
		if t.Name == name {
			return t, true
		}
	}
	return Tab{}, false
}

// DefaultTab is the first declared tab, or "" when the screen has none.
func (s Screen) DefaultTab() string {
	if len(s.Tabs) == 0 {
		return ""
	}
	return s.Tabs[0].Name
}

// ColumnTitles lists column titles in order.
func (s Screen) ColumnTitles() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Title
	}
	return out
}

// Cell renders a record's value for a column, with categorical labels applied.
func (s Screen) Cell(r Record, field string) string {
	txt, ok := r.Text(field)
	if !ok {
		return "-"
	}
	if f, ok := s.Facet(field); ok {
		return f.Vocabulary.Label(txt)
	}
	return strings.TrimSpace(txt)
}
