package filter

import (
	"strings"

	"github.com/Knetic/govaluate"

	"airops/internal/model"
)

// All disables a categorical constraint.
const All = "all"

// State is the filter input of one screen: the search term as typed, one
// value per categorical select and an optional boolean expression.
type State struct {
	SearchTerm  string
	Categorical map[string]string
	Expr        string // govaluate expression over record fields
}

// NewState returns the default state for a screen: empty search and every
// declared select set to All.
func NewState(s model.Screen) State {
	st := State{Categorical: make(map[string]string, len(s.Categorical))}
	for _, f := range s.Categorical {
		st.Categorical[f.Field] = All
	}
	return st
}

// IsEmpty reports whether the state constrains nothing.
func (st State) IsEmpty() bool {
	if st.SearchTerm != "" || strings.TrimSpace(st.Expr) != "" {
		return false
	}
	for _, v := range st.Categorical {
		if v != All && v != "" {
			return false
		}
	}
	return true
}

// Clone copies the state so callers can change selects independently.
func (st State) Clone() State {
	out := st
	out.Categorical = make(map[string]string, len(st.Categorical))
	for k, v := range st.Categorical {
		out.Categorical[k] = v
	}
	return out
}

// Engine evaluates a State against records of one screen. The expression,
// if any, is compiled once.
type Engine struct {
	screen model.Screen
	state  State
	query  string
	expr   *govaluate.EvaluableExpression
}

// NewEngine compiles st for screen. Only an invalid expression fails.
func NewEngine(screen model.Screen, st State) (*Engine, error) {
	e := &Engine{screen: screen, state: st, query: strings.ToLower(st.SearchTerm)}
	if strings.TrimSpace(st.Expr) != "" {
		expr, err := govaluate.NewEvaluableExpression(st.Expr)
		if err != nil {
			return nil, err
		}
		e.expr = expr
	}
	return e, nil
}

// State returns the state the engine was built from.
func (e *Engine) State() State { return e.state }

// Match is the AND of the search, categorical and expression predicates.
func (e *Engine) Match(r model.Record) bool {
	return e.matchSearch(r) && e.matchCategorical(r, "") && e.matchExpr(r)
}

// Apply returns the matching records in input order. An empty state returns
// the input unchanged.
func (e *Engine) Apply(records []model.Record) []model.Record {
	if len(records) == 0 {
		return []model.Record{}
	}
	if e.state.IsEmpty() {
		return records
	}
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if e.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) matchSearch(r model.Record) bool {
	if e.query == "" {
		return true
	}
	for _, field := range e.screen.Searchable {
		text, ok := r.Text(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(text), e.query) {
			return true
		}
	}
	return false
}

// matchCategorical checks every declared select except skip.
func (e *Engine) matchCategorical(r model.Record, skip string) bool {
	for _, f := range e.screen.Categorical {
		if f.Field == skip {
			continue
		}
		want := e.state.Categorical[f.Field]
		if want == "" || want == All {
			continue
		}
		got, ok := r.Text(f.Field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (e *Engine) matchExpr(r model.Record) bool {
	if e.expr == nil {
		return true
	}
	params := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		params[k] = numeric(v)
	}
	params["id"] = r.ID
	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// numeric widens integers so govaluate comparators accept them.
func numeric(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	}
	return v
}

// Matches reports whether Apply would keep r. An expression that does not
// compile is ignored, as in Apply.
func Matches(screen model.Screen, r model.Record, st State) bool {
	e, err := NewEngine(screen, st)
	if err != nil {
		st.Expr = ""
		e, _ = NewEngine(screen, st)
	}
	return e.Match(r)
}

// Apply filters records with st. An expression that does not compile is
// ignored; use NewEngine to surface the error.
func Apply(screen model.Screen, records []model.Record, st State) []model.Record {
	e, err := NewEngine(screen, st)
	if err != nil {
		st.Expr = ""
		e, _ = NewEngine(screen, st)
	}
	return e.Apply(records)
}
