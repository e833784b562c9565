package filter

import "airops/internal/model"

// FacetCount holds, for one categorical select, how many records would be
// visible for each value if only that select changed.
type FacetCount struct {
	Field  string
	Counts map[string]int
	Total  int // records matching every other constraint
}

// Facets counts values per declared select. Each select is counted against
// the records that pass the search, the expression and every other select,
// so the numbers shown next to a choice match what picking it would show.
func (e *Engine) Facets(records []model.Record) []FacetCount {
	out := make([]FacetCount, 0, len(e.screen.Categorical))
	for _, f := range e.screen.Categorical {
		fc := FacetCount{Field: f.Field, Counts: make(map[string]int, len(f.Vocabulary))}
		for _, c := range f.Vocabulary {
			fc.Counts[c.Value] = 0
		}
		for _, r := range records {
			if !e.matchSearch(r) || !e.matchCategorical(r, f.Field) || !e.matchExpr(r) {
				continue
			}
			fc.Total++
			if v, ok := r.Text(f.Field); ok {
				fc.Counts[v]++
			}
		}
		out = append(out, fc)
	}
	return out
}

// Facets is the package-level form of Engine.Facets.
func Facets(screen model.Screen, records []model.Record, st State) []FacetCount {
	e, err := NewEngine(screen, st)
	if err != nil {
		st.Expr = ""
		e, _ = NewEngine(screen, st)
	}
	return e.Facets(records)
}
