package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"

	"airops/internal/model"
	"airops/internal/seed"
)

// generator produces plausible changes against the built-in collections. It
// tracks which ids exist so removals and updates always name a live record.
type generator struct {
	rnd       *rand.Rand
	removePct int
	screens   []model.Screen
	live      map[string]map[string]model.Record
	nextID    int
}

func newGenerator(rnd *rand.Rand, removePct int) *generator {
	g := &generator{rnd: rnd, removePct: removePct, live: map[string]map[string]model.Record{}, nextID: 100}
	for _, name := range seed.Names() {
		def, err := seed.Screen(name)
		if err != nil {
			continue
		}
		g.screens = append(g.screens, def)
		rs, _ := seed.Records(name)
		byID := make(map[string]model.Record, len(rs))
		for _, r := range rs {
			byID[r.ID] = r
		}
		g.live[name] = byID
	}
	return g
}

// next returns one JSONL feed line.
func (g *generator) next() (string, error) {
	def := g.screens[g.rnd.Intn(len(g.screens))]
	live := g.live[def.Name]
	ids := make([]string, 0, len(live))
	for id := range live {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	obj := map[string]any{"screen": def.Name}
	switch {
	case len(ids) > 1 && g.rnd.Intn(100) < g.removePct:
		id := ids[g.rnd.Intn(len(ids))]
		delete(live, id)
		obj["op"] = "remove"
		obj["id"] = id
	case len(ids) == 0 || g.rnd.Intn(100) < 15:
		r := g.fresh(def)
		live[r.ID] = r
		for k, v := range r.Fields {
			obj[k] = v
		}
		obj["id"] = r.ID
	default:
		r := live[ids[g.rnd.Intn(len(ids))]]
		r = g.flip(def, r)
		live[r.ID] = r
		for k, v := range r.Fields {
			obj[k] = v
		}
		obj["id"] = r.ID
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// flip moves one categorical field of r to a different vocabulary value.
func (g *generator) flip(def model.Screen, r model.Record) model.Record {
	out := model.Record{ID: r.ID, Fields: make(map[string]any, len(r.Fields))}
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	if len(def.Categorical) == 0 {
		return out
	}
	f := def.Categorical[g.rnd.Intn(len(def.Categorical))]
	cur, _ := out.Text(f.Field)
	var choices []string
	for _, v := range f.Vocabulary.Values() {
		if v != cur {
			choices = append(choices, v)
		}
	}
	if len(choices) > 0 {
		out.Fields[f.Field] = choices[g.rnd.Intn(len(choices))]
	}
	return out
}

// fresh clones a random template record under a new id.
func (g *generator) fresh(def model.Screen) model.Record {
	g.nextID++
	r := model.Record{ID: fmt.Sprintf("N%d", g.nextID), Fields: map[string]any{}}
	if tmpl, _ := seed.Records(def.Name); len(tmpl) > 0 {
		for k, v := range tmpl[g.rnd.Intn(len(tmpl))].Fields {
			r.Fields[k] = v
		}
	}
	return g.flip(def, r)
}
