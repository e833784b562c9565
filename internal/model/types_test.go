package model

import "testing"

func TestRecordText(t *testing.T) {
	r := Record{ID: "1", Fields: map[string]any{"name": "João Silva", "hours": float64(812), "none": nil}}
	if got, ok := r.Text("name"); !ok || got != "João Silva" {
		t.Fatalf("Text(name) = %q, %v", got, ok)
	}
	if got, ok := r.Text("hours"); !ok || got != "812" {
		t.Fatalf("Text(hours) = %q, %v, want 812", got, ok)
	}
	if _, ok := r.Text("none"); ok {
		t.Fatalf("Text(none) reported present for nil value")
	}
	if _, ok := r.Text("missing"); ok {
		t.Fatalf("Text(missing) reported present")
	}
	if got, ok := r.Text("id"); !ok || got != "1" {
		t.Fatalf("Text(id) = %q, %v", got, ok)
	}
}

func TestVocabularyLabel(t *testing.T) {
	v := Vocabulary{{Value: "active", Label: "Active"}, {Value: "maintenance", Label: "In maintenance"}, {Value: "grounded"}}
	if got := v.Label("maintenance"); got != "In maintenance" {
		t.Fatalf("Label = %q", got)
	}
	if got := v.Label("grounded"); got != "grounded" {
		t.Fatalf("Label without display text = %q, want raw value", got)
	}
	if got := v.Label("Active"); got != "Active" {
		t.Fatalf("Label outside vocabulary = %q, want raw value", got)
	}
	if v.Contains("Active") {
		t.Fatalf("Contains must be case-sensitive")
	}
}

func TestCollectionPutKeepsPosition(t *testing.T) {
	c := NewCollection([]Record{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	c.Put(Record{ID: "b", Fields: map[string]any{"x": 1}})
	c.Put(Record{ID: "d"})
	got := ids(c.Records())
	want := []string{"a", "b", "c", "d"}
	if !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	r, ok := c.Get("b")
	if !ok || r.Fields["x"] != 1 {
		t.Fatalf("Get(b) = %#v, %v", r, ok)
	}
}

func TestCollectionRemoveReindexes(t *testing.T) {
	c := NewCollection([]Record{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	v := c.Version()
	if !c.Remove("a") {
		t.Fatalf("Remove(a) = false")
	}
	if c.Remove("a") {
		t.Fatalf("second Remove(a) = true")
	}
	if c.Version() == v {
		t.Fatalf("Version unchanged after Remove")
	}
	c.Put(Record{ID: "c", Fields: map[string]any{"k": "v"}})
	got := ids(c.Records())
	if !equal(got, []string{"b", "c"}) {
		t.Fatalf("order = %v", got)
	}
	if c.Has("a") || !c.Has("c") {
		t.Fatalf("Has mismatch after remove")
	}
}

func TestCollectionRecordsAreCopies(t *testing.T) {
	c := NewCollection([]Record{{ID: "a", Fields: map[string]any{"status": "active"}}})
	snap := c.Records()
	snap[0].Fields["status"] = "changed"
	r, _ := c.Get("a")
	if r.Fields["status"] != "active" {
		t.Fatalf("collection mutated through snapshot: %v", r.Fields["status"])
	}
}

func ids(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
