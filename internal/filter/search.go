package filter

import (
	"strings"

	"airops/internal/model"
)

// Next returns the index of the first record after from whose searchable
// fields contain term, wrapping around. It returns -1 when nothing matches.
func Next(screen model.Screen, records []model.Record, from int, term string) int {
	return step(screen, records, from, term, 1)
}

// Prev is Next in the other direction.
func Prev(screen model.Screen, records []model.Record, from int, term string) int {
	return step(screen, records, from, term, -1)
}

func step(screen model.Screen, records []model.Record, from int, term string, dir int) int {
	n := len(records)
	if n == 0 || term == "" {
		return -1
	}
	q := strings.ToLower(term)
	for i := 1; i <= n; i++ {
		idx := ((from+dir*i)%n + n) % n
		if containsAny(screen, records[idx], q) {
			return idx
		}
	}
	return -1
}

func containsAny(screen model.Screen, r model.Record, lowered string) bool {
	for _, field := range screen.Searchable {
		if text, ok := r.Text(field); ok && strings.Contains(strings.ToLower(text), lowered) {
			return true
		}
	}
	return false
}
