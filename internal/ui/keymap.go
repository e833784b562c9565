package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Search      tea.Key
	Find        tea.Key
	FindNext    tea.Key
	FindPrev    tea.Key
	Expr        tea.Key
	CycleFacet  tea.Key
	NextFacet   tea.Key
	ClearFilter tea.Key
	Facets      tea.Key
	Add         tea.Key
	Detail      tea.Key
	Focus       tea.Key
	NextScreen  tea.Key
	PrevScreen  tea.Key
	Top         tea.Key
	Bottom      tea.Key
	Export      tea.Key
	Copy        tea.Key
	AppLogs     tea.Key
	Help        tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'/'}},
		Find:        tea.Key{Type: tea.KeyRunes, Runes: []rune{':'}},
		FindNext:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'n'}},
		FindPrev:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'N'}},
		Expr:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'='}},
		CycleFacet:  tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		NextFacet:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'v'}},
		ClearFilter: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Facets:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}},
		Add:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'a'}},
		Detail:      tea.Key{Type: tea.KeyEnter},
		Focus:       tea.Key{Type: tea.KeyRunes, Runes: []rune{' '}},
		NextScreen:  tea.Key{Type: tea.KeyTab},
		PrevScreen:  tea.Key{Type: tea.KeyShiftTab},
		Top:         tea.Key{Type: tea.KeyRunes, Runes: []rune{'g'}},
		Bottom:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'G'}},
		Export:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		Copy:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}

// tabDigit maps the keys 1..9 to a detail tab index.
func tabDigit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
