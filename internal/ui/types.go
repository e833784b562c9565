package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"airops/internal/config"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/screen"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalFacets
	modalLogs
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineSearch
	inlineFind
	inlineExpr
)

type Model struct {
	ctx context.Context
	cfg *config.Config

	// Data: one collection per screen, alive for the whole program.
	names       []string
	collections map[string]*model.Collection
	screenIdx   int
	// Session of the open screen; rebuilt on every screen switch.
	sess *screen.Session
	// configured is set once the startup search and selects were applied.
	configured bool

	// Feed
	feedCancel context.CancelFunc
	changes    <-chan ingest.Change
	feedErrs   <-chan error
	applied    int

	// UI
	tbl        table.Model
	styles     Styles
	search     textinput.Model
	find       textinput.Model
	expr       textinput.Model
	spin       spinner.Model
	keymap     KeyMap
	termWidth  int
	termHeight int
	rows       []model.Record

	inlineMode inlineMode
	facetIdx   int
	findTerm   string
	lastMsg    string

	// Add dialog form, one input per screen.AddFields entry.
	form    []textinput.Model
	formIdx int

	// Detail dialog
	detailVP viewport.Model

	// Auxiliary popups (help, facet counts, logs)
	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string

	helpItems []helpItem
	helpSel   int
}

type helpItem struct {
	group string
	text  string
	key   tea.Key
}

func keyCmd(k tea.Key) tea.Cmd {
	return func() tea.Msg {
		if k.Type == tea.KeyRunes {
			return tea.KeyMsg{Type: k.Type, Runes: k.Runes}
		}
		return tea.KeyMsg{Type: k.Type}
	}
}

func keyLabel(k tea.Key) string {
	switch k.Type {
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			r := k.Runes[0]
			if r == ' ' {
				return "space"
			}
			return string(r)
		}
		return strings.ToLower(string(k.Runes))
	case tea.KeyEnter:
		return "enter"
	case tea.KeyEsc:
		return "esc"
	case tea.KeyTab:
		return "tab"
	case tea.KeyShiftTab:
		return "shift-tab"
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	default:
		return strings.ToLower(k.String())
	}
}
