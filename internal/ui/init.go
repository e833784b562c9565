package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airops/internal/config"
	"airops/internal/model"
	"airops/internal/seed"
)

func initialModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:         ctx,
		cfg:         cfg,
		names:       seed.Names(),
		collections: map[string]*model.Collection{},
		styles:      NewStyles(cfg.Theme != config.ThemeLight),
		keymap:      DefaultKeyMap(),
		search:      newInput("/", "search..."),
		find:        newInput(":", "find in rows..."),
		expr:        newInput("=", "e.g. flightHours >= 10000 && base == \"GRU\""),
		spin:        spinner.New(),
		detailVP:    viewport.New(80, 20),
	}
	m.spin.Spinner = spinner.Dot
	for i, n := range m.names {
		m.collections[n] = model.NewCollection(nil)
		if n == cfg.Screen {
			m.screenIdx = i
		}
	}

	m.tbl = table.New(table.WithFocused(true), table.WithHeight(20))
	ts := table.DefaultStyles()
	ts.Header = lipgloss.NewStyle().Bold(true).PaddingRight(1)
	ts.Cell = lipgloss.NewStyle().PaddingRight(1)
	ts.Selected = m.styles.Selected
	m.tbl.SetStyles(ts)

	m.openScreen(m.screenIdx)
	m.sess.SetLoading(true)
	return m
}

func newInput(prompt, placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = 256
	return in
}

// Run starts the TUI and returns the name of the screen that was open on
// exit.
func Run(ctx context.Context, cfg *config.Config) (string, error) {
	m := initialModel(ctx, cfg)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	m.stopFeed()
	return m.currentName(), err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(loadSeedCmd(m.cfg.SeedPath), m.spin.Tick)
}
