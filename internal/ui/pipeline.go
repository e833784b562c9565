package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"airops/internal/export"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/seed"
	"airops/internal/util"
	"airops/internal/util/logx"
)

type seedLoadedMsg struct {
	set seed.Set
	err error
}

type changeMsg struct{ change ingest.Change }

type feedErrMsg struct{ err error }

type feedDoneMsg struct{}

type exportDoneMsg struct {
	path string
	rows int
	err  error
}

// loadSeedCmd loads the built-in collections and overlays path when set.
func loadSeedCmd(path string) tea.Cmd {
	return func() tea.Msg {
		set := seed.Builtin()
		if path == "" {
			return seedLoadedMsg{set: set}
		}
		over, err := seed.LoadPath(path)
		if err != nil {
			return seedLoadedMsg{set: set, err: err}
		}
		return seedLoadedMsg{set: seed.Merge(set, over)}
	}
}

func (m *Model) applySeed(msg seedLoadedMsg) {
	if msg.err != nil {
		logx.Errorf("seed: %v", msg.err)
		m.lastMsg = "seed: " + msg.err.Error()
	}
	for name, rs := range msg.set {
		m.collections[name] = model.NewCollection(rs)
	}
	m.openScreen(m.screenIdx)
	logx.Infof("seed: %d screens ready", len(msg.set))
}

// startFeed begins reading the change feed, if one is configured.
func (m *Model) startFeed() tea.Cmd {
	if m.cfg.FeedPath == "" {
		return nil
	}
	m.stopFeed()
	ctx, cancel := context.WithCancel(m.ctx)
	m.feedCancel = cancel
	m.changes, m.feedErrs = ingest.Read(ctx, ingest.Options{
		Path:      m.cfg.FeedPath,
		Follow:    m.cfg.Follow,
		FromStart: m.cfg.FromStart,
	})
	logx.Infof("feed: path=%s follow=%v", m.cfg.FeedPath, m.cfg.Follow)
	return m.waitForFeed()
}

func (m *Model) stopFeed() {
	if m.feedCancel != nil {
		m.feedCancel()
		m.feedCancel = nil
	}
}

// waitForFeed blocks on the next change or error. Each handled message
// schedules the next wait.
func (m *Model) waitForFeed() tea.Cmd {
	changes, errs := m.changes, m.feedErrs
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ch, ok := <-changes:
				if !ok {
					// Errors are closed before changes; drain what is left.
					if errs != nil {
						if err, ok := <-errs; ok {
							return feedErrMsg{err: err}
						}
					}
					return feedDoneMsg{}
				}
				return changeMsg{change: ch}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				return feedErrMsg{err: err}
			}
		}
	}
}

// applyChange routes a feed change to its screen's collection. Changes to
// the open screen go through the session so dialogs stay consistent.
func (m *Model) applyChange(ch ingest.Change) {
	m.applied++
	if ch.Screen == m.currentName() {
		m.sess.Apply(ch)
		return
	}
	c, ok := m.collections[ch.Screen]
	if !ok {
		return
	}
	switch ch.Op {
	case ingest.OpRemove:
		c.Remove(ch.Record.ID)
	default:
		c.Put(ch.Record)
	}
}

// exportCmd writes the visible rows of the open screen.
func (m *Model) exportCmd() tea.Cmd {
	def := m.sess.Screen()
	rows := m.sess.Visible()
	format := m.cfg.ExportFormat
	if format == "" {
		format = "csv"
	}
	path := m.cfg.ExportOut
	if path == "" {
		ext := format
		if ext == "json" {
			ext = "ndjson"
		}
		path = fmt.Sprintf("airops-%s.%s", def.Name, ext)
	}
	if m.cfg.Redact {
		rows = util.RedactRecords(rows)
	}
	return func() tea.Msg {
		var err error
		switch strings.ToLower(format) {
		case "json":
			err = export.ToNDJSON(path, rows)
		default:
			err = export.ToCSV(path, def, rows)
		}
		return exportDoneMsg{path: path, rows: len(rows), err: err}
	}
}
