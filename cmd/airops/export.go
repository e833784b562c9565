package main

import (
	"context"
	"fmt"

	"airops/internal/config"
	"airops/internal/export"
	"airops/internal/ingest"
	"airops/internal/model"
	"airops/internal/screen"
	"airops/internal/seed"
	"airops/internal/util"
	"airops/internal/util/logx"
)

// runExport loads the screen's collection, replays the feed once when one
// is given, applies the flag filters and writes the visible rows.
func runExport(cfg *config.Config) (int, error) {
	def, err := seed.Screen(cfg.Screen)
	if err != nil {
		return 0, err
	}
	set := seed.Builtin()
	if cfg.SeedPath != "" {
		over, err := seed.LoadPath(cfg.SeedPath)
		if err != nil {
			return 0, err
		}
		set = seed.Merge(set, over)
	}
	sess := screen.New(def, model.NewCollection(set[def.Name]))

	if cfg.FeedPath != "" {
		changes, errs := ingest.Read(context.Background(), ingest.Options{Path: cfg.FeedPath})
		for ch := range changes {
			if ch.Screen == def.Name {
				sess.Apply(ch)
			}
		}
		for err := range errs {
			logx.Warnf("feed: %v", err)
		}
	}

	if err := sess.Configure(cfg.Search, cfg.Filters, cfg.Expr); err != nil {
		return 0, err
	}
	rows := sess.Visible()
	if cfg.Redact {
		rows = util.RedactRecords(rows)
	}
	switch cfg.ExportFormat {
	case "csv":
		err = export.ToCSV(cfg.ExportOut, def, rows)
	case "json":
		err = export.ToNDJSON(cfg.ExportOut, rows)
	default:
		err = fmt.Errorf("unknown export format %q", cfg.ExportFormat)
	}
	if err != nil {
		return 0, err
	}
	logx.Infof("export: wrote %d rows to %s (%s)", len(rows), cfg.ExportOut, cfg.ExportFormat)
	return len(rows), nil
}
