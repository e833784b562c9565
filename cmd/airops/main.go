package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"airops/internal/config"
	"airops/internal/ui"
	"airops/internal/util/logx"
	"airops/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Println("airops", version.Full())
		return
	}

	if cfg.ExportFormat != "" {
		n, err := runExport(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export error:", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "exported %d %s records to %s\n", n, cfg.Screen, cfg.ExportOut)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting airops %s: %s", version.String(), cfg.String())
	last, err := ui.Run(ctx, cfg)
	if err != nil {
		logx.Errorf("airops exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rememberScreen(cfg, last)
}

// rememberScreen stores the last open screen so the next start reopens it.
func rememberScreen(cfg *config.Config, name string) {
	p := config.LoadPrefs(cfg.PrefsPath)
	if name == "" || p.Screen == name {
		return
	}
	p.Screen = name
	if err := config.SavePrefs(cfg.PrefsPath, p); err != nil {
		logx.Warnf("prefs: %v", err)
	}
}
