package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"airops/internal/seed"
	"airops/internal/util/logx"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	Screen       string
	SeedPath     string
	FeedPath     string
	Follow       bool
	FromStart    bool
	Search       string
	Filters      map[string]string
	Expr         string
	Theme        Theme
	ExportFormat string
	ExportOut    string
	Redact       bool
	PrefsPath    string
	ShowVersion  bool
}

// Load parses os.Args on top of env defaults and the prefs file. A .env
// file in the working directory fills AIROPS_* variables that are unset.
func Load() (*Config, error) {
	LoadDotenv(".env")
	return Parse(os.Args[1:])
}

// LoadDotenv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotenv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logx.Warnf("config: %s: %v", path, err)
	}
}

// Parse builds a Config from args. Precedence: flags, then AIROPS_* env,
// then prefs.toml, then built-in defaults.
func Parse(args []string) (*Config, error) {
	prefsPath := getenvDefault("AIROPS_PREFS", DefaultPrefsPath())
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--prefs="); ok {
			prefsPath = v
		} else if a == "--prefs" && i+1 < len(args) {
			prefsPath = args[i+1]
		}
	}
	p := LoadPrefs(prefsPath)

	cfg := &Config{PrefsPath: prefsPath}
	var filters []string
	var theme string

	fs := pflag.NewFlagSet("airops", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.Screen, "screen", getenvDefault("AIROPS_SCREEN", p.Screen), "initial screen: "+strings.Join(seed.Names(), "|"))
	fs.StringVar(&cfg.SeedPath, "seed", getenvDefault("AIROPS_SEED", p.SeedDir), "seed file or directory (yaml, json, jsonc, jsonl)")
	fs.StringVar(&cfg.FeedPath, "feed", getenvDefault("AIROPS_FEED", ""), "JSONL change feed to apply")
	fs.BoolVar(&cfg.Follow, "follow", false, "keep following the feed (tail -f)")
	fs.BoolVar(&cfg.FromStart, "from-start", false, "replay the existing feed before following")
	fs.StringVar(&cfg.Search, "search", "", "initial search term")
	fs.StringArrayVar(&filters, "filter", nil, "categorical filter field=value (repeatable)")
	fs.StringVar(&cfg.Expr, "expr", "", "advanced filter expression, e.g. 'flightHours >= 10000'")
	fs.StringVar(&theme, "theme", getenvDefault("AIROPS_THEME", p.Theme), "theme: dark|light")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export filtered view and exit: csv|json")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")
	fs.BoolVar(&cfg.Redact, "redact", false, "mask e-mail addresses and phone numbers in exports")
	fs.StringVar(&cfg.PrefsPath, "prefs", prefsPath, "preferences file")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Theme = Theme(strings.ToLower(theme))
	if cfg.Theme != ThemeDark && cfg.Theme != ThemeLight {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	if _, err := seed.Screen(cfg.Screen); err != nil {
		return nil, err
	}

	cfg.Filters = make(map[string]string, len(filters))
	for _, f := range filters {
		k, v, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--filter %q: want field=value", f)
		}
		cfg.Filters[strings.TrimSpace(k)] = v
	}

	switch cfg.ExportFormat {
	case "", "csv", "json":
	default:
		return nil, fmt.Errorf("unknown export format %q", cfg.ExportFormat)
	}
	if cfg.ExportFormat != "" && cfg.ExportOut == "" {
		return nil, errors.New("--export requires --out path")
	}
	if cfg.Follow && cfg.FeedPath == "" {
		return nil, errors.New("--follow requires --feed path")
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("screen=%s seed=%s feed=%s follow=%v theme=%s", c.Screen, c.SeedPath, c.FeedPath, c.Follow, c.Theme)
}
