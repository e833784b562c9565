package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AIROPS_PREFS", "")

	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Screen != defaultScreen {
		t.Fatalf("Screen = %q, want %q", cfg.Screen, defaultScreen)
	}
	if cfg.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, ThemeDark)
	}
	if len(cfg.Filters) != 0 || cfg.ExportFormat != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParse_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writePrefs(t, `
theme = "  light "
screen = "crew"
seed_dir = "~/airops-seed"
`)

	cfg, err := Parse([]string{"--prefs", path})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Screen != "crew" || cfg.Theme != ThemeLight {
		t.Fatalf("prefs not applied: %+v", cfg)
	}
	if !strings.HasPrefix(cfg.SeedPath, home) {
		t.Fatalf("SeedPath = %q, want it under HOME %q", cfg.SeedPath, home)
	}

	t.Setenv("AIROPS_SCREEN", "aircraft")
	cfg, err = Parse([]string{"--prefs=" + path})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Screen != "aircraft" {
		t.Fatalf("Screen = %q, want env value aircraft", cfg.Screen)
	}

	cfg, err = Parse([]string{"--prefs", path, "--screen", "employees"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Screen != "employees" {
		t.Fatalf("Screen = %q, want flag value employees", cfg.Screen)
	}
}

func TestParse_Filters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Parse([]string{"--screen", "crew", "--filter", "role=pilot", "--filter", "status=active", "--search", "mar"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Filters["role"] != "pilot" || cfg.Filters["status"] != "active" || cfg.Search != "mar" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cases := [][]string{
		{"--screen", "routes"},
		{"--theme", "neon"},
		{"--filter", "pilot"},
		{"--export", "csv"},
		{"--export", "xml", "--out", "x.xml"},
		{"--follow"},
	}
	for _, args := range cases {
		if _, err := Parse(args); err == nil {
			t.Fatalf("Parse(%q) returned nil error", args)
		}
	}
}

func TestLoadPrefs_BadFileFallsBack(t *testing.T) {
	path := writePrefs(t, "theme = [unterminated")
	p := LoadPrefs(path)
	if p != defaultPrefs() {
		t.Fatalf("LoadPrefs = %+v, want defaults", p)
	}
}

func TestSavePrefs_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{Theme: "light", Screen: "passengers"}
	if err := SavePrefs(path, want); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	if got := LoadPrefs(path); got != want {
		t.Fatalf("LoadPrefs = %+v, want %+v", got, want)
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "AIROPS_FEED=/tmp/feed.jsonl\nAIROPS_THEME=light\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("AIROPS_FEED", "")
	os.Unsetenv("AIROPS_FEED")
	t.Setenv("AIROPS_THEME", "dark")

	LoadDotenv(path)
	if got := os.Getenv("AIROPS_FEED"); got != "/tmp/feed.jsonl" {
		t.Fatalf("AIROPS_FEED = %q, want %q", got, "/tmp/feed.jsonl")
	}
	if got := os.Getenv("AIROPS_THEME"); got != "dark" {
		t.Fatalf("AIROPS_THEME = %q, want existing value kept", got)
	}
	LoadDotenv(filepath.Join(t.TempDir(), "missing.env"))
}
