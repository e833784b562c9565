package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"airops/internal/util/logx"
)

// Prefs are the persisted user preferences in prefs.toml.
type Prefs struct {
	Theme   string `toml:"theme"`
	Screen  string `toml:"screen"`
	SeedDir string `toml:"seed_dir"`
}

const (
	defaultPrefsPath = "~/.config/airops/prefs.toml"
	defaultScreen    = "flights"
)

func DefaultPrefsPath() string { return defaultPrefsPath }

func defaultPrefs() Prefs {
	return Prefs{Theme: string(ThemeDark), Screen: defaultScreen}
}

// LoadPrefs reads prefs from path. A missing or unreadable file yields the
// defaults; the TUI must start regardless.
func LoadPrefs(path string) Prefs {
	p := defaultPrefs()
	resolved, err := expandPath(path)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warnf("prefs: %v", err)
		}
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		logx.Warnf("prefs: %s: %v", resolved, err)
		return defaultPrefs()
	}
	p.Theme = strings.TrimSpace(p.Theme)
	p.Screen = strings.TrimSpace(p.Screen)
	p.SeedDir = strings.TrimSpace(p.SeedDir)
	if p.Theme == "" {
		p.Theme = string(ThemeDark)
	}
	if p.Screen == "" {
		p.Screen = defaultScreen
	}
	if p.SeedDir != "" {
		if dir, err := expandPath(p.SeedDir); err == nil {
			p.SeedDir = dir
		}
	}
	return p
}

// SavePrefs writes prefs to path, creating parent directories.
func SavePrefs(path string, p Prefs) error {
	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
