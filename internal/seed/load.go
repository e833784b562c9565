package seed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"airops/internal/model"
	"airops/internal/util/logx"
)

// ErrMissingID is returned for a seed record without an id.
var ErrMissingID = errors.New("record has no id")

// Set maps screen names to their seed collections.
type Set map[string][]model.Record

// Builtin returns the built-in collections of every screen.
func Builtin() Set {
	out := make(Set, len(order))
	for _, name := range order {
		rs, _ := Records(name)
		out[name] = rs
	}
	return out
}

// LoadFile reads seed collections from path. YAML and JSON(C) files hold a
// map of screen name to a list of flat records; JSONL files hold one record
// per line with a "screen" key.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var set Set
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		set, err = decodeYAML(data)
	case ".json", ".jsonc":
		set, err = decodeJSON(jsonc.ToJSON(data))
	case ".jsonl", ".ndjson":
		set, err = decodeLines(data)
	default:
		return nil, fmt.Errorf("seed %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	for name, rs := range set {
		if _, err := Screen(name); err != nil {
			return nil, fmt.Errorf("seed %s: %w", path, err)
		}
		logx.Infof("seed: %s loaded %d %s records", path, len(rs), name)
	}
	return set, nil
}

// LoadDir loads every seed file in dir in name order. Later files replace
// screens loaded by earlier ones; files with other extensions are skipped.
func LoadDir(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read seed dir: %w", err)
	}
	out := Set{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json", ".jsonc", ".jsonl", ".ndjson":
		default:
			continue
		}
		set, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = Merge(out, set)
	}
	return out, nil
}

// LoadPath loads a seed file or, when path is a directory, every seed file
// inside it.
func LoadPath(path string) (Set, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if fi.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// Merge overlays loaded collections on top of base, replacing whole screens.
func Merge(base, over Set) Set {
	out := make(Set, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func decodeYAML(data []byte) (Set, error) {
	var raw map[string][]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromRaw(raw)
}

func decodeJSON(data []byte) (Set, error) {
	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromRaw(raw)
}

func decodeLines(data []byte) (Set, error) {
	set := Set{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(text), &obj); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		screen, _ := obj["screen"].(string)
		if screen == "" {
			return nil, fmt.Errorf("line %d: missing screen", line)
		}
		delete(obj, "screen")
		r, err := FromMap(obj)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		set[screen] = append(set[screen], r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func fromRaw(raw map[string][]map[string]any) (Set, error) {
	set := make(Set, len(raw))
	for screen, items := range raw {
		rs := make([]model.Record, 0, len(items))
		for i, obj := range items {
			r, err := FromMap(obj)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", screen, i, err)
			}
			rs = append(rs, r)
		}
		set[screen] = rs
	}
	return set, nil
}

// FromMap turns a flat object with an "id" key into a Record.
func FromMap(obj map[string]any) (model.Record, error) {
	id := idString(obj["id"])
	if id == "" {
		return model.Record{}, ErrMissingID
	}
	fields := make(map[string]any, len(obj))
	for k, v := range obj {
		if k == "id" {
			continue
		}
		fields[k] = v
	}
	return model.Record{ID: id, Fields: fields}, nil
}

func idString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
