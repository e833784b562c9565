package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"sort"

	"airops/internal/model"
)

// ToCSV writes records to path using the screen's columns first and any
// other fields after them in name order. An empty view writes the header
// only.
func ToCSV(path string, screen model.Screen, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteCSV(f, screen, records); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV is ToCSV for an arbitrary writer.
func WriteCSV(out io.Writer, screen model.Screen, records []model.Record) error {
	w := csv.NewWriter(out)
	cols := columns(screen, records)
	if err := w.Write(cols); err != nil {
		return err
	}
	for _, r := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			if v, ok := r.Text(c); ok {
				row[i] = v
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ToNDJSON writes one flat JSON object per record.
func ToNDJSON(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteNDJSON(f, records); err != nil {
		return err
	}
	return f.Close()
}

// WriteNDJSON is ToNDJSON for an arbitrary writer.
func WriteNDJSON(out io.Writer, records []model.Record) error {
	bw := bufio.NewWriter(out)
	for _, r := range records {
		obj := make(map[string]any, len(r.Fields)+1)
		for k, v := range r.Fields {
			obj[k] = v
		}
		obj["id"] = r.ID
		b, err := json.Marshal(obj)
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func columns(screen model.Screen, records []model.Record) []string {
	res := []string{"id"}
	seen := map[string]bool{"id": true}
	for _, c := range screen.Columns {
		if !seen[c.Field] {
			seen[c.Field] = true
			res = append(res, c.Field)
		}
	}
	var rest []string
	for _, r := range records {
		for k := range r.Fields {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append(res, rest...)
}
