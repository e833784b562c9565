package util

import (
	"regexp"

	"airops/internal/model"
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`\+\d[\d\s().-]{7,}\d`)
)

// RedactPII masks e-mail addresses and phone numbers in s.
func RedactPII(s string) string {
	s = reEmail.ReplaceAllString(s, "[redacted-email]")
	s = rePhone.ReplaceAllString(s, "[redacted-phone]")
	return s
}

// RedactRecord returns a copy of r with every string field passed through
// RedactPII. The id is left alone.
func RedactRecord(r model.Record) model.Record {
	out := model.Record{ID: r.ID, Fields: make(map[string]any, len(r.Fields))}
	for k, v := range r.Fields {
		if s, ok := v.(string); ok {
			v = RedactPII(s)
		}
		out.Fields[k] = v
	}
	return out
}

// RedactRecords applies RedactRecord to every record.
func RedactRecords(rs []model.Record) []model.Record {
	out := make([]model.Record, len(rs))
	for i, r := range rs {
		out[i] = RedactRecord(r)
	}
	return out
}
