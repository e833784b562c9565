package util

import (
	"testing"

	"airops/internal/model"
)

func TestRedactPII(t *testing.T) {
	cases := map[string]string{
		"mail beatriz.lima@example.com now": "mail [redacted-email] now",
		"call +55 11 98888-1234":            "call [redacted-phone]",
		"seat 14C, flight AO2210":           "seat 14C, flight AO2210",
		"2024-03-15 delayed baggage":        "2024-03-15 delayed baggage",
	}
	for in, want := range cases {
		if got := RedactPII(in); got != want {
			t.Fatalf("RedactPII(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRedactRecord_LeavesOriginal(t *testing.T) {
	r := model.Record{ID: "P001", Fields: map[string]any{"email": "a.b@example.com", "seats": 12.0}}
	got := RedactRecord(r)
	if got.Fields["email"] != "[redacted-email]" || got.Fields["seats"] != 12.0 {
		t.Fatalf("RedactRecord = %+v", got)
	}
	if r.Fields["email"] != "a.b@example.com" {
		t.Fatalf("original record modified")
	}
}
