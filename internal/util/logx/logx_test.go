package logx

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	Reset()
	SetLevel(Warn)
	defer SetLevel(Info)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	lines := Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN  shown 2") {
		t.Fatalf("Lines = %q", lines)
	}
}

func TestRingDropsOldest(t *testing.T) {
	Reset()
	SetLevel(Debug)
	defer SetLevel(Info)
	for i := 0; i < maxLines+5; i++ {
		Debugf("line %d", i)
	}
	lines := Lines()
	if len(lines) != maxLines {
		t.Fatalf("len = %d, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "line 5") {
		t.Fatalf("oldest kept = %q, want line 5", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", Debug, true},
		{" WARNING ", Warn, true},
		{"error", Error, true},
		{"loud", Info, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSetLevelFromEnv(t *testing.T) {
	t.Setenv("AIROPS_LOG_LEVEL", "error")
	t.Setenv("AIROPS_LOG_STDERR", "0")
	SetLevelFromEnv()
	defer SetLevel(Info)
	Reset()
	Warnf("dropped")
	if n := len(Lines()); n != 0 {
		t.Fatalf("Lines len = %d, want 0", n)
	}
}
