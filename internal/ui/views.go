package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/lipgloss"

	"airops/internal/filter"
	"airops/internal/model"
)

func overlay(base, overlay string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(overlay, "\n")
	maxLen := len(bLines)
	if len(oLines) > maxLen {
		maxLen = len(oLines)
	}
	for len(bLines) < maxLen {
		bLines = append(bLines, "")
	}
	for len(oLines) < maxLen {
		oLines = append(oLines, "")
	}
	out := make([]string, maxLen)
	for i := 0; i < maxLen; i++ {
		// Whitespace-only overlay lines are transparent.
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyToClipboard sends s to the terminal clipboard through OSC52.
func copyToClipboard(s string) {
	seq := osc52.New(stripANSI(s))
	// Write to the tty so the escape does not land in the program's output.
	if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer f.Close()
		_, _ = seq.WriteTo(f)
		return
	}
	_, _ = seq.WriteTo(os.Stderr)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// renderFacetCounts lists each select with per-value counts and a bar.
func renderFacetCounts(def model.Screen, counts []filter.FacetCount, st filter.State, width int) string {
	labelW := 0
	for _, fc := range counts {
		f, _ := def.Facet(fc.Field)
		for _, v := range f.Vocabulary {
			if w := runeLen(v.Label); w > labelW {
				labelW = w
			}
		}
	}
	barW := width - labelW - 12
	if barW < 5 {
		barW = 5
	}
	var b strings.Builder
	for i, fc := range counts {
		f, _ := def.Facet(fc.Field)
		if i > 0 {
			b.WriteString("\n")
		}
		title := f.Label
		if cur := st.Categorical[fc.Field]; cur != "" && cur != filter.All {
			title += " = " + f.Vocabulary.Label(cur)
		}
		fmt.Fprintf(&b, "%s (%d)\n", title, fc.Total)
		maxC := 0
		for _, c := range fc.Counts {
			if c > maxC {
				maxC = c
			}
		}
		for _, v := range f.Vocabulary {
			c := fc.Counts[v.Value]
			fmt.Fprintf(&b, "  %s %s %d\n", padRight(v.Label, labelW), colorBar(barW, float64(c), float64(maxC)), c)
		}
	}
	return b.String()
}

func colorBar(width int, val, max float64) string {
	if width <= 0 {
		return ""
	}
	n := 0
	if max > 0 {
		n = int(val / max * float64(width))
	}
	if val > 0 && n == 0 {
		n = 1
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Render(strings.Repeat("█", n))
	return bar + strings.Repeat(" ", width-n)
}

func runeLen(s string) int { return len([]rune(s)) }

func padRight(s string, w int) string {
	if d := w - runeLen(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
