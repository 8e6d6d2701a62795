package main

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

func fmtReport(cfg config, s summary, used time.Duration) string {
	p := message.NewPrinter(lang)
	fps := float64(s.Frames) / max(used.Seconds(), 1e-9)
	keys := []string{
		"Games", "Lost", "Seed", "Rotation", "Frames", "Frames/sec",
		"Score", "Rows", "Level", "Pieces",
	}
	msg := map[string]string{
		"Games":      p.Sprintf("%d", s.Games),
		"Lost":       p.Sprintf("%d", s.GameOver),
		"Seed":       p.Sprintf("%d", cfg.seed),
		"Rotation":   cfg.policy,
		"Frames":     p.Sprintf("%d", s.Frames),
		"Frames/sec": p.Sprintf("%.0f", fps),
		"Score":      fmtDistribution(p, s.Score),
		"Rows":       fmtDistribution(p, s.Rows),
		"Level":      fmtDistribution(p, s.Level),
		"Pieces":     fmtDistribution(p, s.Pieces),
	}
	return fmtTable("AI simulation", keys, msg)
}

func fmtDistribution(p *message.Printer, d distribution) string {
	return p.Sprintf("%.1f ± %.1f (median %.0f, %.0f..%.0f)",
		d.Mean, d.StdDev, d.Median, d.Min, d.Max)
}

// fmtTable draws a two column table with a title. Widths are measured in
// terminal cells.
func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(msg[k]))
	}
	titleW := runewidth.StringWidth(title)
	maxKeyLen += 2
	maxValLen += 2
	if titleW > maxKeyLen+1+maxValLen {
		maxValLen = titleW - maxKeyLen - 1
	}

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		sb.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) +
			" | " + msg[k] + blank(maxValLen-2-runewidth.StringWidth(msg[k])) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
