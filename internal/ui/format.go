package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// formatBytes renders a byte count as "11.62GiB".
func formatBytes(n int64) string {
	value := float64(n)
	unit := byteUnits[0]
	for _, u := range byteUnits[1:] {
		if value < 1024 {
			break
		}
		value /= 1024
		unit = u
	}
	return fmt.Sprintf("%.2f%s", value, unit)
}

// formatSpeed renders a transfer rate as "1.23 MiB/s".
func formatSpeed(n int64) string {
	value := float64(n)
	unit := byteUnits[0]
	for _, u := range byteUnits[1:] {
		if value < 1024 {
			break
		}
		value /= 1024
		unit = u
	}
	return fmt.Sprintf("%.2f %s/s", value, unit)
}

func formatProgress(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// formatETA renders remaining seconds using the two most significant units,
// "2h35m" style. Unknown remaining time (negative) renders as "-".
func formatETA(seconds int64) string {
	if seconds < 0 {
		return "-"
	}
	parts := []struct {
		unit string
		size int64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}
	var out strings.Builder
	used := 0
	for _, p := range parts {
		if used == 2 {
			break
		}
		n := seconds / p.size
		seconds %= p.size
		if n == 0 && used == 0 && p.unit != "s" {
			continue
		}
		fmt.Fprintf(&out, "%d%s", n, p.unit)
		used++
	}
	return out.String()
}

// padLeft right-aligns text within width, truncating when too long.
func padLeft(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w > width {
		return runewidth.Truncate(text, width, "")
	}
	return strings.Repeat(" ", width-w) + text
}

// padRight left-aligns text within width, truncating when too long.
func padRight(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w > width {
		return runewidth.Truncate(text, width, "")
	}
	return text + strings.Repeat(" ", width-w)
}
