package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"aria2top/internal/aria2"
)

// PaletteID names a display attribute set. Status palettes are derived from
// the daemon's status strings by prefixing, so new statuses degrade to the
// default attributes instead of breaking the paint pass.
type PaletteID string

const (
	PaletteDefault        PaletteID = "default"
	PaletteHeader         PaletteID = "header"
	PaletteFocusedHeader  PaletteID = "focused_header"
	PaletteFocusedRow     PaletteID = "focused_row"
	PaletteMetadataMarker PaletteID = "metadata_marker"
	PaletteMetadata       PaletteID = "metadata"
	PaletteSideHeader     PaletteID = "side_column_header"
	PaletteSideRow        PaletteID = "side_column_row"
	PaletteSideFocusedRow PaletteID = "side_column_focused_row"
	PaletteBrightHelp     PaletteID = "bright_help"
	PaletteStatusActive   PaletteID = "status_active"
	PaletteStatusPaused   PaletteID = "status_paused"
	PaletteStatusWaiting  PaletteID = "status_waiting"
	PaletteStatusError    PaletteID = "status_error"
	PaletteStatusComplete PaletteID = "status_complete"
)

var defaultStyle = tcell.StyleDefault.
	Foreground(tcell.ColorWhite).
	Background(tcell.ColorBlack)

var palettes = map[PaletteID]tcell.Style{
	PaletteDefault:        defaultStyle,
	PaletteHeader:         defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	PaletteFocusedHeader:  defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua),
	PaletteFocusedRow:     defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua),
	PaletteMetadataMarker: defaultStyle.Foreground(tcell.ColorGreen).Underline(true),
	PaletteMetadata:       defaultStyle.Underline(true),
	PaletteSideHeader:     defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	PaletteSideRow:        defaultStyle,
	PaletteSideFocusedRow: defaultStyle.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua),
	PaletteBrightHelp:     defaultStyle.Bold(true),
	PaletteStatusActive:   defaultStyle.Foreground(tcell.ColorGreen),
	PaletteStatusPaused:   defaultStyle.Foreground(tcell.ColorYellow),
	PaletteStatusWaiting:  defaultStyle,
	PaletteStatusError:    defaultStyle.Foreground(tcell.ColorRed),
	PaletteStatusComplete: defaultStyle.Foreground(tcell.ColorAqua),
}

// Style resolves a palette id, falling back to the default attributes for
// unknown ids.
func Style(id PaletteID) tcell.Style {
	if s, ok := palettes[id]; ok {
		return s
	}
	return palettes[PaletteDefault]
}

func statusPalette(status string) PaletteID {
	return PaletteID("status_" + status)
}

// namePaint styles a name cell. Magnet metadata downloads get a per-rune
// paint: the "[METADATA]" marker stands out, the rest of the name is
// underlined, and the final element styles any trailing padding in the row's
// base attributes.
func namePaint(name string, base tcell.Style) paint {
	if !strings.HasPrefix(name, aria2.MetadataPrefix) {
		return uniform(base)
	}
	marker := len([]rune(aria2.MetadataPrefix))
	total := len([]rune(name))
	runes := make([]tcell.Style, 0, total+1)
	for i := 0; i < marker && i < total; i++ {
		runes = append(runes, Style(PaletteMetadataMarker))
	}
	for i := marker; i < total; i++ {
		runes = append(runes, Style(PaletteMetadata))
	}
	runes = append(runes, base)
	return paint{runes: runes}
}
