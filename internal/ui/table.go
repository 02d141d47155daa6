package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func (d *Dashboard) paintTable() {
	d.paintHeaders()
	d.paintRows()
}

func (d *Dashboard) paintHeaders() {
	d.scroll.SetScroll(d.xScroll)
	x := d.xOffset
	for i, col := range columnOrder {
		style := Style(PaletteHeader)
		if i == d.sortIdx {
			style = Style(PaletteFocusedHeader)
		}
		x += d.scroll.Print(d.padCell(col.Header(), i), x, 0, uniform(style))
		if i < len(columnOrder)-1 {
			x += d.scroll.Print(" ", x, 0, uniform(Style(PaletteHeader)))
		}
	}
}

func (d *Dashboard) paintRows() {
	for y := 1; y < d.height; y++ {
		idx := d.rowOffset + y - 1
		if idx >= len(d.rows) {
			break
		}
		base := Style(PaletteDefault)
		if idx == d.focused {
			base = Style(PaletteFocusedRow)
		}
		d.scroll.SetScroll(d.xScroll)
		x := d.xOffset
		for c, col := range columnOrder {
			p := col.Paint(&d.data[idx], base)
			x += d.scroll.Print(d.padCell(d.rows[idx][c], c), x, y, p)
			if c < len(columnOrder)-1 {
				x += d.scroll.Print(" ", x, y, uniform(base))
			}
		}
	}
}

func (d *Dashboard) padCell(text string, col int) string {
	if columnOrder[col].LeftAlign() {
		return padRight(text, d.widths[col])
	}
	return padLeft(text, d.widths[col])
}

// paintSidePanel draws the narrow overlay list used by the remove and
// select-sort modes, left of the shifted main table.
func (d *Dashboard) paintSidePanel(header string, labels []string) {
	width := panelWidth(header, labels)
	d.printAt(padRight(header, width), 0, 0, Style(PaletteSideHeader))
	for i, label := range labels {
		style := Style(PaletteSideRow)
		if i == d.sideFocus {
			style = Style(PaletteSideFocusedRow)
		}
		d.printAt(padRight(label, width), 0, i+1, style)
	}
}

func panelWidth(header string, labels []string) int {
	width := runewidth.StringWidth(header)
	for _, label := range labels {
		if w := runewidth.StringWidth(label); w > width {
			width = w
		}
	}
	return width
}

// printAt writes text without scroll clipping.
func (d *Dashboard) printAt(text string, x, y int, style tcell.Style) {
	for i, r := range []rune(text) {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}
