package ui

import "github.com/gdamore/tcell/v2"

// paint describes how a run of text is drawn: a uniform style, or an
// explicit per-rune style list. When the list is shorter than the text its
// final element styles the remainder, which lets a cell carry trailing
// padding in the row's default style.
type paint struct {
	style tcell.Style
	runes []tcell.Style
}

func uniform(style tcell.Style) paint {
	return paint{style: style}
}

// HorizontalScroll wraps absolute-position screen writes with a clipping
// transform: the first N runes of a logical line, accumulated across the
// sequential Print calls that compose it, are skipped. SetScroll resets the
// budget before each line.
type HorizontalScroll struct {
	screen tcell.Screen
	scroll int
}

// NewHorizontalScroll returns a scroll writer over the given screen.
func NewHorizontalScroll(screen tcell.Screen) *HorizontalScroll {
	return &HorizontalScroll{screen: screen}
}

// SetScroll sets the number of leading runes to skip on the next line.
func (h *HorizontalScroll) SetScroll(scroll int) {
	h.scroll = scroll
}

// Print writes text at (x, y), consuming the remaining scroll budget first.
// It returns the number of runes actually written so callers can advance x.
func (h *HorizontalScroll) Print(text string, x, y int, p paint) int {
	runes := []rune(text)
	switch {
	case h.scroll <= 0:
		h.put(runes, x, y, p)
		return len(runes)
	case len(runes) > h.scroll:
		clipped := runes[h.scroll:]
		cp := p
		if cp.runes != nil {
			cp.runes = cp.runes[min(h.scroll, len(cp.runes)-1):]
		}
		h.scroll = 0
		h.put(clipped, x, y, cp)
		return len(clipped)
	default:
		h.scroll -= len(runes)
		return 0
	}
}

func (h *HorizontalScroll) put(runes []rune, x, y int, p paint) {
	for i, r := range runes {
		style := p.style
		if p.runes != nil {
			if i < len(p.runes) {
				style = p.runes[i]
			} else {
				style = p.runes[len(p.runes)-1]
			}
		}
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
