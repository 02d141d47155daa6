package ui

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"aria2top/internal/aria2"
)

// column is one table column: header text, layout, text projection, sort
// order, and cell styling. Columns are stateless values defined once at
// startup.
type column interface {
	// Name is the stable identifier used in preferences and the sort panel.
	Name() string
	Header() string
	// Width in cells; zero means fill the remaining screen width.
	Width() int
	LeftAlign() bool
	Text(d *aria2.Download) string
	Less(a, b *aria2.Download) bool
	Paint(d *aria2.Download, base tcell.Style) paint
}

// columnOrder defines display order. defaultSortIndex points at progress.
var columnOrder = []column{
	gidColumn{},
	statusColumn{},
	progressColumn{},
	sizeColumn{},
	downSpeedColumn{},
	upSpeedColumn{},
	etaColumn{},
	nameColumn{},
}

const defaultSortIndex = 2

// columnIndex resolves a column name to its position, or the default sort
// column when the name is unknown.
func columnIndex(name string) int {
	for i, c := range columnOrder {
		if c.Name() == strings.TrimSpace(name) {
			return i
		}
	}
	return defaultSortIndex
}

type gidColumn struct{}

func (gidColumn) Name() string { return "gid" }
func (gidColumn) Header() string { return "GID" }
func (gidColumn) Width() int { return 16 }
func (gidColumn) LeftAlign() bool { return false }
func (gidColumn) Text(d *aria2.Download) string { return d.GID }
func (gidColumn) Less(a, b *aria2.Download) bool { return a.GID < b.GID }
func (gidColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

type statusColumn struct{}

func (statusColumn) Name() string { return "status" }
func (statusColumn) Header() string { return "STATUS" }
func (statusColumn) Width() int { return 9 }
func (statusColumn) LeftAlign() bool { return true }
func (statusColumn) Text(d *aria2.Download) string { return d.Status }
func (statusColumn) Less(a, b *aria2.Download) bool { return a.Status < b.Status }
func (statusColumn) Paint(d *aria2.Download, base tcell.Style) paint {
	if base != Style(PaletteDefault) {
		return uniform(base)
	}
	return uniform(Style(statusPalette(d.Status)))
}

type progressColumn struct{}

func (progressColumn) Name() string { return "progress" }
func (progressColumn) Header() string { return "PROGRESS" }
func (progressColumn) Width() int { return 8 }
func (progressColumn) LeftAlign() bool { return false }
func (progressColumn) Text(d *aria2.Download) string { return formatProgress(d.Progress()) }
func (progressColumn) Less(a, b *aria2.Download) bool {
	return a.Progress() < b.Progress()
}
func (progressColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

type sizeColumn struct{}

func (sizeColumn) Name() string { return "size" }
func (sizeColumn) Header() string { return "SIZE" }
func (sizeColumn) Width() int { return 11 }
func (sizeColumn) LeftAlign() bool { return false }
func (sizeColumn) Text(d *aria2.Download) string { return formatBytes(d.TotalLength) }
func (sizeColumn) Less(a, b *aria2.Download) bool { return a.TotalLength < b.TotalLength }
func (sizeColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

type downSpeedColumn struct{}

func (downSpeedColumn) Name() string { return "down_speed" }
func (downSpeedColumn) Header() string { return "DOWN_SPEED" }
func (downSpeedColumn) Width() int { return 13 }
func (downSpeedColumn) LeftAlign() bool { return false }
func (downSpeedColumn) Text(d *aria2.Download) string { return formatSpeed(d.DownloadSpeed) }
func (downSpeedColumn) Less(a, b *aria2.Download) bool {
	return a.DownloadSpeed < b.DownloadSpeed
}
func (downSpeedColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

type upSpeedColumn struct{}

func (upSpeedColumn) Name() string { return "up_speed" }
func (upSpeedColumn) Header() string { return "UP_SPEED" }
func (upSpeedColumn) Width() int { return 13 }
func (upSpeedColumn) LeftAlign() bool { return false }
func (upSpeedColumn) Text(d *aria2.Download) string { return formatSpeed(d.UploadSpeed) }
func (upSpeedColumn) Less(a, b *aria2.Download) bool {
	return a.UploadSpeed < b.UploadSpeed
}
func (upSpeedColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

type etaColumn struct{}

func (etaColumn) Name() string { return "eta" }
func (etaColumn) Header() string { return "ETA" }
func (etaColumn) Width() int { return 8 }
func (etaColumn) LeftAlign() bool { return false }
func (etaColumn) Text(d *aria2.Download) string { return formatETA(d.ETASeconds()) }
func (etaColumn) Less(a, b *aria2.Download) bool {
	return etaSortKey(a) < etaSortKey(b)
}
func (etaColumn) Paint(_ *aria2.Download, base tcell.Style) paint {
	return uniform(base)
}

// etaSortKey orders unknown ETAs last under ascending sort.
func etaSortKey(d *aria2.Download) int64 {
	eta := d.ETASeconds()
	if eta < 0 {
		return math.MaxInt64
	}
	return eta
}

type nameColumn struct{}

func (nameColumn) Name() string { return "name" }
func (nameColumn) Header() string { return "NAME" }
func (nameColumn) Width() int { return 0 }
func (nameColumn) LeftAlign() bool { return true }
func (nameColumn) Text(d *aria2.Download) string { return d.Name() }
func (nameColumn) Less(a, b *aria2.Download) bool { return a.Name() < b.Name() }
func (nameColumn) Paint(d *aria2.Download, base tcell.Style) paint {
	if base != Style(PaletteDefault) {
		return uniform(base)
	}
	return namePaint(d.Name(), base)
}
