package ui

import (
	"testing"

	"aria2top/internal/aria2"
)

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"gid", 0},
		{"progress", 2},
		{"size", 3},
		{"name", 7},
		{"bogus", defaultSortIndex},
		{"", defaultSortIndex},
	}
	for _, tt := range tests {
		if got := columnIndex(tt.name); got != tt.want {
			t.Fatalf("columnIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestColumnTexts(t *testing.T) {
	d := aria2.Download{
		GID:             "2089b05ecca3d829",
		Status:          aria2.StatusActive,
		TotalLength:     2048,
		CompletedLength: 1024,
		DownloadSpeed:   512,
		Files:           []aria2.File{{Path: "/downloads/video.mkv"}},
	}

	tests := []struct {
		col  column
		want string
	}{
		{gidColumn{}, "2089b05ecca3d829"},
		{statusColumn{}, "active"},
		{progressColumn{}, "50.00%"},
		{sizeColumn{}, "2.00KiB"},
		{downSpeedColumn{}, "512.00 B/s"},
		{etaColumn{}, "2s"},
		{nameColumn{}, "video.mkv"},
	}
	for _, tt := range tests {
		if got := tt.col.Text(&d); got != tt.want {
			t.Fatalf("%s.Text() = %q, want %q", tt.col.Name(), got, tt.want)
		}
	}
}

func TestEtaSortKeyOrdersUnknownLast(t *testing.T) {
	known := aria2.Download{Status: aria2.StatusActive, TotalLength: 100, DownloadSpeed: 10}
	unknown := aria2.Download{Status: aria2.StatusPaused, TotalLength: 100}

	if !(etaColumn{}).Less(&known, &unknown) {
		t.Fatal("Less(known, unknown) = false, want known ETA first")
	}
	if (etaColumn{}).Less(&unknown, &known) {
		t.Fatal("Less(unknown, known) = true, want unknown ETA last")
	}
}
