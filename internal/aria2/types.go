package aria2

import (
	"path/filepath"
	"strings"
)

// Download statuses reported by aria2.
const (
	StatusActive   = "active"
	StatusWaiting  = "waiting"
	StatusPaused   = "paused"
	StatusError    = "error"
	StatusComplete = "complete"
	StatusRemoved  = "removed"
)

// MetadataPrefix marks magnet metadata downloads; aria2 uses it as the
// pseudo file path while the real torrent metadata is being fetched.
const MetadataPrefix = "[METADATA]"

// File is one file within a download.
type File struct {
	Index           string `json:"index"`
	Path            string `json:"path"`
	Length          int64  `json:"length,string"`
	CompletedLength int64  `json:"completedLength,string"`
	Selected        string `json:"selected"`
}

// TorrentInfo is the info section of a torrent download.
type TorrentInfo struct {
	Name string `json:"name"`
}

// BitTorrent holds the torrent-specific part of a download.
type BitTorrent struct {
	Info TorrentInfo `json:"info"`
}

// Download is one task tracked by the aria2 daemon. Numeric fields arrive as
// decimal strings on the wire, hence the ",string" tags.
type Download struct {
	GID             string      `json:"gid"`
	Status          string      `json:"status"`
	TotalLength     int64       `json:"totalLength,string"`
	CompletedLength int64       `json:"completedLength,string"`
	DownloadSpeed   int64       `json:"downloadSpeed,string"`
	UploadSpeed     int64       `json:"uploadSpeed,string"`
	ErrorCode       string      `json:"errorCode,omitempty"`
	ErrorMessage    string      `json:"errorMessage,omitempty"`
	Dir             string      `json:"dir,omitempty"`
	Files           []File      `json:"files,omitempty"`
	BitTorrent      *BitTorrent `json:"bittorrent,omitempty"`
}

// GlobalStat is the daemon-wide transfer summary.
type GlobalStat struct {
	DownloadSpeed int64 `json:"downloadSpeed,string"`
	UploadSpeed   int64 `json:"uploadSpeed,string"`
	NumActive     int   `json:"numActive,string"`
	NumWaiting    int   `json:"numWaiting,string"`
	NumStopped    int   `json:"numStopped,string"`
}

// IsActive reports whether the download is currently transferring.
func (d *Download) IsActive() bool { return d.Status == StatusActive }

// IsWaiting reports whether the download is queued behind others.
func (d *Download) IsWaiting() bool { return d.Status == StatusWaiting }

// IsPaused reports whether the download is paused.
func (d *Download) IsPaused() bool { return d.Status == StatusPaused }

// IsStopped reports whether the daemon keeps this entry only as bookkeeping
// (finished, failed, or removed).
func (d *Download) IsStopped() bool {
	switch d.Status {
	case StatusComplete, StatusError, StatusRemoved:
		return true
	}
	return false
}

// Name resolves a display name: the torrent info name when present, the
// metadata marker path verbatim for magnet metadata downloads, otherwise the
// basename of the first file.
func (d *Download) Name() string {
	if d.BitTorrent != nil && strings.TrimSpace(d.BitTorrent.Info.Name) != "" {
		return d.BitTorrent.Info.Name
	}
	if len(d.Files) > 0 {
		path := strings.TrimSpace(d.Files[0].Path)
		if strings.HasPrefix(path, MetadataPrefix) {
			return path
		}
		if path != "" {
			if base := filepath.Base(path); base != "." && base != string(filepath.Separator) {
				return base
			}
		}
	}
	return "Unknown"
}

// Progress returns completion as a percentage in [0, 100].
func (d *Download) Progress() float64 {
	if d.TotalLength <= 0 {
		return 0
	}
	return float64(d.CompletedLength) / float64(d.TotalLength) * 100
}

// ETASeconds estimates the remaining transfer time. It returns -1 when no
// estimate exists (inactive download, zero speed, or unknown size).
func (d *Download) ETASeconds() int64 {
	if !d.IsActive() || d.DownloadSpeed <= 0 || d.TotalLength <= 0 {
		return -1
	}
	remaining := d.TotalLength - d.CompletedLength
	if remaining < 0 {
		remaining = 0
	}
	return remaining / d.DownloadSpeed
}
