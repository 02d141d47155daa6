package app

import (
	"context"
	"errors"
	"testing"

	"aria2top/internal/aria2"
	"aria2top/internal/state"
)

type fakeQuerier struct {
	downloads []aria2.Download
	stat      aria2.GlobalStat
	listErr   error
	statErr   error
}

func (f *fakeQuerier) Downloads(ctx context.Context) ([]aria2.Download, error) {
	return f.downloads, f.listErr
}

func (f *fakeQuerier) GlobalStat(ctx context.Context) (aria2.GlobalStat, error) {
	return f.stat, f.statErr
}

func TestRefresh_UpdatesStore(t *testing.T) {
	store := &state.Store{}
	querier := &fakeQuerier{
		downloads: []aria2.Download{{GID: "g1", Status: aria2.StatusActive}},
		stat:      aria2.GlobalStat{DownloadSpeed: 2048},
	}

	refresh(context.Background(), store, querier, discardLogger())

	snap := store.Snapshot()
	if len(snap.Downloads) != 1 || snap.Downloads[0].GID != "g1" {
		t.Fatalf("Downloads = %v, want single g1 entry", snap.Downloads)
	}
	if !snap.HasStat || snap.Stat.DownloadSpeed != 2048 {
		t.Fatalf("Stat = %+v (has=%v), want download speed 2048", snap.Stat, snap.HasStat)
	}
}

func TestRefresh_ListFailureRecordsError(t *testing.T) {
	store := &state.Store{}
	store.Update(nil, []aria2.Download{{GID: "old"}}, nil)

	querier := &fakeQuerier{listErr: errors.New("connection refused")}
	refresh(context.Background(), store, querier, discardLogger())

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want poll error")
	}
	if len(snap.Downloads) != 1 || snap.Downloads[0].GID != "old" {
		t.Fatalf("Downloads = %v, want previous data preserved", snap.Downloads)
	}
}

func TestRefresh_StatFailureKeepsDownloads(t *testing.T) {
	store := &state.Store{}
	querier := &fakeQuerier{
		downloads: []aria2.Download{{GID: "g1"}},
		statErr:   errors.New("boom"),
	}

	refresh(context.Background(), store, querier, discardLogger())

	snap := store.Snapshot()
	if len(snap.Downloads) != 1 {
		t.Fatalf("Downloads = %v, want list despite stat failure", snap.Downloads)
	}
	if snap.HasStat {
		t.Fatal("HasStat = true, want false when stat poll failed")
	}
}
