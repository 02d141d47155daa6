package state

import (
	"errors"
	"testing"

	"aria2top/internal/aria2"
)

func TestStore_UpdateReplacesSnapshot(t *testing.T) {
	store := &Store{}
	stat := &aria2.GlobalStat{DownloadSpeed: 1024, NumActive: 1}
	store.Update(stat, []aria2.Download{{GID: "g1", Status: aria2.StatusActive}}, nil)

	snap := store.Snapshot()
	if !snap.HasStat {
		t.Fatal("HasStat = false, want true")
	}
	if snap.Stat.DownloadSpeed != 1024 {
		t.Fatalf("DownloadSpeed = %d, want 1024", snap.Stat.DownloadSpeed)
	}
	if len(snap.Downloads) != 1 || snap.Downloads[0].GID != "g1" {
		t.Fatalf("Downloads = %v, want single g1 entry", snap.Downloads)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	store := &Store{}
	store.Update(&aria2.GlobalStat{}, []aria2.Download{{GID: "g1"}}, nil)
	store.Update(nil, nil, errors.New("daemon unreachable"))

	snap := store.Snapshot()
	if len(snap.Downloads) != 1 {
		t.Fatalf("Downloads lost on error update: %v", snap.Downloads)
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want recorded error")
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline after one failure, want false")
	}

	store.Update(nil, nil, errors.New("still down"))
	if !store.Snapshot().IsOffline() {
		t.Fatal("IsOffline = false after two failures, want true")
	}
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := &Store{}
	store.Update(nil, []aria2.Download{{GID: "g1", Status: aria2.StatusWaiting}}, nil)

	snap := store.Snapshot()
	snap.Downloads[0].Status = aria2.StatusPaused

	if got := store.Snapshot().Downloads[0].Status; got != aria2.StatusWaiting {
		t.Fatalf("stored status = %q, mutated through snapshot copy", got)
	}
}
