package prefs

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p.Sort != defaultSort {
		t.Fatalf("Sort = %q, want %q", p.Sort, defaultSort)
	}
	if !p.Reverse {
		t.Fatal("Reverse = false, want true by default")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Sort: "size", Reverse: false}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p.Sort != "size" {
		t.Fatalf("Sort = %q, want size", p.Sort)
	}
	if p.Reverse {
		t.Fatal("Reverse = true, want false")
	}
}

func TestLoad_BlankSortFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Sort: "   "}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p := Load(path); p.Sort != defaultSort {
		t.Fatalf("Sort = %q, want %q", p.Sort, defaultSort)
	}
}
