package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RPCURL != defaultRPCURL {
		t.Fatalf("RPCURL = %q, want %q", cfg.RPCURL, defaultRPCURL)
	}
	if cfg.Secret != "" {
		t.Fatalf("Secret = %q, want empty", cfg.Secret)
	}
	if cfg.RefreshEvery != time.Second {
		t.Fatalf("RefreshEvery = %v, want 1s", cfg.RefreshEvery)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
rpc_url = "  http://10.0.0.5:6800/jsonrpc  "
rpc_secret = "  hunter2  "
refresh_seconds = 3
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RPCURL != "http://10.0.0.5:6800/jsonrpc" {
		t.Fatalf("RPCURL = %q, want trimmed URL", cfg.RPCURL)
	}
	if cfg.Secret != "hunter2" {
		t.Fatalf("Secret = %q, want hunter2", cfg.Secret)
	}
	if cfg.RefreshEvery != 3*time.Second {
		t.Fatalf("RefreshEvery = %v, want 3s", cfg.RefreshEvery)
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`rpc_url = [broken`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed TOML, want error")
	}
}
