package aria2

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type rpcCall struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

// newRPCServer returns a test server that records incoming calls and answers
// each method from the results map.
func newRPCServer(t *testing.T, results map[string]any, calls *[]rpcCall) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var call rpcCall
		if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
			t.Errorf("decode rpc call: %v", err)
		}
		*calls = append(*calls, call)

		result, ok := results[call.Method]
		if !ok {
			result = "OK"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      "aria2top",
			"result":  result,
		})
	}))
}

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != defaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), defaultEndpoint)
	}

	u, err = parseEndpoint("10.0.0.5:6800")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "10.0.0.5:6800" || u.Path != "/jsonrpc" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
}

func TestDownloads_MergesActiveWaitingStopped(t *testing.T) {
	t.Parallel()

	var calls []rpcCall
	server := newRPCServer(t, map[string]any{
		"aria2.tellActive":  []map[string]string{{"gid": "a1", "status": "active"}},
		"aria2.tellWaiting": []map[string]string{{"gid": "w1", "status": "waiting"}, {"gid": "w2", "status": "paused"}},
		"aria2.tellStopped": []map[string]string{{"gid": "s1", "status": "complete"}},
	}, &calls)
	defer server.Close()

	client, err := NewClient(server.URL, "s3cret")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	downloads, err := client.Downloads(context.Background())
	if err != nil {
		t.Fatalf("Downloads returned error: %v", err)
	}

	gids := make([]string, 0, len(downloads))
	for _, d := range downloads {
		gids = append(gids, d.GID)
	}
	want := []string{"a1", "w1", "w2", "s1"}
	if len(gids) != len(want) {
		t.Fatalf("gids = %v, want %v", gids, want)
	}
	for i := range want {
		if gids[i] != want[i] {
			t.Fatalf("gids = %v, want %v", gids, want)
		}
	}

	if len(calls) != 3 {
		t.Fatalf("call count = %d, want 3", len(calls))
	}
	for _, call := range calls {
		if len(call.Params) == 0 || call.Params[0] != "token:s3cret" {
			t.Fatalf("call %s missing token param: %v", call.Method, call.Params)
		}
	}
}

func TestCommands_UseExpectedMethods(t *testing.T) {
	t.Parallel()

	var calls []rpcCall
	server := newRPCServer(t, nil, &calls)
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := client.Pause(ctx, "g1"); err != nil {
		t.Fatalf("Pause returned error: %v", err)
	}
	if err := client.Resume(ctx, "g1"); err != nil {
		t.Fatalf("Resume returned error: %v", err)
	}
	if err := client.Reorder(ctx, "g1", -1); err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}
	if err := client.PurgeCompleted(ctx); err != nil {
		t.Fatalf("PurgeCompleted returned error: %v", err)
	}

	want := []string{"aria2.pause", "aria2.unpause", "aria2.changePosition", "aria2.purgeDownloadResult"}
	if len(calls) != len(want) {
		t.Fatalf("call count = %d, want %d", len(calls), len(want))
	}
	for i, method := range want {
		if calls[i].Method != method {
			t.Fatalf("call %d = %q, want %q", i, calls[i].Method, method)
		}
	}

	reorder := calls[2].Params
	if len(reorder) != 3 || reorder[2] != "POS_CUR" {
		t.Fatalf("reorder params = %v, want gid, step, POS_CUR", reorder)
	}
}

func TestRemove_SelectsMethodByStatus(t *testing.T) {
	t.Parallel()

	var calls []rpcCall
	server := newRPCServer(t, nil, &calls)
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	cases := []struct {
		name   string
		status string
		force  bool
		want   string
	}{
		{"waiting_plain", StatusWaiting, false, "aria2.remove"},
		{"active_forced", StatusActive, true, "aria2.forceRemove"},
		{"complete", StatusComplete, false, "aria2.removeDownloadResult"},
		{"errored_forced", StatusError, true, "aria2.removeDownloadResult"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls = calls[:0]
			d := &Download{GID: "g1", Status: tc.status}
			if err := client.Remove(ctx, d, tc.force, false); err != nil {
				t.Fatalf("Remove returned error: %v", err)
			}
			if len(calls) != 1 || calls[0].Method != tc.want {
				t.Fatalf("method = %v, want %q", calls, tc.want)
			}
		})
	}
}

func TestRemove_WithFilesDeletesFromDisk(t *testing.T) {
	var calls []rpcCall
	server := newRPCServer(t, nil, &calls)
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d := &Download{
		GID:    "g1",
		Status: StatusPaused,
		Files:  []File{{Path: path}, {Path: MetadataPrefix + "deadbeef"}},
	}
	if err := client.Remove(context.Background(), d, false, true); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file %s still exists after remove with files", path)
	}
}

func TestCall_SurfacesRPCError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      "aria2top",
			"error":   map[string]any{"code": 1, "message": "GID not found"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	err = client.Pause(context.Background(), "missing")
	if err == nil {
		t.Fatal("Pause succeeded, want rpc error")
	}
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("error = %v, want *RPCError in chain", err)
	}
	if rpcErr.Code != 1 {
		t.Fatalf("code = %d, want 1", rpcErr.Code)
	}
}
