package aria2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Querier is the read side of the client, implemented by *Client and
// replaceable in tests.
type Querier interface {
	Downloads(ctx context.Context) ([]Download, error)
	GlobalStat(ctx context.Context) (GlobalStat, error)
}

// Ensure Client implements Querier at compile time.
var _ Querier = (*Client)(nil)

// Client talks to an aria2 daemon over its JSON-RPC 2.0 HTTP endpoint.
type Client struct {
	endpoint *url.URL
	secret   string
	http     *http.Client
}

const (
	defaultEndpoint = "http://127.0.0.1:6800/jsonrpc"
	requestTimeout  = 5 * time.Second

	// How many waiting/stopped entries to request per refresh. aria2 has no
	// "all" sentinel for these two calls.
	fetchWindow = 1000
)

// NewClient builds a Client for the given endpoint URL. An empty endpoint
// selects the aria2 default; an empty secret disables token authentication.
func NewClient(endpoint, secret string) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: base,
		secret:   strings.TrimSpace(secret),
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// RPCError is a JSON-RPC fault returned by the daemon.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("aria2 rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	Version string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Version string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Downloads returns every task the daemon knows about: active first, then
// waiting (queue order), then stopped.
func (c *Client) Downloads(ctx context.Context) ([]Download, error) {
	var active, waiting, stopped []Download
	if err := c.call(ctx, "aria2.tellActive", c.params(), &active); err != nil {
		return nil, fmt.Errorf("tell active: %w", err)
	}
	if err := c.call(ctx, "aria2.tellWaiting", c.params(0, fetchWindow), &waiting); err != nil {
		return nil, fmt.Errorf("tell waiting: %w", err)
	}
	if err := c.call(ctx, "aria2.tellStopped", c.params(0, fetchWindow), &stopped); err != nil {
		return nil, fmt.Errorf("tell stopped: %w", err)
	}
	out := make([]Download, 0, len(active)+len(waiting)+len(stopped))
	out = append(out, active...)
	out = append(out, waiting...)
	out = append(out, stopped...)
	return out, nil
}

// GlobalStat returns daemon-wide transfer totals.
func (c *Client) GlobalStat(ctx context.Context) (GlobalStat, error) {
	var stat GlobalStat
	if err := c.call(ctx, "aria2.getGlobalStat", c.params(), &stat); err != nil {
		return GlobalStat{}, fmt.Errorf("global stat: %w", err)
	}
	return stat, nil
}

// Pause pauses an active or waiting download.
func (c *Client) Pause(ctx context.Context, gid string) error {
	if err := c.call(ctx, "aria2.pause", c.params(gid), nil); err != nil {
		return fmt.Errorf("pause %s: %w", gid, err)
	}
	return nil
}

// Resume unpauses a paused download.
func (c *Client) Resume(ctx context.Context, gid string) error {
	if err := c.call(ctx, "aria2.unpause", c.params(gid), nil); err != nil {
		return fmt.Errorf("resume %s: %w", gid, err)
	}
	return nil
}

// Reorder moves a download within the waiting queue by step positions
// relative to its current slot (negative is toward the front).
func (c *Client) Reorder(ctx context.Context, gid string, step int) error {
	if err := c.call(ctx, "aria2.changePosition", c.params(gid, step, "POS_CUR"), nil); err != nil {
		return fmt.Errorf("reorder %s: %w", gid, err)
	}
	return nil
}

// Remove deletes a download from the daemon. Stopped entries are purged from
// the daemon's result bookkeeping instead, since aria2.remove rejects them.
// When files is true the download's on-disk files are deleted afterwards,
// best effort; aria2's RPC has no file deletion of its own.
func (c *Client) Remove(ctx context.Context, d *Download, force, files bool) error {
	var err error
	if d.IsStopped() {
		err = c.call(ctx, "aria2.removeDownloadResult", c.params(d.GID), nil)
	} else {
		method := "aria2.remove"
		if force {
			method = "aria2.forceRemove"
		}
		err = c.call(ctx, method, c.params(d.GID), nil)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", d.GID, err)
	}
	if files {
		removeLocalFiles(d)
	}
	return nil
}

// PurgeCompleted clears completed, errored, and removed downloads from the
// daemon's bookkeeping.
func (c *Client) PurgeCompleted(ctx context.Context) error {
	if err := c.call(ctx, "aria2.purgeDownloadResult", c.params(), nil); err != nil {
		return fmt.Errorf("purge completed: %w", err)
	}
	return nil
}

func removeLocalFiles(d *Download) {
	for _, f := range d.Files {
		path := strings.TrimSpace(f.Path)
		if path == "" || strings.HasPrefix(path, MetadataPrefix) {
			continue
		}
		_ = os.Remove(path)
		_ = os.Remove(path + ".aria2")
	}
}

func (c *Client) params(extra ...any) []any {
	if c.secret == "" {
		return extra
	}
	return append([]any{"token:" + c.secret}, extra...)
}

func (c *Client) call(ctx context.Context, method string, params []any, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		Version: "2.0",
		ID:      "aria2top",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if payload.Error != nil {
		return payload.Error
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(payload.Result, dest); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = defaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url %q: %w", endpoint, err)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/jsonrpc"
	}
	return u, nil
}
