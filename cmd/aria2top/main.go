package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aria2top/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	rpcURL := flag.String("url", "", "aria2 JSON-RPC endpoint (overrides config)")
	secret := flag.String("secret", "", "aria2 RPC secret token (overrides config)")
	refreshSeconds := flag.Int("refresh", 0, "data refresh interval in seconds (optional, defaults to 1s)")
	logPath := flag.String("log", "", "log file path (stdout is owned by the UI)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		RPCURL:     *rpcURL,
		Secret:     *secret,
		LogPath:    *logPath,
	}
	if refresh := *refreshSeconds; refresh > 0 {
		opts.RefreshSeconds = refresh
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "aria2top: %v\n", err)
		return 1
	}
	return 0
}
