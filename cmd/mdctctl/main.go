package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cmd "github.com/cocosip/go-mdct-codec/cmd/mdctctl/cmd"
	"github.com/cocosip/go-mdct-codec/logging"
)

func main() {
	// register sigterm for graceful shutdown
	ctx, cnc := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cnc()

	slog.SetDefault(logging.Logger(os.Stdout, false, slog.LevelInfo))

	if err := cmd.NewRoot(ctx).Execute(); err != nil {
		os.Exit(1)
	}
}
