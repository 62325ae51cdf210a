package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/TeQuac/Gratulations/internal/cli"
	"github.com/TeQuac/Gratulations/internal/config"
)

// main delegates to runMain so deferred cleanup runs before the process
// terminates; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM, which in turn
	// shuts down the HTTP server and the background worker gracefully.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.RootCmd.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}
