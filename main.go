package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"EnvKit/cmd"
	"EnvKit/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())

	// Ctrl-C cancels the context so long-running commands like --watch
	// shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Recover from logger.FatalError so deferred cleanup still runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				// This panic was intentional from logger.Fatal
				exitCode = 1
			} else {
				// Re-panic for other errors
				panic(r)
			}
		}
	}()

	// Parse command line arguments
	groups, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	// Hand off execution to the cmd package
	exitCode = cmd.Execute(ctx, groups)

	return exitCode
}
