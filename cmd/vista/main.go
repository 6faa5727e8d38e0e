package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackzampolin/vista/internal/ui"
)

func main() {
	// Interrupt ends "prompt --watch"
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
