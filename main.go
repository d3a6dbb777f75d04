package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/m-mizutani/dsfetch/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args); err != nil {
		stop()
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
