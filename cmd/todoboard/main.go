package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/todoboard/internal/cli"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
}
