package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/simonhull/firebird-suite/wren/input"
	"github.com/simonhull/firebird-suite/wren/internal/commands"
	"github.com/simonhull/firebird-suite/wren/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.RootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, input.ErrCanceled):
		// The prompt already printed "(canceled)"; the user chose to stop.
	default:
		output.Error(err.Error())
		os.Exit(1)
	}
}
