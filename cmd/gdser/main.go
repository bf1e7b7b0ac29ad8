package main

import (
	"context"
	"log/slog"

	"github.com/gdcore/serializer/debug"

	"github.com/scott-cotton/cli"
)

func main() {
	if debug.Coerce() {
		// coercions are logged through the default logger
		slog.SetDefault(theLog)
	}
	cli.MainContext(context.Background(), MainCommand())
}
