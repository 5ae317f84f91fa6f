// Command pixdraw renders drawing scripts.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"seehuhn.de/go/pixdraw/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx)
	cancel()
	os.Exit(code)
}
