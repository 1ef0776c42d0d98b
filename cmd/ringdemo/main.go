// Command ringdemo renders shape scenes described in TOML to PNG.
//
// Usage:
//
//	ringdemo render scene.toml -o out.png [--highlight] [-v]
//	ringdemo shapes
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg-shape/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "ringdemo:", err)
		os.Exit(1)
	}
}
