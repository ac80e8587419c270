// SPDX-License-Identifier: MIT

// Command citymst loads a road network between cities and connects every
// city at minimum total road length using Prim's or Kruskal's algorithm.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "citymst: cancelled")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "citymst:", err)
		os.Exit(1)
	}
}
