// Command trophies is the CLI entrypoint for the trophy tracker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nibzard/trophies/cmd"
)

// interruptGrace bounds how long a cancelled run may take to unwind. The
// menu blocks on stdin reads that a cancelled context cannot interrupt.
const interruptGrace = time.Second

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		select {
		case <-done:
		case <-sigCh:
			interrupted()
		case <-time.After(interruptGrace):
			interrupted()
		}
	}()

	// Run the CLI
	err := cmd.Run(ctx, os.Args[1:])
	close(done)
	if err != nil {
		if ctx.Err() != nil {
			interrupted()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func interrupted() {
	fmt.Fprintf(os.Stderr, "\nInterrupted\n")
	os.Exit(130)
}
