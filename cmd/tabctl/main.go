// Package main is the entry point for the tabctl CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := ExitCodeFromError(err)
		if code != exitViolations {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(code)
	}
}
