package main

import (
	"context"
	"fmt"
	"os"

	"github.com/panthios/barley/pkg/logging"
)

func main() {
	log, err := logging.New(logging.Options{
		Level:     "info",
		Component: "cli",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(log)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
