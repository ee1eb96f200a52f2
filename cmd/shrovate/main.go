// Package main is the entry point for the SHROVATE console CLI.
//
// Usage:
//
//	shrovate [flags] <command> [args]
//
// Commands:
//
//	serve      - Run the dashboard web console
//	chat       - Chat with the assistant in the terminal
//	helperd    - Run the local control daemon
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/shrovate/shrovate/cmd/shrovate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
