// Package main is the entry point for the Nexus CLI application.
// It provides a terminal client for the Nexus photo-feed service.
package main

import (
	"nexus/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
