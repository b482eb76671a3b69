// Package main is the entry point for the BluBerry API server.
package main

import (
	"os"

	"github.com/bluberry/bluberry/cmd/bluberry/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
