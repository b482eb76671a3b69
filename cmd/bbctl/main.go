// Package main is the entry point for the bbctl CLI client.
package main

import (
	"github.com/bluberry/bluberry/cmd/bbctl/cmd"
)

func main() {
	cmd.Execute()
}
