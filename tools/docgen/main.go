// Command docgen writes reference docs for the bluberry server and the
// bbctl operator CLI, one directory per binary, as markdown or man pages.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	bbctl "github.com/bluberry/bluberry/cmd/bbctl/cmd"
	server "github.com/bluberry/bluberry/cmd/bluberry/cmd"
)

type binary struct {
	name string
	root func() *cobra.Command
}

var binaries = []binary{
	{name: "bluberry", root: server.Root},
	{name: "bbctl", root: bbctl.Root},
}

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "md", "doc format: md or man")
	flag.Parse()

	if err := run(os.Stdout, *output, *format); err != nil {
		fmt.Fprintf(os.Stderr, "docgen: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, dir, format string) error {
	gen, err := generator(format)
	if err != nil {
		return err
	}

	for _, b := range binaries {
		target := filepath.Join(dir, b.name)
		if err := os.MkdirAll(target, 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", target, err)
		}

		root := b.root()
		root.DisableAutoGenTag = true
		if err := gen(root, target); err != nil {
			return fmt.Errorf("generating %s docs: %w", b.name, err)
		}
		fmt.Fprintf(out, "%s docs written to %s/\n", b.name, target)
	}
	return nil
}

func generator(format string) (func(*cobra.Command, string) error, error) {
	switch format {
	case "md":
		return doc.GenMarkdownTree, nil
	case "man":
		return func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   root.Name(),
				Section: "1",
				Source:  "BluBerry",
			}, dir)
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want md or man)", format)
	}
}
