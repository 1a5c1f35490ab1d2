// imagecatalog command line tool
// Inspects and edits imaging experiment metadata files
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/nainya/imagecatalog/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
