// wp2md converts a WordPress export file into a tree of Markdown files.
package main

import (
	"os"

	"github.com/vdibart/wp2md/pkg/cmd"
)

// Version is set at build time with -ldflags
var Version = "dev"

func main() {
	// Set version from build-time ldflags
	cmd.Version = Version

	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
