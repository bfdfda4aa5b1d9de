// Command forerun is a declarative foreground process supervisor driven by a
// Procfile-style manifest.
package main

import (
	"os"

	"github.com/trask/forerun/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
