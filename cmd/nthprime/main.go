// nthprime — CLI entry point.
//
// Prints the N-th prime, found by trial division, as a single line on
// stdout. No flags are recognised: the count is fixed when the binary is
// built. Build with -ldflags "-X main.debug=1" to log progress to stderr
// and verify the sequence before printing.
package main

import (
	"os"

	"github.com/1ureka/nthprime/internal/app"
	"github.com/1ureka/nthprime/internal/config"
	"github.com/1ureka/nthprime/internal/util"
)

var (
	version = "dev"
	debug   = ""
)

func main() {
	cfg := config.Default()

	if debug != "" {
		util.EnableDebug()
		cfg.Verify = true
	}

	util.LogDebug("nthprime v%s", version)

	if err := app.Run(cfg, os.Stdout); err != nil {
		util.LogError("%v", err)
		os.Exit(1)
	}
}
