package main

import (
	"os"

	"github.com/theoremus-urban-solutions/transit-graph/internal/cli"
)

// Overridden at release time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
