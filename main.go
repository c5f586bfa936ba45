package main

import (
	"fmt"
	"os"

	"github.com/repogate-labs/repogate/internal/cli"
	"github.com/repogate-labs/repogate/internal/gate"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		if _, ok := err.(*gate.ExitError); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(gate.CodeFrom(err))
	}
}
