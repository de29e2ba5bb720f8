// panelmock serves an in-memory emulation of the Zero Network panel
// REST API.
package main

import (
	"fmt"
	"os"

	"github.com/zeronetwork/panelmock/pkg/cli"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.SetVersion(Version, Commit, BuildDate)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
