// mcpconsole manages MCP instances: a terminal console plus scripting
// commands over the same backend.
package main

import (
	"github.com/getmockd/mcpconsole/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
