// @MX:ANCHOR: [AUTO] Single entry point of the create-react-kit binary; any error exits with status 1.
// @MX:REASON: Error reporting happens inside cli.Execute, main only maps it to the exit code.
package main

import (
	"os"

	"github.com/forgekit/create-react-kit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
