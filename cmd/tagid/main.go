// Command tagid encodes tagged identifiers, draws fixtures and runs the
// bridge conformance suite.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/tagid/internal/cli"
	"github.com/roach88/tagid/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		if !cli.Reported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
