// amplitude-event builds Amplitude event payloads offline.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/valeronm/amplitude-api/internal/cli"
)

// version is set by ldflags at build time.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		if errors.Is(err, cli.ErrNotEqual) {
			os.Exit(cli.ExitNotEqual)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitError)
	}
	os.Exit(cli.ExitSuccess)
}
