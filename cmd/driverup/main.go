// driverup - ChromeDriver update checker and installer
// Source: https://github.com/driverup/driverup

package main

import (
	"os"

	"github.com/driverup/driverup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
