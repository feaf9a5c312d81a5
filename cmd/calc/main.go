// Command calc is the calculator's command-line entry point.
package main

import (
	"os"

	"github.com/jharlow/unitcalc/cmd/calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
