// Package cmd implements the calc CLI's subcommands, one file per
// subcommand, following CWBudde-go-dws/cmd/dwscript/cmd's layout and
// init()-registration pattern.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "A unit-aware arithmetic calculator",
	Long: `calc evaluates arithmetic expressions over SI quantities: symbolic
constants (pi, e, phi, c, g), named units (m, ft, kg, ...), variable
definitions (x := 5), and both exact-rational and floating scalar modes.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
