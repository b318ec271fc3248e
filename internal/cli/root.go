// Package cli implements the apidoc-defaults command line.
package cli

import (
	"os"

	apidoc "github.com/0xalexb/hjarta-apidoc"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "apidoc-defaults",
		Short:        "Inspect the documentation defaults of an API",
		Version:      apidoc.Version + " (" + apidoc.CompiledAt + ")",
		SilenceUsage: true,
	}

	cmd.AddCommand(showCmd())

	return cmd
}
