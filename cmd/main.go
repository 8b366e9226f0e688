package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/catalog"
	"github.com/alpacahq/holidaystore/cmd/check"
	"github.com/alpacahq/holidaystore/cmd/easter"
	"github.com/alpacahq/holidaystore/cmd/setup"
	"github.com/alpacahq/holidaystore/cmd/shell"
	"github.com/alpacahq/holidaystore/cmd/year"
	"github.com/alpacahq/holidaystore/utils"
)

// flagPrintVersion set flag to show current holidays version.
var flagPrintVersion bool

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	// c is the root command.
	c := &cobra.Command{
		Use:   "holidays",
		Short: "Resolve holiday catalogs into calendar dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %+v\n", utils.Tag)
				fmt.Fprintf(cmd.OutOrStdout(), "commit hash: %+v\n", utils.GitHash)
				fmt.Fprintf(cmd.OutOrStdout(), "utc build time: %+v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and version flag.
	setup.RegisterFlags(c)
	c.AddCommand(year.Cmd)
	c.AddCommand(check.Cmd)
	c.AddCommand(easter.Cmd)
	c.AddCommand(catalog.Cmd)
	c.AddCommand(shell.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")
	return c
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return NewRootCommand().Execute()
}
