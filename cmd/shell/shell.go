package shell

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/cmd/setup"
	"github.com/alpacahq/holidaystore/cmd/shell/session"
	"github.com/alpacahq/holidaystore/internal/di"
)

const (
	usage   = "shell"
	short   = "Open an interactive session on the holiday catalog"
	long    = "This command opens an interactive session to resolve years and check dates against the holiday catalog"
	example = "holidays shell --catalog ./festivos.yml"
)

// Cmd is the shell command.
var Cmd = &cobra.Command{
	Use:        usage,
	Short:      short,
	Long:       long,
	SuggestFor: []string{"connect", "repl", "interactive"},
	Example:    example,
	Args:       cobra.NoArgs,
	RunE:       executeShell,
}

// executeShell implements the shell command.
func executeShell(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	return setup.Run(func(c *di.Container) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return session.NewClient(c, cmd.OutOrStdout()).Read(ctx)
	})
}
