package catalog

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	hcatalog "github.com/alpacahq/holidaystore/catalog"
	"github.com/alpacahq/holidaystore/cmd/setup"
	"github.com/alpacahq/holidaystore/internal/di"
)

const (
	usage      = "catalog"
	short      = "Print the active holiday rule catalog"
	long       = "This command prints the rule catalog in use, e.g. to start a custom catalog from the built-in one"
	example    = "holidays catalog --format csv > festivos.csv"
	formatDesc = "catalog format: yaml or csv"
)

var (
	// Cmd is the catalog command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeCatalog,
	}
	// format set flag for the catalog encoding.
	format string
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", hcatalog.FormatYAML, formatDesc)
}

// executeCatalog implements the catalog command.
func executeCatalog(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	return setup.Run(func(c *di.Container) error {
		return Print(cmd.Context(), cmd.OutOrStdout(), c, format)
	})
}

// Print validates the active rules and writes them to w.
func Print(ctx context.Context, w io.Writer, c *di.Container, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rules, err := c.GetRuleSource().Rules(ctx)
	if err != nil {
		return err
	}
	cat, err := hcatalog.New(rules)
	if err != nil {
		return err
	}
	buf, err := cat.Marshal(format)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
