package check

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/cmd/setup"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
)

const (
	usage   = "check <date> [<date>...]"
	short   = "Tell whether dates are holidays"
	long    = "This command checks each YYYY-MM-DD date against the holidays of its year"
	example = "holidays check 2025-01-01 2025-01-02"
)

// Cmd is the check command.
var Cmd = &cobra.Command{
	Use:        usage,
	Short:      short,
	Long:       long,
	Aliases:    []string{"is"},
	SuggestFor: []string{"test", "holiday"},
	Example:    example,
	Args:       cobra.MinimumNArgs(1),
	RunE:       executeCheck,
}

// executeCheck implements the check command.
func executeCheck(cmd *cobra.Command, args []string) error {
	dates := make([]calendar.Date, 0, len(args))
	for _, arg := range args {
		d, err := calendar.ParseDate(arg)
		if err != nil {
			return fmt.Errorf("%w: %v", setup.ErrArgs, err)
		}
		dates = append(dates, d)
	}
	cmd.SilenceUsage = true

	return setup.Run(func(c *di.Container) error {
		return Print(cmd.Context(), cmd.OutOrStdout(), c, c.GetConfig().DefaultOutput, dates)
	})
}

// Print writes one check result per date to w in the given output format.
func Print(ctx context.Context, w io.Writer, c *di.Container, format string, dates []calendar.Date) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, d := range dates {
		holidays, err := c.GetResolver().HolidaysOn(ctx, d)
		if err != nil {
			return err
		}
		if err := frontend.EncodeCheck(w, format, frontend.NewCheckResponse(d, holidays)); err != nil {
			return err
		}
	}
	return nil
}
