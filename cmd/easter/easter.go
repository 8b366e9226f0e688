package easter

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/cmd/setup"
)

// Cmd is the easter command.
var Cmd = &cobra.Command{
	Use:     "easter <year> [<year>...]",
	Short:   "Print the date of Easter Sunday",
	Example: "holidays easter 2025",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			year, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("%w: year %q", setup.ErrArgs, arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.EasterSunday(year))
		}
		return nil
	},
}
