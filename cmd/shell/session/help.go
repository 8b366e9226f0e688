package session

import (
	"fmt"
	"strings"
)

// functionHelp prints helpful information about specific commands.
func (c *Client) functionHelp(line string) {
	args := strings.Fields(line)
	args = args[1:] // chop off the first word which should be "help"
	var helpKey string
	if len(args) == 0 {
		helpKey = "help"
	} else {
		helpKey = strings.TrimPrefix(args[0], `\`)
	}
	switch helpKey {
	case "year":
		fmt.Fprintln(c.out, `
	Syntax:

		>> \year [-t <to year>] [-n <name glob>] <year>

	- Example: one year:

		>> \year 2025

	- Example: a range of years, only the holidays named San...:

		>> \year -t 2027 -n 'San *' 2025

	A bare year (>> 2025) is the same as \year 2025.`)
	case "check":
		fmt.Fprintln(c.out, `
	Syntax:

		>> \check <YYYY-MM-DD> [<YYYY-MM-DD>...]

	Prints the holidays observed on each date. A bare date
	(>> 2025-01-01) is the same as \check 2025-01-01.`)
	case "easter":
		fmt.Fprintln(c.out, `
	Syntax:

		>> \easter <year> [<year>...]

	Prints the date of Easter Sunday.`)
	case "o":
		fmt.Fprintln(c.out, `
	Syntax:

		>> \o [text|json|yaml|csv|msgpack]

	Sets the output format. Without an argument, the configured default is restored.`)
	default:
		fmt.Fprintln(c.out, `
	The holidays shell resolves the holiday catalog interactively.

	Commands:
		\year     list the holidays of a year
		\check    tell whether dates are holidays
		\easter   print the date of Easter Sunday
		\o        set the output format
		\timing   toggle printing of query time
		\help     this text, or \help <command>
		\q        quit`)
	}
}
