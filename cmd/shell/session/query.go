package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/cmd/check"
	"github.com/alpacahq/holidaystore/cmd/year"
)

// \year [Options] <year>
type YearOpts struct {
	// Last year of the range
	To int `short:"t" long:"to" description:"Last year of the range to resolve (inclusive)"`
	// Holiday name filter
	Name string `short:"n" long:"name" description:"Only list holidays whose name matches this glob, e.g. San*"`
}

// year lists the holidays of a year or a range of years.
func (c *Client) year(ctx context.Context, line string) error {
	var opts YearOpts
	args, err := parseArgs(&opts, line)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New(`expected one year, see "\help year"`)
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}
	to := from
	if opts.To != 0 {
		to = opts.To
	}
	if err := year.CheckRange(from, to); err != nil {
		return err
	}
	return year.Print(ctx, c.out, c.container, c.output, from, to, opts.Name)
}

// check tells whether each date is a holiday.
func (c *Client) check(ctx context.Context, line string) error {
	args, err := parseArgs(&struct{}{}, line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New(`expected at least one date, see "\help check"`)
	}
	dates := make([]calendar.Date, 0, len(args))
	for _, arg := range args {
		d, err := calendar.ParseDate(arg)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}
	return check.Print(ctx, c.out, c.container, c.output, dates)
}

// easter prints Easter Sunday for each year.
func (c *Client) easter(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return errors.New(`expected at least one year, see "\help easter"`)
	}
	for _, arg := range args {
		y, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid year %q", arg)
		}
		fmt.Fprintln(c.out, calendar.EasterSunday(y))
	}
	return nil
}

// parseArgs parses the options of a backslash command, returning the
// positional arguments. Single quotes group words, e.g. -n 'San *'.
func parseArgs(opts interface{}, line string) ([]string, error) {
	fields := splitQuoted(line)
	if len(fields) == 0 {
		return nil, nil
	}
	parser := flags.NewParser(opts, flags.None)
	args, err := parser.ParseArgs(fields[1:])
	if err != nil {
		return nil, fmt.Errorf("could not parse arguments: %w", err)
	}
	return args, nil
}

func splitQuoted(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		inField bool
	)
	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
			inField = true
		case r == ' ' && !quoted:
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields
}
