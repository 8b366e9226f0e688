package year

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/cmd/setup"
	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
	"github.com/alpacahq/holidaystore/utils/log"
	"github.com/alpacahq/holidaystore/utils/pool"
)

const (
	usage   = "year <year>"
	short   = "List the holidays of a year"
	long    = "This command resolves every rule of the catalog for the given year, or a range of years, in catalog order"
	example = "holidays year 2025 --to 2027 --name 'San*' -o json"

	toDesc   = "last year of the range to resolve (inclusive)"
	nameDesc = "only list holidays whose name matches this glob pattern"

	// maxYearSpan bounds how many years one query may resolve.
	maxYearSpan = 1000
)

var (
	// Cmd is the year command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"y"},
		SuggestFor: []string{"list", "festivos"},
		Example:    example,
		Args:       cobra.ExactArgs(1),
		RunE:       executeYear,
	}
	// toYear set flag for the end of a year range.
	toYear int
	// namePattern set flag for the name filter.
	namePattern string
)

func init() {
	Cmd.Flags().IntVarP(&toYear, "to", "t", 0, toDesc)
	Cmd.Flags().StringVarP(&namePattern, "name", "n", "", nameDesc)
}

// executeYear implements the year command.
func executeYear(cmd *cobra.Command, args []string) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: year %q", setup.ErrArgs, args[0])
	}
	to := from
	if toYear != 0 {
		to = toYear
	}
	if err := CheckRange(from, to); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	return setup.Run(func(c *di.Container) error {
		return Print(cmd.Context(), cmd.OutOrStdout(), c, c.GetConfig().DefaultOutput, from, to, namePattern)
	})
}

// CheckRange rejects year ranges that are reversed or span more than
// maxYearSpan years.
func CheckRange(from, to int) error {
	if to < from {
		return fmt.Errorf("%w: --to %d is before %d", setup.ErrArgs, to, from)
	}
	// to-from overflows to a negative span for extreme inputs
	if span := to - from; span < 0 || span >= maxYearSpan {
		return fmt.Errorf("%w: %d..%d spans more than %d years", setup.ErrArgs, from, to, maxYearSpan)
	}
	return nil
}

// Print resolves from..to and writes the holidays matching pattern to w in
// the given output format.
func Print(ctx context.Context, w io.Writer, c *di.Container, format string, from, to int, pattern string) error {
	holidays, err := Resolve(ctx, c.GetResolver(), from, to, c.GetConfig().Workers)
	if err != nil {
		return err
	}
	holidays, err = frontend.FilterByName(holidays, pattern)
	if err != nil {
		return err
	}
	return frontend.EncodeHolidays(w, format, frontend.NewHolidayResponses(holidays))
}

// Resolve resolves every year of from..to on a bounded worker pool and
// returns the holidays year by year in catalog order.
func Resolve(ctx context.Context, r *calendar.Resolver, from, to, workers int) ([]calendar.ResolvedHoliday, error) {
	if err := CheckRange(from, to); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	years := make([][]calendar.ResolvedHoliday, to-from+1)

	var (
		mu       sync.Mutex
		firstErr error
	)
	job := func(input interface{}) {
		year, ok := input.(int)
		if !ok {
			log.Error("failed to cast a work message to a year: %v", input)
			return
		}
		holidays, err := r.Year(ctx, year)
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		years[year-from] = holidays
	}

	p := pool.NewPool(workers, job)
	q := make(chan interface{})
	go func() {
		defer close(q)
		for year := from; year <= to; year++ {
			q <- year
		}
	}()
	p.Work(q)
	p.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	var holidays []calendar.ResolvedHoliday
	for _, y := range years {
		holidays = append(holidays, y...)
	}
	return holidays, nil
}
