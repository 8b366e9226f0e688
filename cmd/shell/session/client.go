// Package session
// This file is the hub of the `session` package. The `Client` struct defined here
// holds the resolver and has the responsibility of interpreting user inputs.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/alpacahq/holidaystore/frontend"
	"github.com/alpacahq/holidaystore/internal/di"
)

var (
	yearPattern = regexp.MustCompile(`^-?\d{1,4}$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func NewClient(c *di.Container, out io.Writer) *Client {
	return &Client{
		container: c,
		out:       out,
		output:    c.GetConfig().DefaultOutput,
	}
}

type Client struct {
	container *di.Container
	out       io.Writer
	// output format of query results
	output string
	// timing flag determines to print query execution time.
	timing bool
}

// Read kicks off the buffer reading process.
func (c *Client) Read(ctx context.Context) error {
	// Build reader.
	r, err := newReader()
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Fprintf(os.Stderr, "Type `\\help` to see command options\n")

	// User input evaluation loop.
	for {
		// Read input.
		line, err := r.Readline()

		// Terminate evaluation.
		if errors.Is(err, io.EOF) {
			return nil
		}

		// Printed interrupt prompt.
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		// Print error.
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			continue
		}

		if quit := c.Eval(ctx, line); quit {
			return nil
		}
	}
}

// Eval runs one line of input and reports whether the session should end.
func (c *Client) Eval(ctx context.Context, line string) (quit bool) {
	// Remove leading/trailing spaces.
	line = strings.TrimSpace(line)

	start := time.Now()
	var (
		err     error
		command string
	)
	if fields := strings.Fields(line); len(fields) > 0 {
		command = fields[0]
	}

	switch {
	case command == `\o`:
		err = c.setOutput(line)
	case command == `\timing`:
		c.timing = !c.timing
		fmt.Fprintf(c.out, "Timing is %v\n", c.timing)
		return false
	case command == `\year`:
		err = c.year(ctx, line)
	case command == `\check`:
		err = c.check(ctx, line)
	case command == `\easter`:
		err = c.easter(line)
	case command == `\help`, command == `\?`:
		c.functionHelp(line)
		return false
	case line == "help":
		c.functionHelp(`\help`)
		return false
	// Quit.
	case line == `\stop`, line == `\quit`, line == `\q`, line == "exit":
		return true
	// Nothing to do.
	case line == "":
		return false
	// Bare dates and years are shorthand for \check and \year.
	case datePattern.MatchString(line):
		err = c.check(ctx, `\check `+line)
	case yearPattern.MatchString(line):
		err = c.year(ctx, `\year `+line)
	default:
		err = fmt.Errorf("unknown command %q, see \\help", line)
	}

	if err != nil {
		fmt.Fprintf(c.out, "ERROR: %v\n", err)
		return false
	}
	if c.timing {
		fmt.Fprintf(c.out, "Elapsed query time: %5.3f ms\n", 1000*time.Since(start).Seconds())
	}
	return false
}

func (c *Client) setOutput(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		c.output = c.container.GetConfig().DefaultOutput
		return nil
	}
	if !frontend.ValidOutput(args[0]) {
		return frontend.UnknownOutput(args[0])
	}
	c.output = strings.ToLower(args[0])
	return nil
}

func newReader() (*readline.Instance, error) {
	// Determine history file path.
	usr, err := user.Current()
	if err != nil {
		return nil, errors.New("unable to obtain home directory")
	}
	history := filepath.Join(usr.HomeDir, ".holidaysReaderHistory")

	// Register commands with autocompletion.
	autoComplete := readline.NewPrefixCompleter(
		readline.PcItem(`\year`),
		readline.PcItem(`\check`),
		readline.PcItem(`\easter`),
		readline.PcItem(`\o`,
			readline.PcItem(frontend.Text),
			readline.PcItem(frontend.JSON),
			readline.PcItem(frontend.YAML),
			readline.PcItem(frontend.CSV),
			readline.PcItem(frontend.MsgPack),
		),
		readline.PcItem(`\timing`),
		readline.PcItem(`\help`),
		readline.PcItem(`\quit`),
		readline.PcItem(`\q`),
		readline.PcItem(`\?`),
		readline.PcItem(`\stop`),
	)

	// Build config.
	config := &readline.Config{
		Prompt:          "\033[31m»\033[0m ",
		HistoryFile:     history,
		AutoComplete:    autoComplete,
		InterruptPrompt: "\nInterrupt, Press Ctrl+D to exit",
		EOFPrompt:       "exit",
	}

	// return reader.
	return readline.NewEx(config)
}
