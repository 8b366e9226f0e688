// Package catalog loads holiday rule catalogs and serves them to the
// resolver. A catalog can come from a YAML document, a CSV file or the
// built-in Colombian holiday table.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/matryer/try.v1"

	"github.com/alpacahq/holidaystore/calendar"
	"github.com/alpacahq/holidaystore/utils/log"
)

const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Catalog is a validated, read-only rule catalog in storage order.
type Catalog struct {
	rules []calendar.HolidayRule
}

// New validates rules and returns a catalog holding a copy of them.
func New(rules []calendar.HolidayRule) (*Catalog, error) {
	seen := make(map[int]struct{}, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[rule.ID]; ok {
			return nil, DuplicateRuleID(rule.ID)
		}
		seen[rule.ID] = struct{}{}
	}
	return &Catalog{rules: copyRules(rules)}, nil
}

// Parse decodes a catalog in the given format.
func Parse(data []byte, format string) (*Catalog, error) {
	var (
		rules []calendar.HolidayRule
		err   error
	)
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		rules, err = parseYAML(data)
	case FormatCSV:
		rules, err = parseCSV(data)
	default:
		return nil, UnknownFormat(format)
	}
	if err != nil {
		return nil, err
	}
	return New(rules)
}

// Load reads and parses the catalog file at path.
func Load(path, format string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NotFoundError(path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	log.Debug("loaded %d holiday rules from %s", c.Len(), path)
	return c, nil
}

// Rules returns a copy of the catalog's rules.
func (c *Catalog) Rules(_ context.Context) ([]calendar.HolidayRule, error) {
	return copyRules(c.rules), nil
}

func (c *Catalog) Len() int {
	return len(c.rules)
}

// Lookup returns the rule with the given id.
func (c *Catalog) Lookup(id int) (calendar.HolidayRule, bool) {
	for _, rule := range c.rules {
		if rule.ID == id {
			return rule, true
		}
	}
	return calendar.HolidayRule{}, false
}

const (
	defaultLoadAttempts = 3
	defaultRetryDelay   = 50 * time.Millisecond
)

// File is a rule source that re-reads its catalog file on every call, so
// edits to the file are picked up without a restart. A read that fails
// while the file is being rewritten is retried.
type File struct {
	Path   string
	Format string
	// Attempts bounds how many times a failed load is tried, up to
	// try.MaxRetries. A missing file is never retried.
	Attempts   int
	RetryDelay time.Duration

	load func(path, format string) (*Catalog, error)
}

func NewFile(path, format string) *File {
	return &File{
		Path:       path,
		Format:     format,
		Attempts:   defaultLoadAttempts,
		RetryDelay: defaultRetryDelay,
		load:       Load,
	}
}

func (f *File) Rules(ctx context.Context) ([]calendar.HolidayRule, error) {
	load := f.load
	if load == nil {
		load = Load
	}

	var c *Catalog
	err := try.Do(func(attempt int) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		var err error
		if c, err = load(f.Path, f.Format); err == nil {
			return false, nil
		}
		var notFound NotFoundError
		if errors.As(err, &notFound) || attempt >= f.Attempts {
			return false, err
		}
		log.Warn("failed to load catalog %s (attempt %d), retrying: %v", f.Path, attempt, err)
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(f.RetryDelay):
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return c.rules, nil
}

// Memory is an unvalidated in-memory rule source.
type Memory []calendar.HolidayRule

func (m Memory) Rules(_ context.Context) ([]calendar.HolidayRule, error) {
	return copyRules(m), nil
}

func copyRules(rules []calendar.HolidayRule) []calendar.HolidayRule {
	out := make([]calendar.HolidayRule, len(rules))
	copy(out, rules)
	return out
}

// Marshal encodes the catalog in the given format, readable back by Parse.
func (c *Catalog) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return marshalYAML(c.rules)
	case FormatCSV:
		return marshalCSV(c.rules)
	default:
		return nil, UnknownFormat(format)
	}
}
