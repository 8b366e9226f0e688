package catalog

import (
	"fmt"
)

type DuplicateRuleID int

func (id DuplicateRuleID) Error() string {
	return fmt.Sprintf("%d: Rule id is used more than once in the catalog", int(id))
}

type UnknownFormat string

func (msg UnknownFormat) Error() string {
	return fmt.Sprintf("%s: Unknown catalog format, expected yaml or csv", string(msg))
}

type NotFoundError string

func (msg NotFoundError) Error() string {
	return fmt.Sprintf("%s: Catalog file not found", string(msg))
}

// ErrMalformedRow is used when a csv row can not be turned into a rule.
type ErrMalformedRow struct {
	line int
	msg  string
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("malformed catalog row at line %d: %s", e.line, e.msg)
}
