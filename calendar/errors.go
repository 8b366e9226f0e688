package calendar

import "fmt"

// InvalidRule is returned when a holiday rule can not be resolved, e.g. a
// fixed rule whose day and month do not form a calendar date.
type InvalidRule string

func (msg InvalidRule) Error() string {
	return fmt.Sprintf("%s: Invalid holiday rule", string(msg))
}
